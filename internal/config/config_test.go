package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.TokenFile)
}

func TestLoad_EmptyOverrideFallsBack(t *testing.T) {
	t.Setenv("DRESSLY_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
}

func TestLoad_OverrideUsedVerbatim(t *testing.T) {
	t.Setenv("DRESSLY_API_URL", "https://api.example.com")
	t.Setenv("DRESSLY_TOKEN_FILE", "/tmp/dressly/storage.json")
	t.Setenv("DRESSLY_HTTP_TIMEOUT", "5s")
	t.Setenv("DRESSLY_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "/tmp/dressly/storage.json", cfg.TokenFile)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("DRESSLY_HTTP_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestResolveAPIURL(t *testing.T) {
	assert.Equal(t, DefaultAPIURL, ResolveAPIURL(""))
	assert.Equal(t, "not a url", ResolveAPIURL("not a url"))
}

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		c := Config{LogLevel: in}
		assert.Equal(t, want, c.Level(), in)
	}
}

func TestInitLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	InitLoggerTo(&buf)
	SetLogLevel(zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Str("op", "list").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "app=dressly")
	assert.Contains(t, out, "op=list")
	assert.NotContains(t, out, "\x1b[", "console output must be uncoloured")
}
