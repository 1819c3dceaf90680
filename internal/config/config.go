package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultAPIURL is used when DRESSLY_API_URL is unset or empty.
const DefaultAPIURL = "http://127.0.0.1:8000"

// Config holds the client-side configuration.
// Environment variables are parsed with the DRESSLY_ prefix,
// e.g. DRESSLY_API_URL, DRESSLY_TOKEN_FILE.
type Config struct {
	APIURL      string        `envconfig:"API_URL"`
	TokenFile   string        `envconfig:"TOKEN_FILE"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment and resolves defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DRESSLY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.ResolveDefaults()
	return &cfg, nil
}

// ResolveDefaults fills values envconfig leaves empty. A variable that is set
// to the empty string bypasses the default tag, so the API URL fallback is
// applied here instead.
func (c *Config) ResolveDefaults() {
	c.APIURL = ResolveAPIURL(c.APIURL)
	if c.TokenFile == "" {
		c.TokenFile = defaultTokenFile()
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
}

// ResolveAPIURL returns override verbatim when non-empty, DefaultAPIURL otherwise.
func ResolveAPIURL(override string) string {
	if override != "" {
		return override
	}
	return DefaultAPIURL
}

// Level parses LogLevel, falling back to info for unknown values.
func (c *Config) Level() zerolog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init configures logging and reports the loaded configuration.
func (c *Config) Init() {
	InitLogger()
	if c.Debug {
		SetLogLevel(zerolog.DebugLevel)
	} else {
		SetLogLevel(c.Level())
	}

	log.Debug().
		Str("api_url", c.APIURL).
		Str("token_file", c.TokenFile).
		Dur("http_timeout", c.HTTPTimeout).
		Bool("debug", c.Debug).
		Msg("Configuration loaded")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".dressly", "storage.json")
	}
	return filepath.Join(home, ".dressly", "storage.json")
}
