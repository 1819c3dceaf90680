package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sends the global logger to stderr as uncoloured console lines
// tagged with app=dressly.
func InitLogger() {
	InitLoggerTo(os.Stderr)
}

// InitLoggerTo is InitLogger with an explicit destination.
func InitLoggerTo(w io.Writer) {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	log.Logger = zerolog.New(out).With().Timestamp().Str("app", "dressly").Logger()
}

// SetLogLevel sets the global log level for zerolog.
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
