// Package logger builds the zerolog logger shared by the server, the
// repositories and gorm.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger in debug mode and a JSON logger otherwise.
// An unknown level falls back to info.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return newLogger(os.Stdout, lvl, pretty)
}

func newLogger(out io.Writer, lvl zerolog.Level, pretty bool) zerolog.Logger {
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "authors-api").
		Logger()
}
