// Package logger wraps a process-wide zerolog logger.
//
// The console owns the terminal, so the application points the logger at a
// file. Until Initialize is called all logging is discarded.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Initialize directs logging to w at the named level ("debug", "info",
// "warn", "error"). An empty or unknown level means info.
func Initialize(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log = zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Get returns the configured logger for callers that want structured fields.
func Get() zerolog.Logger {
	return log
}

// Info logs informational messages.
func Info(message string, args ...any) {
	log.Info().Msgf(message, args...)
}

// Error logs error messages.
func Error(message string, args ...any) {
	log.Error().Msgf(message, args...)
}

// Debug logs debug messages.
func Debug(message string, args ...any) {
	log.Debug().Msgf(message, args...)
}
