// Package logging wraps the process-wide zerolog logger the rest of the
// module logs through. The normalizer uses it to report dropped items;
// applications embedding the client can redirect or silence it with
// zerolog's global controls.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global logger. Level comes from LOG_LEVEL
// (default info); output is a console writer unless LOG_FORMAT=json.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
}

// Debug returns a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info returns an info-level event on the global logger.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn returns a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error returns an error-level event on the global logger.
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal returns a fatal-level event on the global logger; logging it
// exits the process.
func Fatal() *zerolog.Event {
	return log.Fatal()
}
