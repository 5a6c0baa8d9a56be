package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process. Logs go to stderr so that
// stdout stays reserved for schedules.
func Setup(verbose bool) zerolog.Logger {
	return SetupWithWriter(os.Stderr, verbose)
}

// SetupWithWriter configures zerolog against an arbitrary writer.
func SetupWithWriter(w io.Writer, verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
