// Package logging builds the stderr diagnostics logger. Logging is off
// unless GT_LOG_LEVEL names a valid level, so normal runs print nothing
// beyond the translation output on stdout.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr at the given level. An empty or
// unrecognized level yields a disabled logger.
func New(level string) zerolog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.Nop()
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.Nop()
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
