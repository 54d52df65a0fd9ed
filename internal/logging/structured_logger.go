package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// StructuredLogger writes one JSON object per message through zerolog.
// Verbose maps to debug level, which is only enabled when verbose is true.
type StructuredLogger struct {
	logger zerolog.Logger
}

// NewStructuredLogger creates a StructuredLogger writing to out.
func NewStructuredLogger(out io.Writer, verbose bool) *StructuredLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &StructuredLogger{
		logger: zerolog.New(out).Level(level).With().Timestamp().Str("component", "fixturehost").Logger(),
	}
}

// Verbose logs at debug level.
func (l *StructuredLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Info logs at info level.
func (l *StructuredLogger) Info(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// Error logs at error level.
func (l *StructuredLogger) Error(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}
