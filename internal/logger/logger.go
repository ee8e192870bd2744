// Package logger wraps zerolog.Logger so components receive their logger
// through constructors instead of reaching for a global.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to stdout at the given level
// ("debug", "info", ...). Unknown levels fall back to info.
func New(level, service string) *Logger {
	return NewWithWriter(os.Stdout, level, service)
}

// NewWithWriter is New with an explicit output, used by tests.
func NewWithWriter(w io.Writer, level, service string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Str("service", service).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// Critical starts a fatal-level event that does not terminate the process.
// Exiting is left to the entry point.
func (l *Logger) Critical() *zerolog.Event {
	return l.WithLevel(zerolog.FatalLevel)
}
