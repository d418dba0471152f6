// Package logger provides logging functionality for the Fisher application.
package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
	// Debugf logs a formatted message shown only in verbose mode.
	Debugf(format string, args ...interface{})
	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger backed by zerolog.
type defaultLogger struct {
	mu  sync.Mutex
	log zerolog.Logger
}

// NewDefaultLogger creates a logger writing human readable lines to w.
// Debug messages are dropped unless verbose is set.
func NewDefaultLogger(w io.Writer, verbose bool) Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return &defaultLogger{
		log: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

// Logf logs a formatted message at info level.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Info().Msgf(format, args...)
}

// Debugf logs a formatted message at debug level.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Debug().Msgf(format, args...)
}

// Errorf logs a formatted message at error level.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Error().Msgf(format, args...)
}
