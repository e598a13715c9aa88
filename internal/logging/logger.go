// Package logging is decmul's structured logging layer over zerolog.
//
// Two kinds of events go through it: the server's request log and the
// warnings raised when a strategy runs past its exact range. The strategy
// decorator in package multiply logs its per-product debug events on the
// global zerolog logger, whose level is set once per run by SetDebug.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the interface the server and the service log through.
type Logger interface {
	Info(msg string, fields ...Field)
	// Warn reports a product the caller receives but should not trust,
	// or a condition the operator should look at.
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field adds one key to an event.
type Field func(*zerolog.Event) *zerolog.Event

// String creates a string field.
func String(key, value string) Field {
	return func(e *zerolog.Event) *zerolog.Event { return e.Str(key, value) }
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return func(e *zerolog.Event) *zerolog.Event { return e.Int(key, value) }
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return func(e *zerolog.Event) *zerolog.Event { return e.Bool(key, value) }
}

// Duration records d in its String form ("1.5ms"), which stays readable for
// products ranging from microseconds to minutes.
func Duration(key string, d time.Duration) Field {
	return func(e *zerolog.Event) *zerolog.Event { return e.Str(key, d.String()) }
}

// Algorithm tags the event with a strategy name or registry key.
func Algorithm(name string) Field {
	return String("algorithm", name)
}

// Digits records the lengths of both operands.
func Digits(a, b int) Field {
	return func(e *zerolog.Event) *zerolog.Event {
		return e.Int("a_digits", a).Int("b_digits", b)
	}
}

// SetDebug sets the global zerolog level: debug when on, info otherwise.
// It must be called before any strategy runs.
func SetDebug(on bool) {
	level := zerolog.InfoLevel
	if on {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

type zerologLogger struct {
	logger zerolog.Logger
}

// NewLogger returns a Logger writing JSON lines to w, each tagged with the
// component name.
func NewLogger(w io.Writer, component string) Logger {
	return &zerologLogger{
		logger: zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zerologLogger{logger: zerolog.Nop()}
}

func emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		event = f(event)
	}
	event.Msg(msg)
}

func (z *zerologLogger) Info(msg string, fields ...Field) {
	emit(z.logger.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields ...Field) {
	emit(z.logger.Warn(), msg, fields)
}

func (z *zerologLogger) Error(msg string, err error, fields ...Field) {
	emit(z.logger.Error().Err(err), msg, fields)
}

func (z *zerologLogger) Debug(msg string, fields ...Field) {
	emit(z.logger.Debug(), msg, fields)
}
