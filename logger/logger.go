package logger

import (
	"fmt"

	"github.com/mkarpels/logtap/core"
	"github.com/mkarpels/logtap/filter"
	"github.com/mkarpels/logtap/target"
)

// Logger publishes leveled events through a filter (immutable)
type Logger struct {
	filter *filter.Filter
	level  core.Level
	fields []core.Field
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	filter *filter.Filter
	level  core.Level
	fields []core.Field
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithFilter sets the filter events are published through
func (b *Builder) WithFilter(f *filter.Filter) *Builder {
	b.filter = f
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all events
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		filter: b.filter,
		level:  b.level,
		fields: b.fields,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		filter: l.filter,
		level:  l.level,
		fields: newFields,
	}
}

// Log publishes a message at the specified level and returns the
// combined delivery error of all subscribed targets
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) error {
	// Level check before any allocation
	if level < l.level || l.filter == nil {
		return nil
	}

	e := core.GetEvent()
	e.Level = level
	e.Message = msg
	if len(l.fields) > 0 {
		e.Fields = append(e.Fields, l.fields...)
	}
	if len(fields) > 0 {
		e.Fields = append(e.Fields, fields...)
	}

	err := l.filter.Publish(e)
	core.PutEvent(e)
	return err
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) error {
	return l.Log(core.DebugLevel, msg, fields...)
}

// Info logs an informational message
func (l *Logger) Info(msg string, fields ...core.Field) error {
	return l.Log(core.InfoLevel, msg, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) error {
	return l.Log(core.WarnLevel, msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) error {
	return l.Log(core.ErrorLevel, msg, fields...)
}

// Critical logs a critical message, then flushes every target in the
// default registry so buffered output survives whatever happens next
func (l *Logger) Critical(msg string, fields ...core.Field) error {
	err := l.Log(core.CriticalLevel, msg, fields...)
	if ferr := target.DefaultRegistry().FlushAll(); err == nil {
		err = ferr
	}
	return err
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if core.DebugLevel < l.level {
		return nil
	}
	return l.Log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...interface{}) error {
	if core.InfoLevel < l.level {
		return nil
	}
	return l.Log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) error {
	if core.WarnLevel < l.level {
		return nil
	}
	return l.Log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) error {
	if core.ErrorLevel < l.level {
		return nil
	}
	return l.Log(core.ErrorLevel, fmt.Sprintf(format, args...))
}
