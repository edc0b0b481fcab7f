package logger

import (
	"sync"

	"github.com/mkarpels/logtap/core"
	"github.com/mkarpels/logtap/filter"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Init ensures the default logger and its filter exist. Call it before
// constructing targets so they find the filter to subscribe to; calling
// it again is a no-op.
func Init() {
	Default()
}

// Default returns the default logger, creating it (and its filter) on
// first use.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		defaultLogger = NewBuilder().
			WithFilter(filter.New(core.DebugLevel)).
			WithLevel(core.InfoLevel).
			Build()
	}
	return defaultLogger
}

// SetDefault replaces the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) error {
	return Default().Debug(msg, fields...)
}

// Info logs an informational message using the default logger
func Info(msg string, fields ...core.Field) error {
	return Default().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) error {
	return Default().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) error {
	return Default().Error(msg, fields...)
}

// Critical logs a critical message using the default logger and flushes
// all targets
func Critical(msg string, fields ...core.Field) error {
	return Default().Critical(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) error {
	return Default().Debugf(format, args...)
}

// Infof logs a formatted informational message using the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) error {
	return Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// With creates a new logger deriving from the default with extra fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
