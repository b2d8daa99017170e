package logger

import (
	"sync"

	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Console only until Setup installs the full pipeline
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Level: InfoLevel,
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. Each one
// calls log or logf directly so the caller skip stays the same as for
// Logger methods.

// Trace logs a trace message using the default logger
func Trace(msg string) {
	Default().log(TraceLevel, msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().log(DebugLevel, msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().log(InfoLevel, msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().log(WarnLevel, msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().log(ErrorLevel, msg)
}

// Fatal logs an error message using the default logger and exits the program
func Fatal(msg string) {
	l := Default()
	l.log(ErrorLevel, msg)
	_ = l.Sync()
	osExit(1)
}

// Overwrite replaces the previous console line using the default logger
func Overwrite(msg string) {
	Default().log(InfoLevel, formatter.OverwriteMarker+msg)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().logf(TraceLevel, format, args)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().logf(DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().logf(InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().logf(WarnLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().logf(ErrorLevel, format, args)
}

// Fatalf logs a formatted error message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	l := Default()
	l.logf(ErrorLevel, format, args)
	_ = l.Sync()
	osExit(1)
}

// Overwritef replaces the previous console line with a formatted message
// using the default logger
func Overwritef(format string, args ...interface{}) {
	Default().logf(InfoLevel, formatter.OverwriteMarker+format, args)
}
