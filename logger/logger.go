package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// callerSkip hides Logger's own frames from zap's caller capture. Every
// public entry point reaches zap through exactly one of log or logf.
const callerSkip = 2

// Logger is the main logging interface (immutable)
type Logger struct {
	base *zap.Logger
	zap  *zap.Logger
}

// New wraps a zap logger
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{
		base: z,
		zap:  z.WithOptions(zap.AddCallerSkip(callerSkip)),
	}
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         Level
	name          string
	includeCaller bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:         InfoLevel,
		includeCaller: true,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level zap checks before calling the handler
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithName sets the module of the built logger
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithCaller toggles caller capture. Without it unnamed loggers have an
// empty module.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.handler == nil {
		return New(nil)
	}
	var opts []zap.Option
	if b.includeCaller {
		opts = append(opts, zap.AddCaller())
	}
	z := zap.New(NewCore(b.handler, b.level), opts...)
	if b.name != "" {
		z = z.Named(b.name)
	}
	return New(z)
}

// Named returns a child logger for module. Names nest with a dot, as in
// zap: New(z).Named("db").Named("pool") logs as "db.pool".
func (l *Logger) Named(module string) *Logger {
	return New(l.base.Named(module))
}

// Zap returns the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// Sync flushes the underlying zap logger
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// Log logs a message at the specified level
func (l *Logger) Log(level Level, msg string) {
	l.log(level, msg)
}

func (l *Logger) log(level Level, msg string) {
	l.zap.Log(ToZapLevel(level), msg)
}

func (l *Logger) logf(level Level, format string, args []interface{}) {
	if !l.zap.Core().Enabled(ToZapLevel(level)) {
		return
	}
	l.zap.Log(ToZapLevel(level), fmt.Sprintf(format, args...))
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	l.log(TraceLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.log(DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.log(InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.log(WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.log(ErrorLevel, msg)
}

// Fatal logs an error message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string) {
	l.log(ErrorLevel, msg)
	_ = l.base.Sync()
	osExit(1)
}

// Overwrite logs an info message that replaces the previous console line
func (l *Logger) Overwrite(msg string) {
	l.log(InfoLevel, formatter.OverwriteMarker+msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(TraceLevel, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args)
}

// Fatalf logs an error message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args)
	_ = l.base.Sync()
	osExit(1)
}

// Overwritef logs a formatted info message that replaces the previous
// console line
func (l *Logger) Overwritef(format string, args ...interface{}) {
	l.logf(InfoLevel, formatter.OverwriteMarker+format, args)
}
