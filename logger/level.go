package logger

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// zapTraceLevel sits one step below zap's most verbose built-in level.
const zapTraceLevel = zapcore.DebugLevel - 1

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel;
// use core.ParseLevel to get the error instead.
func ParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}

// ToZapLevel converts a Level to the zap level it is emitted at
func ToZapLevel(l Level) zapcore.Level {
	switch l {
	case TraceLevel:
		return zapTraceLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// FromZapLevel converts a zap level to a Level. DPanic, Panic and Fatal
// are rendered as Error.
func FromZapLevel(l zapcore.Level) Level {
	switch {
	case l >= zapcore.ErrorLevel:
		return ErrorLevel
	case l >= zapcore.WarnLevel:
		return WarnLevel
	case l >= zapcore.InfoLevel:
		return InfoLevel
	case l >= zapcore.DebugLevel:
		return DebugLevel
	default:
		return TraceLevel
	}
}
