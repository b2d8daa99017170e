package core

import (
	"strings"
	"time"
)

// Record is a single log event as delivered by the logging engine.
type Record struct {
	Time    time.Time
	Level   Level
	Module  string
	Message string
}

// Clock returns the current time. Formatters and file handlers each
// sample their own Clock, so two sinks may see different instants for
// the same record.
type Clock func() time.Time

// SystemClock is the default Clock. It always returns UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// ModuleFromFunction extracts the package path from a fully qualified
// function name as reported by runtime.Frame.Function, e.g.
// "github.com/acme/app/store.(*DB).Get" becomes "github.com/acme/app/store".
func ModuleFromFunction(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}
