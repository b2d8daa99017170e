package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/linelog/core"
)

// ModuleKey is the slog attribute key that sets the module of a record.
const ModuleKey = "module"

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// Groups name the module ("db", then "db.pool"); an attribute with key
// ModuleKey replaces it. Other attributes are not rendered.
type SlogHandler struct {
	handler Handler
	module  string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, module string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		module:  module,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.handler.Enabled(s.module, SlogLevelToCore(level))
}

// Handle converts a slog.Record to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	module := s.module
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == ModuleKey {
			module = a.Value.String()
			return false
		}
		return true
	})

	rec := core.Record{
		Time:    record.Time,
		Level:   SlogLevelToCore(record.Level),
		Module:  module,
		Message: record.Message,
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	if !s.handler.Enabled(rec.Module, rec.Level) {
		return nil
	}
	return s.handler.Handle(rec)
}

// WithAttrs returns a new SlogHandler. Only a ModuleKey attribute has an
// effect.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	module := s.module
	for _, a := range attrs {
		if a.Key == ModuleKey {
			module = a.Value.String()
		}
	}
	if module == s.module {
		return s
	}
	return &SlogHandler{handler: s.handler, module: module}
}

// WithGroup returns a new SlogHandler whose module is nested under name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	module := name
	if s.module != "" {
		module = s.module + "." + name
	}
	return &SlogHandler{handler: s.handler, module: module}
}

// SlogLevelToCore converts a slog.Level to a core.Level. Anything below
// slog.LevelDebug is Trace.
func SlogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
