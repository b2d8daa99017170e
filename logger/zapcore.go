package logger

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
)

// dispatchCore is a zapcore.Core that feeds zap entries into a Handler.
// Fields are not rendered.
type dispatchCore struct {
	handler handler.Handler
	min     Level
}

// NewCore returns a zapcore.Core that passes entries at or above minLevel to h.
// minLevel is only a fast pre-check; h decides per module.
func NewCore(h handler.Handler, minLevel Level) zapcore.Core {
	return &dispatchCore{handler: h, min: minLevel}
}

// Enabled implements zapcore.LevelEnabler
func (c *dispatchCore) Enabled(l zapcore.Level) bool {
	return FromZapLevel(l).Enabled(c.min)
}

// With returns the core unchanged
func (c *dispatchCore) With([]zapcore.Field) zapcore.Core {
	return c
}

// Check adds the core when the entry can be handled. Entries of unnamed
// loggers are accepted here and filtered in Write, once zap has resolved
// the caller that names their module.
func (c *dispatchCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	if ent.LoggerName != "" && !c.handler.Enabled(ent.LoggerName, FromZapLevel(ent.Level)) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// Write hands the entry to the handler
func (c *dispatchCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	rec := RecordFromEntry(ent)
	if !c.handler.Enabled(rec.Module, rec.Level) {
		return nil
	}
	return c.handler.Handle(rec)
}

// Sync is a no-op; sinks write synchronously
func (c *dispatchCore) Sync() error {
	return nil
}

// RecordFromEntry converts a zap entry to a Record. The module is the
// logger name, or the caller's package path for unnamed loggers.
func RecordFromEntry(ent zapcore.Entry) core.Record {
	module := ent.LoggerName
	if module == "" && ent.Caller.Defined {
		module = core.ModuleFromFunction(ent.Caller.Function)
	}
	return core.Record{
		Time:    ent.Time,
		Level:   FromZapLevel(ent.Level),
		Module:  module,
		Message: ent.Message,
	}
}
