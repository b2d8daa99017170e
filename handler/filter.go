package handler

import (
	"strings"

	"github.com/philipp01105/linelog/core"
)

// LevelFilter decides per module whether a level passes. Overrides apply
// to the module named by their key and to every module nested below it,
// where nesting is spelled with ".", "/" or "::".
type LevelFilter struct {
	level     core.Level
	overrides map[string]core.Level
}

// NewLevelFilter creates a filter with a global minimum level and
// optional per-module overrides. The overrides map is copied.
func NewLevelFilter(level core.Level, overrides map[string]core.Level) LevelFilter {
	f := LevelFilter{level: level}
	if len(overrides) > 0 {
		f.overrides = make(map[string]core.Level, len(overrides))
		for module, l := range overrides {
			f.overrides[module] = l
		}
	}
	return f
}

// Level returns the minimum level that applies to module.
func (f LevelFilter) Level(module string) core.Level {
	if len(f.overrides) == 0 {
		return f.level
	}
	if l, ok := f.overrides[module]; ok {
		return l
	}

	best := -1
	level := f.level
	for key, l := range f.overrides {
		if len(key) > best && isNested(module, key) {
			best = len(key)
			level = l
		}
	}
	return level
}

// Enabled reports whether a record of module at level passes.
func (f LevelFilter) Enabled(module string, level core.Level) bool {
	return level.Enabled(f.Level(module))
}

// MinLevel returns the lowest level any module can pass at. The engine
// uses it as a cheap first check before the module is known.
func (f LevelFilter) MinLevel() core.Level {
	lowest := f.level
	for _, l := range f.overrides {
		if l < lowest {
			lowest = l
		}
	}
	return lowest
}

// isNested reports whether module equals parent or sits below it.
func isNested(module, parent string) bool {
	if parent == "" || !strings.HasPrefix(module, parent) {
		return false
	}
	rest := module[len(parent):]
	return rest == "" ||
		strings.HasPrefix(rest, ".") ||
		strings.HasPrefix(rest, "/") ||
		strings.HasPrefix(rest, "::")
}

// Filtered wraps a sink handler with its own LevelFilter.
type Filtered struct {
	handler Handler
	filter  LevelFilter
}

// NewFiltered creates a filtered handler
func NewFiltered(h Handler, filter LevelFilter) *Filtered {
	return &Filtered{handler: h, filter: filter}
}

// Enabled reports whether both the filter and the wrapped handler accept
// the record.
func (f *Filtered) Enabled(module string, level core.Level) bool {
	return f.filter.Enabled(module, level) && f.handler.Enabled(module, level)
}

// Handle forwards records that pass the filter
func (f *Filtered) Handle(rec core.Record) error {
	if !f.filter.Enabled(rec.Module, rec.Level) {
		return nil
	}
	return f.handler.Handle(rec)
}

// Unwrap returns the wrapped handler
func (f *Filtered) Unwrap() Handler {
	return f.handler
}

// Close closes the wrapped handler
func (f *Filtered) Close() error {
	return f.handler.Close()
}
