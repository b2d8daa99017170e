package handler

import (
	"github.com/philipp01105/linelog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Enabled reports whether a record of the module at level would be
	// handled
	Enabled(module string, level core.Level) bool

	// Handle processes a log record
	Handle(rec core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep counters.
type StatsProvider interface {
	Stats() Snapshot
}
