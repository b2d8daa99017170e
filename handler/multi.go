package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/linelog/core"
)

// MultiHandler sends log records to multiple handlers. Each child sees
// only the records it is enabled for, in the order they arrive.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any child would handle the record
func (h *MultiHandler) Enabled(module string, level core.Level) bool {
	for _, child := range h.handlers {
		if child.Enabled(module, level) {
			return true
		}
	}
	return false
}

// Handle processes a log record by sending it to every enabled child.
// A failing child does not stop the others.
func (h *MultiHandler) Handle(rec core.Record) error {
	var err error
	for _, child := range h.handlers {
		if !child.Enabled(rec.Module, rec.Level) {
			continue
		}
		err = multierr.Append(err, child.Handle(rec))
	}
	return err
}

// Handlers returns the child handlers
func (h *MultiHandler) Handlers() []Handler {
	return h.handlers
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
