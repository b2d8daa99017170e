package benchmark

import (
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
)

// noopHandler accepts every record and drops it, isolating dispatch cost
// from rendering and I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Enabled(string, core.Level) bool {
	return true
}

func (h *noopHandler) Handle(rec core.Record) error {
	_ = len(rec.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
