package handler

import (
	"errors"
	"sync"

	"github.com/philipp01105/linelog/core"
)

// recorder is a Handler that keeps every record it receives.
type recorder struct {
	mu      sync.Mutex
	records []core.Record
	err     error
	closed  bool
}

func (r *recorder) Enabled(string, core.Level) bool { return true }

func (r *recorder) Handle(rec core.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return r.err
}

func (r *recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return r.err
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Message
	}
	return out
}

var errSink = errors.New("sink failed")
