package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records written to the sink
	ProcessedTotal atomic.Uint64
	// OverwriteTotal counts records that replaced the previous console line
	OverwriteTotal atomic.Uint64
	// FailedTotal counts records reported on the fallback channel
	FailedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.ProcessedTotal.Add(1)
}

// IncrementOverwrite atomically increments the overwrite counter
func (s *Stats) IncrementOverwrite() {
	s.OverwriteTotal.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.FailedTotal.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.ProcessedTotal.Store(0)
	s.OverwriteTotal.Store(0)
	s.FailedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	OverwriteTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.ProcessedTotal.Load(),
		OverwriteTotal: s.OverwriteTotal.Load(),
		FailedTotal:    s.FailedTotal.Load(),
	}
}
