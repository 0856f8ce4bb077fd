package sink

import (
	"sync/atomic"
)

// Stats tracks sink statistics
type Stats struct {
	// Lines counts successful Write calls
	Lines uint64
	// Bytes counts bytes reported written by successful Write calls
	Bytes uint64
	// Failures counts Write calls that returned an error
	Failures uint64
}

// IncrementWritten atomically records one written line of n bytes
func (s *Stats) IncrementWritten(n int) {
	atomic.AddUint64(&s.Lines, 1)
	atomic.AddUint64(&s.Bytes, uint64(n))
}

// IncrementFailed atomically increments the failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.Failures, 1)
}

// GetLines returns the written line count
func (s *Stats) GetLines() uint64 {
	return atomic.LoadUint64(&s.Lines)
}

// GetBytes returns the written byte count
func (s *Stats) GetBytes() uint64 {
	return atomic.LoadUint64(&s.Bytes)
}

// GetFailures returns the failure count
func (s *Stats) GetFailures() uint64 {
	return atomic.LoadUint64(&s.Failures)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.Lines, 0)
	atomic.StoreUint64(&s.Bytes, 0)
	atomic.StoreUint64(&s.Failures, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Lines    uint64
	Bytes    uint64
	Failures uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Lines:    s.GetLines(),
		Bytes:    s.GetBytes(),
		Failures: s.GetFailures(),
	}
}

// Counting wraps a Sink and records per-write statistics.
type Counting struct {
	next  Sink
	stats Stats
}

// Count returns a Sink that forwards to next and counts lines, bytes and
// failures.
func Count(next Sink) *Counting {
	return &Counting{next: next}
}

// Write forwards p and records the outcome. Errors are returned unchanged.
func (c *Counting) Write(p []byte) (int, error) {
	n, err := c.next.Write(p)
	if err != nil {
		c.stats.IncrementFailed()
		return n, err
	}
	c.stats.IncrementWritten(n)
	return n, nil
}

// Sync forwards to the wrapped sink.
func (c *Counting) Sync() error {
	return c.next.Sync()
}

// Stats returns the live counters.
func (c *Counting) Stats() *Stats {
	return &c.stats
}
