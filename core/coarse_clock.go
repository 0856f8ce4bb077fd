package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies timestamps for log records.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// CoarseClock returns cached time refreshed every 500µs by a single
// background goroutine. Useful when timestamps are enabled in tight
// numerical loops where time.Now shows up in profiles.
type CoarseClock struct{}

// Now implements Clock. The ticker is started on first use.
func (CoarseClock) Now() time.Time {
	StartCoarseClock()
	return *coarseNow.Load()
}

// StartCoarseClock starts the refresh goroutine. It is safe to call
// multiple times; the goroutine is started exactly once and lives for
// the rest of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}
