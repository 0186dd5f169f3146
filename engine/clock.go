package engine

import (
	"sync"
	"time"
)

// TimeSource supplies frame timestamps
type TimeSource interface {
	Now() time.Time
}

// SystemClock reads the wall clock
// time.Now carries a monotonic reading, so frame deltas are immune to wall clock jumps
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when stepped; drives scripted frame sequences in tests and replays
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock stopped at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock reading
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Step moves the clock forward by d and returns the new reading
func (c *ManualClock) Step(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
