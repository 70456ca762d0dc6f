package state

import "sync/atomic"

// Clock is a monotonically increasing revision counter. It is bumped on
// the UI goroutine and may be read from any goroutine.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the current value without advancing it.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
