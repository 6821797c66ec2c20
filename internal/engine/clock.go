package engine

import "time"

// Clock provides millisecond ticks and a blocking delay. The loop depends
// on this instead of the time package directly so pacing is testable with
// scripted timestamps.
type Clock interface {
	// Ticks returns milliseconds elapsed since the clock was created.
	Ticks() uint64
	// Delay blocks for the given number of milliseconds.
	Delay(ms uint64)
}

type realClock struct {
	start time.Time
}

// NewClock returns a wall clock starting at zero.
func NewClock() Clock {
	return &realClock{start: time.Now()}
}

func (c *realClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *realClock) Delay(ms uint64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
