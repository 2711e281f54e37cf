package engine

import "time"

// FrameClock turns host frame timestamps into simulation deltas
// The first reading after construction or Reset only primes the clock
type FrameClock struct {
	last     time.Time
	primed   bool
	maxDelta time.Duration // 0 disables the cap
}

// NewFrameClock creates a clock capping deltas at maxDelta
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Delta returns the time since the previous call
// ok is false when there is no previous reading; negative steps yield 0
func (c *FrameClock) Delta(now time.Time) (dt time.Duration, ok bool) {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0, false
	}

	dt = now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt, true
}

// Reset forgets the last reading so the next Delta primes again
func (c *FrameClock) Reset() {
	c.primed = false
	c.last = time.Time{}
}
