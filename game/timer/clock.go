package timer

import "time"

// Clock reports time elapsed since it was started
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reads the system monotonic clock
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

func (c *ManualClock) Set(d time.Duration) {
	c.now = d
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
