package timer

import "time"

// MoveInterval is the time between two snake moves (~13.3 moves per second).
const MoveInterval = 75 * time.Millisecond

// Policy decides what happens to time left over when a step fires.
type Policy int

const (
	// DropOvershoot compares the stored time before the frame delta is added and
	// resets to zero on fire; the firing frame's delta is lost.
	DropOvershoot Policy = iota
	// CarryOvershoot is a fixed timestep accumulator: the delta is added first and
	// one interval is subtracted on fire.
	CarryOvershoot
)

func (p Policy) String() string {
	if p == CarryOvershoot {
		return "carry"
	}
	return "drop"
}

type State int

const (
	Accumulating State = iota
	Firing
)

// MoveTimer turns frame time into discrete simulation steps.
type MoveTimer struct {
	clock       Clock
	policy      Policy
	interval    time.Duration
	lastSampled time.Duration
	accumulated time.Duration
	delta       time.Duration
	state       State
}

func NewMoveTimer(clock Clock, interval time.Duration, policy Policy) *MoveTimer {
	return &MoveTimer{
		clock:       clock,
		policy:      policy,
		interval:    interval,
		lastSampled: clock.Now(),
	}
}

// Sample reads the clock and stores the time since the previous sample.
func (t *MoveTimer) Sample() time.Duration {
	now := t.clock.Now()
	t.delta = now - t.lastSampled
	t.lastSampled = now
	return t.delta
}

// Tick consumes the sampled delta and reports whether a step fires this frame.
func (t *MoveTimer) Tick() bool {
	switch t.policy {
	case CarryOvershoot:
		t.accumulated += t.delta
		if t.accumulated >= t.interval {
			t.accumulated -= t.interval
			t.state = Firing
		} else {
			t.state = Accumulating
		}
	default:
		if t.accumulated >= t.interval {
			t.accumulated = 0
			t.state = Firing
		} else {
			t.accumulated += t.delta
			t.state = Accumulating
		}
	}
	t.delta = 0
	return t.state == Firing
}

func (t *MoveTimer) State() State {
	return t.state
}

func (t *MoveTimer) Accumulated() time.Duration {
	return t.accumulated
}

func (t *MoveTimer) Interval() time.Duration {
	return t.interval
}
