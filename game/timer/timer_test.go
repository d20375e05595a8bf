package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

// run feeds deltas through a fresh timer and returns which frames fired.
func run(policy Policy, deltas ...time.Duration) ([]bool, *MoveTimer) {
	clock := NewManualClock()
	mt := NewMoveTimer(clock, MoveInterval, policy)
	fired := make([]bool, 0, len(deltas))
	for _, d := range deltas {
		clock.Advance(d)
		mt.Sample()
		fired = append(fired, mt.Tick())
	}
	return fired, mt
}

func TestDropOvershootFiresOnceForOneInterval(t *testing.T) {
	fired, mt := run(DropOvershoot, 25*ms, 25*ms, 25*ms)
	require.Equal(t, []bool{false, false, false}, fired)
	require.Equal(t, 75*ms, mt.Accumulated())

	// stored time is checked before the new delta is added, so the next frame fires
	fired, mt = run(DropOvershoot, 25*ms, 25*ms, 25*ms, 0)
	require.Equal(t, []bool{false, false, false, true}, fired)
	require.Equal(t, time.Duration(0), mt.Accumulated())
	require.Equal(t, Firing, mt.State())
}

func TestDropOvershootDiscardsExcess(t *testing.T) {
	fired, mt := run(DropOvershoot, 50*ms, 40*ms, 10*ms)
	require.Equal(t, []bool{false, false, true}, fired)
	// 15ms over the interval and the firing frame's 10ms are both gone
	require.Equal(t, time.Duration(0), mt.Accumulated())

	fired, mt = run(DropOvershoot, 50*ms, 40*ms, 10*ms, 20*ms)
	require.Equal(t, []bool{false, false, true, false}, fired)
	require.Equal(t, 20*ms, mt.Accumulated())
	require.Equal(t, Accumulating, mt.State())
}

func TestCarryOvershootFiresOnceForOneInterval(t *testing.T) {
	fired, mt := run(CarryOvershoot, 25*ms, 25*ms, 25*ms)
	require.Equal(t, []bool{false, false, true}, fired)
	require.Equal(t, time.Duration(0), mt.Accumulated())
}

func TestCarryOvershootKeepsExcess(t *testing.T) {
	fired, mt := run(CarryOvershoot, 50*ms, 40*ms)
	require.Equal(t, []bool{false, true}, fired)
	require.Equal(t, 15*ms, mt.Accumulated())

	fired, _ = run(CarryOvershoot, 50*ms, 40*ms, 60*ms)
	require.Equal(t, []bool{false, true, true}, fired)
}

func TestStepRateAtSixtyFPS(t *testing.T) {
	frame := time.Second / 60
	deltas := make([]time.Duration, 600)
	for i := range deltas {
		deltas[i] = frame
	}

	count := func(fired []bool) int {
		n := 0
		for _, f := range fired {
			if f {
				n++
			}
		}
		return n
	}

	drop, _ := run(DropOvershoot, deltas...)
	carry, _ := run(CarryOvershoot, deltas...)

	// at 60fps dropping overshoot moves once every 6 frames, slower than 13.3/s
	require.Equal(t, 100, count(drop))
	require.InDelta(t, 133, count(carry), 1)
}

func TestSampleDelta(t *testing.T) {
	clock := NewManualClock()
	clock.Set(time.Second)
	mt := NewMoveTimer(clock, MoveInterval, DropOvershoot)

	clock.Advance(16 * ms)
	require.Equal(t, 16*ms, mt.Sample())
	require.Equal(t, time.Duration(0), mt.Sample())
}

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()
	t1 := c.Now()
	time.Sleep(5 * ms)
	t2 := c.Now()
	require.True(t, t2 > t1)
	require.GreaterOrEqual(t, t2-t1, 5*ms)
}
