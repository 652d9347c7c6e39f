package runner

import "time"

const (
	// TimerRate is the fixed frequency of the delay and sound timers.
	TimerRate = 60

	// maxElapsed caps the time handled by one Advance so that a stalled
	// host does not execute a burst of thousands of cycles afterwards.
	maxElapsed = 250 * time.Millisecond
)

// Clock converts elapsed wall time into the number of instruction cycles
// and 60 Hz timer ticks that are due. The two rates are independent.
type Clock struct {
	cyclePeriod time.Duration
	tickPeriod  time.Duration

	cycleDebt time.Duration
	tickDebt  time.Duration
}

// NewClock returns a clock for the given instruction rate in Hz.
func NewClock(cycleRate int) *Clock {
	if cycleRate < 1 {
		cycleRate = 1
	}
	return &Clock{
		cyclePeriod: time.Second / time.Duration(cycleRate),
		tickPeriod:  time.Second / TimerRate,
	}
}

// Advance adds elapsed time and returns the cycles and ticks that are due.
// Remainders are carried over to the next call.
func (c *Clock) Advance(elapsed time.Duration) (cycles, ticks int) {
	if elapsed <= 0 {
		return 0, 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}

	c.cycleDebt += elapsed
	cycles = int(c.cycleDebt / c.cyclePeriod)
	c.cycleDebt -= time.Duration(cycles) * c.cyclePeriod

	c.tickDebt += elapsed
	ticks = int(c.tickDebt / c.tickPeriod)
	c.tickDebt -= time.Duration(ticks) * c.tickPeriod

	return cycles, ticks
}
