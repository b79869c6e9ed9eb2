package tracelog

import "sync/atomic"

// StepClock is a monotonic step counter. Every recorded step is stamped
// with a strictly increasing sequence number from this clock, so a trace
// reads back in the exact order steps were taken regardless of wall-clock
// skew.
//
// Thread-safety: atomic, though the driver's single-threaded stepping
// means only one goroutine typically calls Next.
type StepClock struct {
	seq atomic.Int64
}

// NewStepClock creates a clock starting at 0.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// NewStepClockAt creates a clock starting at a specific sequence number.
// Used to resume a trace from its last recorded step.
func NewStepClockAt(start int64) *StepClock {
	c := &StepClock{}
	c.seq.Store(start)
	return c
}

// Next returns the next step sequence number and increments the clock.
func (c *StepClock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *StepClock) Current() int64 {
	return c.seq.Load()
}
