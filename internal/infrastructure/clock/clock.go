// Package clock measures frame time from the wall clock.
package clock

import "time"

// DefaultMaxStep caps a single frame so a stall (window drag, breakpoint)
// does not teleport entities.
const DefaultMaxStep = 0.25

// Clock returns the seconds elapsed between consecutive ticks
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
	maxStep float64
}

// New creates a wall clock whose ticks never exceed maxStep seconds
func New(maxStep float64) *Clock {
	return NewWithSource(time.Now, maxStep)
}

// NewWithSource creates a clock over an arbitrary time source
func NewWithSource(now func() time.Time, maxStep float64) *Clock {
	return &Clock{now: now, maxStep: maxStep}
}

// Tick returns the seconds since the previous tick, clamped to
// [0, maxStep]. The first tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		return c.maxStep
	}
	return dt
}
