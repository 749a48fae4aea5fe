package tween

import "time"

// A Clock turns wall time into per-frame (delta, now) pairs in seconds,
// maintained on two timelines: a scaled one for ordinary animation and a
// real, unscaled one for drivers that must ignore the time scale. Both
// timelines are monotonic non-decreasing.
type Clock struct {
	scale       float64
	started     bool
	last        time.Time
	scaledNow   float64
	realNow     float64
	scaledDelta float64
	realDelta   float64
}

// NewClock creates an instance of a Clock with the given time scale. A
// scale of zero freezes the scaled timeline; negative scales are treated as
// zero.
func NewClock(scale float64) *Clock {
	c := new(Clock)
	c.SetScale(scale)
	return c
}

// SetScale changes how fast the scaled timeline runs relative to wall time.
func (c *Clock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// Scale reports the current time scale.
func (c *Clock) Scale() float64 {
	return c.scale
}

// Update advances both timelines to now. The first call establishes the
// time base and reports a zero delta; time moving backwards is treated as a
// zero delta.
func (c *Clock) Update(now time.Time) {
	if !c.started {
		c.started = true
		c.last = now
	}
	dt := now.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	c.last = now

	c.realDelta = dt
	c.realNow += dt
	c.scaledDelta = dt * c.scale
	c.scaledNow += c.scaledDelta
}

// Delta reports the elapsed seconds covered by the last Update on the
// requested timeline.
func (c *Clock) Delta(realTime bool) float64 {
	if realTime {
		return c.realDelta
	}
	return c.scaledDelta
}

// Now reports the accumulated seconds on the requested timeline.
func (c *Clock) Now(realTime bool) float64 {
	if realTime {
		return c.realNow
	}
	return c.scaledNow
}
