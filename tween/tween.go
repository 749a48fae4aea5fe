package tween

import (
	"log"
	"math"
)

// defaultRate is the progress change per second used when no usable
// duration is configured.
const defaultRate = 1.0

type state int

const (
	stateIdle state = iota
	statePendingStart
	statePlaying
	stateFinished
)

// A Driver advances a normalised progress value once per frame and pushes
// the eased factor to its Target. One Driver animates one property.
type Driver struct {
	// Duration of a single pass in seconds. Zero or negative substitutes a
	// default rate of one pass per second.
	Duration float64

	// StartDelay in seconds before progress begins accumulating, measured
	// from the first tick of a play session.
	StartDelay float64

	// RealTime selects the unscaled timeline when ticked through Advance.
	RealTime bool

	// AutoStart makes Enable begin playback.
	AutoStart bool

	// Mode governs behaviour when progress reaches a timeline boundary.
	Mode Mode

	// Curve shapes raw progress into the eased factor. Nil means DefaultCurve.
	Curve Curve

	target Target

	progress       float64
	rate           float64
	cachedDuration float64
	startAt        float64
	state          state

	complete     signal
	loop         signal
	valueChanged signal
}

// NewDriver creates an instance of a Driver bound to a target. The target's
// current value is captured as both endpoints and the driver is reset to the
// beginning, giving a stable initial state before any configuration.
func NewDriver(target Target, duration float64) *Driver {
	d := new(Driver)
	d.target = target
	d.Duration = duration
	d.cachedDuration = duration
	d.rate = defaultRate
	if duration > 0 {
		d.rate = 1 / duration
	}
	d.startAt = math.NaN()

	target.CaptureStart()
	target.CaptureEnd()
	d.ResetToBeginning(false)

	return d
}

// AmountPerDelta returns the signed progress change per second. The
// magnitude is recomputed when Duration has changed since the last query;
// the sign encodes play direction and persists across recomputation.
func (d *Driver) AmountPerDelta() float64 {
	if d.cachedDuration != d.Duration {
		d.cachedDuration = d.Duration
		mag := defaultRate
		if d.Duration > 0 {
			mag = 1 / d.Duration
		}
		if d.rate < 0 {
			mag = -mag
		}
		d.rate = mag
	}
	return d.rate
}

// Progress reports the current position along the normalised timeline.
func (d *Driver) Progress() float64 {
	return d.progress
}

// IsPlaying reports whether the driver advances on ticks.
func (d *Driver) IsPlaying() bool {
	return d.state == statePendingStart || d.state == statePlaying
}

// IsStarted reports whether the current play session has ticked at least once.
func (d *Driver) IsStarted() bool {
	return d.state == statePlaying || d.state == stateFinished
}

// IsFinished reports whether a Once-mode pass has crossed a bound. It is
// cleared by ResetToBeginning and Disable.
func (d *Driver) IsFinished() bool {
	return d.state == stateFinished
}

// Play begins or resumes playback in the given direction without resetting
// progress.
func (d *Driver) Play(forward bool) {
	rate := d.AmountPerDelta()
	if (forward && rate < 0) || (!forward && rate > 0) {
		d.rate = -rate
	}
	if d.IsPlaying() {
		return
	}
	if math.IsNaN(d.startAt) {
		d.state = statePendingStart
	} else {
		d.state = statePlaying
	}
}

// PlayForward plays the tween from start towards end.
func (d *Driver) PlayForward() {
	d.Play(true)
}

// PlayReverse plays the tween from end towards start.
func (d *Driver) PlayReverse() {
	d.Play(false)
}

// Stop halts playback. Progress and session state are retained, so a later
// Play resumes without re-running the start delay.
func (d *Driver) Stop() {
	if d.IsPlaying() {
		d.state = stateIdle
	}
}

// ResetToBeginning clears the play session and snaps progress to the start
// of the timeline for the current direction, then samples once. When
// forceStart is set, playback begins immediately (the start delay applies
// again on the next tick).
func (d *Driver) ResetToBeginning(forceStart bool) {
	playing := d.IsPlaying()
	d.startAt = math.NaN()
	if d.AmountPerDelta() < 0 {
		d.progress = 1
	} else {
		d.progress = 0
	}
	if forceStart || playing {
		d.state = statePendingStart
	} else {
		d.state = stateIdle
	}
	d.sample(false)
}

// SetTweenToStart forces progress to the start of the timeline and samples
// once, bypassing the finish-flag logic.
func (d *Driver) SetTweenToStart() {
	d.progress = 0
	d.sample(false)
}

// SetTweenToEnd forces progress to the end of the timeline and samples
// once, bypassing the finish-flag logic.
func (d *Driver) SetTweenToEnd() {
	d.progress = 1
	d.sample(true)
}

// Enable marks the driver active, auto-starting playback when AutoStart is
// set.
func (d *Driver) Enable() {
	if d.AutoStart {
		d.PlayForward()
	}
}

// Disable clears the play session and all lifecycle state while preserving
// configuration and progress.
func (d *Driver) Disable() {
	d.state = stateIdle
	d.startAt = math.NaN()
}

// Tick advances the tween by delta seconds. now is the absolute time on the
// same timeline, used only for start-delay gating. A no-op unless playing.
// Exactly one sample is pushed to the target per tick in every branch.
func (d *Driver) Tick(delta, now float64) {
	if !d.IsPlaying() {
		return
	}

	// First tick of a play session schedules the delayed start.
	if d.state == statePendingStart {
		d.startAt = now + d.StartDelay
		d.state = statePlaying
	}
	if now < d.startAt {
		return
	}

	d.progress += d.AmountPerDelta() * delta

	switch d.Mode {
	case Once:
		if d.progress > 1 || d.progress < 0 {
			d.progress = clamp01(d.progress)
			d.state = stateFinished
			d.sample(true)
			d.complete.emit(d)
			return
		}
	case Loop:
		if d.progress > 1 {
			// Keep the fractional remainder so uneven frame timing does
			// not stutter at the boundary.
			d.progress -= math.Floor(d.progress)
			d.loop.emit(d)
		}
	case PingPong:
		if d.progress > 1 {
			d.progress = 1 - (d.progress - math.Floor(d.progress))
			d.rate = -d.AmountPerDelta()
		} else if d.progress < 0 {
			d.progress = -d.progress
			d.progress -= math.Floor(d.progress)
			d.rate = -d.AmountPerDelta()
		}
	default:
		log.Printf("tween: unrecognised playback mode %d, skipping boundary handling", d.Mode)
	}

	d.sample(false)
}

// Advance ticks the driver from a Clock, selecting the scaled or the real
// timeline according to the RealTime setting.
func (d *Driver) Advance(c *Clock) {
	d.Tick(c.Delta(d.RealTime), c.Now(d.RealTime))
}

// Sample pushes the current eased factor to the target using the internally
// tracked finish state.
func (d *Driver) Sample() {
	d.sample(d.IsFinished())
}

func (d *Driver) sample(finished bool) {
	curve := d.Curve
	if curve == nil {
		curve = DefaultCurve
	}
	d.target.SampleAt(curve(clamp01(d.progress)), finished)
	d.valueChanged.emit(d)
}

// OnComplete registers a callback fired when a Once-mode pass finishes.
func (d *Driver) OnComplete(fn Callback) Handle {
	return d.complete.add(fn)
}

// RemoveOnComplete deregisters a completion callback.
func (d *Driver) RemoveOnComplete(h Handle) bool {
	return d.complete.remove(h)
}

// OnLoop registers a callback fired when a Loop-mode pass wraps.
func (d *Driver) OnLoop(fn Callback) Handle {
	return d.loop.add(fn)
}

// RemoveOnLoop deregisters a loop callback.
func (d *Driver) RemoveOnLoop(h Handle) bool {
	return d.loop.remove(h)
}

// OnValueChanged registers a callback fired after every sample, forced
// samples included.
func (d *Driver) OnValueChanged(fn Callback) Handle {
	return d.valueChanged.add(fn)
}

// RemoveOnValueChanged deregisters a value-changed callback.
func (d *Driver) RemoveOnValueChanged(h Handle) bool {
	return d.valueChanged.remove(h)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
