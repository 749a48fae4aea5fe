package tween_test

import (
	"testing"
	"time"

	"github.com/matt-g-everett/ledtween/tween"
)

func TestClockScaledAndRealTimelines(t *testing.T) {
	base := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	c := tween.NewClock(0.5)

	c.Update(base)
	if c.Delta(false) != 0 || c.Delta(true) != 0 {
		t.Fatalf("the first update must report a zero delta")
	}

	c.Update(base.Add(time.Second))
	if !approxEq(c.Delta(true), 1) || !approxEq(c.Now(true), 1) {
		t.Fatalf("expected real (delta, now) = (1, 1), got (%f, %f)", c.Delta(true), c.Now(true))
	}
	if !approxEq(c.Delta(false), 0.5) || !approxEq(c.Now(false), 0.5) {
		t.Fatalf("expected scaled (delta, now) = (0.5, 0.5), got (%f, %f)", c.Delta(false), c.Now(false))
	}

	c.Update(base.Add(3 * time.Second))
	if !approxEq(c.Now(true), 3) || !approxEq(c.Now(false), 1.5) {
		t.Fatalf("expected accumulated now (3, 1.5), got (%f, %f)", c.Now(true), c.Now(false))
	}
}

func TestClockMonotonic(t *testing.T) {
	base := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	c := tween.NewClock(1)

	c.Update(base)
	c.Update(base.Add(time.Second))
	before := c.Now(true)

	// Wall time stepping backwards must not rewind the timelines.
	c.Update(base.Add(-time.Second))
	if c.Delta(true) != 0 || c.Now(true) != before {
		t.Fatalf("backwards wall time must report a zero delta")
	}
}

func TestClockScaleClamp(t *testing.T) {
	c := tween.NewClock(-2)
	if c.Scale() != 0 {
		t.Fatalf("negative scales clamp to zero, got %f", c.Scale())
	}

	c.SetScale(2)
	base := time.Now()
	c.Update(base)
	c.Update(base.Add(time.Second))
	if !approxEq(c.Delta(false), 2) {
		t.Fatalf("expected scaled delta 2, got %f", c.Delta(false))
	}
}

func TestDriverAdvanceSelectsTimeline(t *testing.T) {
	base := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	c := tween.NewClock(0) // frozen scaled timeline

	scaled := newLinearDriver(new(recorder), 1)
	unscaled := newLinearDriver(new(recorder), 1)
	unscaled.RealTime = true

	scaled.PlayForward()
	unscaled.PlayForward()

	c.Update(base)
	scaled.Advance(c)
	unscaled.Advance(c)
	c.Update(base.Add(500 * time.Millisecond))
	scaled.Advance(c)
	unscaled.Advance(c)

	if !approxEq(scaled.Progress(), 0) {
		t.Fatalf("scaled driver must freeze with the scaled timeline, got %f", scaled.Progress())
	}
	if !approxEq(unscaled.Progress(), 0.5) {
		t.Fatalf("real-time driver must ignore the time scale, got %f", unscaled.Progress())
	}
}
