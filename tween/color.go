package tween

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A ColorTarget tweens a colour property channel-wise through a get/set
// pair. Interpolation is plain RGB rather than colorful's blend functions,
// which clamp and would swallow curve overshoot.
type ColorTarget struct {
	get   func() colorful.Color
	set   func(colorful.Color)
	start colorful.Color
	end   colorful.Color
}

// NewColorTarget creates an instance of a ColorTarget over the given
// accessors.
func NewColorTarget(get func() colorful.Color, set func(colorful.Color)) *ColorTarget {
	t := new(ColorTarget)
	t.get = get
	t.set = set
	return t
}

// SetRange sets both endpoints explicitly, replacing any captured values.
func (t *ColorTarget) SetRange(start, end colorful.Color) {
	t.start = start
	t.end = end
}

// SampleAt writes the unclamped per-channel interpolation of the endpoints.
func (t *ColorTarget) SampleAt(factor float64, finished bool) {
	t.set(colorful.Color{
		R: lerp(t.start.R, t.end.R, factor),
		G: lerp(t.start.G, t.end.G, factor),
		B: lerp(t.start.B, t.end.B, factor),
	})
}

// CaptureStart stores the property's current value as the start endpoint.
func (t *ColorTarget) CaptureStart() {
	t.start = t.get()
}

// CaptureEnd stores the property's current value as the end endpoint.
func (t *ColorTarget) CaptureEnd() {
	t.end = t.get()
}
