package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

// A Fade is an Animation that drifts the strip background through a colour
// palette. A Once tween eases towards the next palette entry and re-arms
// itself from wherever it landed when it completes.
type Fade struct {
	palette []colorful.Color
	index   int
	colour  colorful.Color
	target  *tween.ColorTarget
	driver  *tween.Driver
}

// NewFade creates an instance of a Fade object. The palette needs at least
// two colours.
func NewFade(palette []colorful.Color, settings Settings) *Fade {
	f := new(Fade)
	f.palette = palette
	f.colour = palette[0]

	f.target = tween.NewColorTarget(
		func() colorful.Color { return f.colour },
		func(c colorful.Color) { f.colour = c })
	f.driver = tween.NewDriver(f.target, settings.Duration)
	settings.Apply(f.driver)
	f.target.SetRange(f.colour, f.nextColour())
	f.driver.OnComplete(func(*tween.Driver) { f.advance() })
	f.driver.PlayForward()

	return f
}

// nextColour steps through the palette, jittering saturation so long
// palettes do not feel mechanical.
func (f *Fade) nextColour() colorful.Color {
	f.index = (f.index + 1) % len(f.palette)
	h, s, v := f.palette[f.index].Hsv()
	return colorful.Hsv(h, util.RandomiseSaturation(s*0.85, s), v)
}

// advance re-arms the tween from the colour the last fade landed on towards
// the next palette entry.
func (f *Fade) advance() {
	f.target.SetRange(f.colour, f.nextColour())
	f.driver.ResetToBeginning(true)
}

// CalculateFrame creates a new Frame instance.
func (f *Fade) CalculateFrame(clock *tween.Clock) *Frame {
	f.driver.Advance(clock)

	frame := NewFrame()
	frame.Fill(f.colour)
	return frame
}
