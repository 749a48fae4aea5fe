package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

// A Pulse is an Animation that breathes the whole strip between a back and
// a fore colour. The blend gain is driven by a ping-pong tween.
type Pulse struct {
	fore   colorful.Color
	back   colorful.Color
	gain   float64
	driver *tween.Driver
}

// NewPulse creates an instance of a Pulse object.
func NewPulse(fore colorful.Color, back colorful.Color, settings Settings) *Pulse {
	p := new(Pulse)
	p.fore = fore
	p.back = back

	target := tween.NewFloatTarget(
		func() float64 { return p.gain },
		func(v float64) { p.gain = v })
	p.driver = tween.NewDriver(target, settings.Duration)
	settings.Apply(p.driver)
	target.SetRange(0, 1)
	p.driver.PlayForward()

	return p
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(clock *tween.Clock) *Frame {
	p.driver.Advance(clock)

	// Overshooting curves push the gain outside [0,1]; clamp for blending.
	gain := p.gain
	if gain < 0 {
		gain = 0
	} else if gain > 1 {
		gain = 1
	}

	f := NewFrame()
	f.Fill(p.back.BlendHcl(p.fore, gain))
	return f
}
