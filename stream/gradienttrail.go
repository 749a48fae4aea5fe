package stream

import (
	"math"

	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

// A GradientTrail is an Animation that cycles a gradient along an led
// strip. The offset is driven by a looping tween, so wrap remainders carry
// across frames and the sweep never stutters at the boundary.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	current     float64
	lut         []float64
	driver      *tween.Driver
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(gradient GradientTable, trailLength int, settings Settings) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.lut = util.GenerateLut(tween.DefaultCurve, trailLength)

	target := tween.NewFloatTarget(
		func() float64 { return g.current },
		func(v float64) { g.current = v })
	g.driver = tween.NewDriver(target, settings.Duration)
	settings.Apply(g.driver)
	target.SetRange(0, float64(trailLength))
	g.driver.PlayForward()

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(clock *tween.Clock) *Frame {
	g.driver.Advance(clock)

	f := NewFrame()
	saturation := 1.0
	numPixels := len(f.pixels)
	for i := 0; i < numPixels; i++ {
		t := math.Mod(float64(i+numPixels)-g.current, float64(g.trailLength)) / float64(g.trailLength)
		luminance := 0.02 + 0.06*g.lut[i%g.trailLength]
		f.pixels[i] = g.gradient.GetColor(t, saturation, luminance)
	}

	return f
}
