package util

import (
	"math/rand"

	"github.com/matt-g-everett/ledtween/tween"
)

// RandomiseSaturation picks a random saturation between min and max.
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric look-up table that eases up to full value
// at the middle and back down again.
func GenerateLut(curve tween.Curve, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = curve(value)
		lut[j] = curve(value)
	}
	return lut
}
