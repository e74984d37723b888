package game

import (
	"image/color"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withAlpha scales the colour's own alpha by weight.
func withAlpha(c color.NRGBA, weight float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(weight)))
	return c
}
