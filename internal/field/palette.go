package field

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// pointColor draws a point colour from the theme's range. The dark palette
// is pale blue-white, the light palette blue-teal.
func pointColor(rng *rand.Rand, dark bool) color.NRGBA {
	if dark {
		return color.NRGBA{
			R: uint8(180 + rng.Float64()*75),
			G: uint8(180 + rng.Float64()*75),
			B: 255,
			A: 204, // 0.8
		}
	}
	return color.NRGBA{
		R: uint8(30 + rng.Float64()*50),
		G: uint8(100 + rng.Float64()*155),
		B: uint8(200 + rng.Float64()*55),
		A: 179, // 0.7
	}
}

// linkStyle returns the edge colour and the opacity of a zero-length edge.
func linkStyle(dark bool) (color.NRGBA, float64) {
	if dark {
		return color.NRGBA{R: 150, G: 150, B: 255, A: 255}, 0.15
	}
	return color.NRGBA{R: 50, G: 100, B: 200, A: 255}, 0.1
}

// burstColor picks a saturated pastel anywhere on the hue wheel.
func burstColor(rng *rand.Rand) color.NRGBA {
	r, g, b := colorful.Hsl(rng.Float64()*360, 1, 0.7).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
