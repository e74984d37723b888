// Package render provides headless drawing surfaces for the field engine:
// a software-rasterised 2D canvas for snapshots and a counting surface for
// benchmarks.
package render

import (
	"fmt"
	"image/color"
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

// cssRGBA formats c as a CSS rgba() string with its alpha scaled by weight.
func cssRGBA(c color.NRGBA, weight float64) string {
	a := float64(c.A) / 255 * clamp01(weight)
	return fmt.Sprintf("rgba(%d,%d,%d,%.4f)", c.R, c.G, c.B, a)
}

// Background is the page colour the field layer sits on.
func Background(dark bool) color.RGBA {
	if dark {
		return color.RGBA{R: 11, G: 15, B: 30, A: 255}
	}
	return color.RGBA{R: 244, G: 247, B: 251, A: 255}
}
