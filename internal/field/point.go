package field

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is one simulated particle.
type Point struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Color  color.NRGBA
	// Alpha is the compositing weight used when the point is drawn. It is
	// independent of Color.A.
	Alpha float64
}

// Speed returns the velocity magnitude.
func (p *Point) Speed() float64 {
	return r2.Norm(p.Vel)
}

// Field is the ordered set of points. Order is stable between frames and
// decides which point of a pair owns the edge.
type Field []Point

// PointCount returns how many points a w×h viewport holds at the given
// density. Non-positive input yields zero.
func PointCount(w, h, density float64) int {
	if w <= 0 || h <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(w * h / density))
}
