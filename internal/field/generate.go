package field

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Generate seeds a fresh field for a w×h viewport. The point count is
// floor(w*h/density); a viewport without area yields an empty field.
func Generate(rng *rand.Rand, w, h float64, dark bool, density float64) Field {
	n := PointCount(w, h, density)
	f := make(Field, n)
	for i := range f {
		f[i] = Point{
			Pos: r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
			Vel: r2.Vec{
				X: (rng.Float64() - 0.5) * 0.5,
				Y: (rng.Float64() - 0.5) * 0.5,
			},
			Radius: rng.Float64()*2 + 1,
			Color:  pointColor(rng, dark),
			Alpha:  0.1 + rng.Float64()*0.4,
		}
	}
	return f
}
