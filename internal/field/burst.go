package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// burst is a transient explosion that stands in for the steady field.
type burst struct {
	points Field
	frames int
}

// newBurst spreads n particles evenly around a full circle, all starting at
// origin.
func newBurst(rng *rand.Rand, origin r2.Vec, n int) *burst {
	pts := make(Field, n)
	for i := range pts {
		angle := float64(i) / float64(n) * 2 * math.Pi
		speed := 2 + rng.Float64()*5
		pts[i] = Point{
			Pos:    origin,
			Vel:    r2.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Radius: 2 + rng.Float64()*5,
			Color:  burstColor(rng),
			Alpha:  0.8 + rng.Float64()*0.2,
		}
	}
	return &burst{points: pts}
}
