package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestReflectionAtEdges(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		wantPos r2.Vec
		wantVel r2.Vec
	}{
		{"left", r2.Vec{X: 0, Y: 50}, r2.Vec{X: -1, Y: 0}, r2.Vec{X: -1, Y: 50}, r2.Vec{X: 1, Y: 0}},
		{"right", r2.Vec{X: 200, Y: 50}, r2.Vec{X: 0.5, Y: 0}, r2.Vec{X: 200.5, Y: 50}, r2.Vec{X: -0.5, Y: 0}},
		{"top", r2.Vec{X: 50, Y: 0.1}, r2.Vec{X: 0, Y: -0.2}, r2.Vec{X: 50, Y: -0.1}, r2.Vec{X: 0, Y: 0.2}},
		{"bottom corner", r2.Vec{X: 200, Y: 100}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 201, Y: 101}, r2.Vec{X: -1, Y: -1}},
		{"inside", r2.Vec{X: 100, Y: 50}, r2.Vec{X: 1, Y: -1}, r2.Vec{X: 101, Y: 49}, r2.Vec{X: 1, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{{Pos: tt.pos, Vel: tt.vel}}
			f.advance(DefaultParams(), nil, 200, 100)

			assert.InDelta(t, tt.wantPos.X, f[0].Pos.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, f[0].Pos.Y, 1e-9)
			assert.Equal(t, tt.wantVel, f[0].Vel)
		})
	}
}

func TestReflectionBringsPointBack(t *testing.T) {
	f := Field{{Pos: r2.Vec{X: 0, Y: 50}, Vel: r2.Vec{X: -1}}}

	f.advance(DefaultParams(), nil, 200, 100)
	require.Equal(t, -1.0, f[0].Pos.X)

	f.advance(DefaultParams(), nil, 200, 100)
	assert.Equal(t, 0.0, f[0].Pos.X)
	assert.Equal(t, 1.0, f[0].Vel.X)
}

func TestRepulsionPushesAway(t *testing.T) {
	f := Field{{Pos: r2.Vec{X: 100, Y: 100}}}
	pointer := r2.Vec{X: 150, Y: 100}

	f.advance(DefaultParams(), &pointer, 500, 500)

	wantForce := (150.0 - 50.0) / 1500.0
	assert.InDelta(t, -wantForce, f[0].Vel.X, 1e-12)
	assert.InDelta(t, 0, f[0].Vel.Y, 1e-12)
}

func TestRepulsionOutsideRadiusIgnored(t *testing.T) {
	vel := r2.Vec{X: 0.2, Y: -0.1}
	f := Field{{Pos: r2.Vec{X: 100, Y: 100}, Vel: vel}}
	pointer := r2.Vec{X: 400, Y: 400}

	f.advance(DefaultParams(), &pointer, 500, 500)

	assert.Equal(t, vel, f[0].Vel)
}

func TestRepulsionCapsSpeed(t *testing.T) {
	f := Field{{Pos: r2.Vec{X: 100, Y: 100}, Vel: r2.Vec{X: 0, Y: -2}}}
	pointer := r2.Vec{X: 90, Y: 98}

	f.advance(DefaultParams(), &pointer, 500, 500)

	assert.InDelta(t, 2.0, f[0].Speed(), 1e-9)
	assert.Greater(t, f[0].Vel.X, 0.0)
}

func TestRepulsionPointerOnPoint(t *testing.T) {
	f := Field{{Pos: r2.Vec{X: 10, Y: 10}, Vel: r2.Vec{X: 0, Y: 0}}}
	pointer := r2.Vec{X: 10, Y: 10}

	f.advance(DefaultParams(), &pointer, 500, 500)

	assert.InDelta(t, -0.1, f[0].Vel.X, 1e-12)
	assert.False(t, math.IsNaN(f[0].Vel.Y))
}

func TestSpeedStaysBoundedNearPointer(t *testing.T) {
	p := DefaultParams()
	f := Generate(seeded(3), 600, 400, true, 1000)
	pointer := r2.Vec{X: 300, Y: 200}

	for frame := 0; frame < 300; frame++ {
		near := make([]bool, len(f))
		for i := range f {
			near[i] = r2.Norm(r2.Sub(pointer, f[i].Pos)) < p.InteractionRadius
		}

		f.advance(p, &pointer, 600, 400)

		for i := range f {
			if near[i] {
				require.LessOrEqual(t, f[i].Speed(), p.MaxSpeed+1e-9, "frame %d point %d", frame, i)
			}
		}

		// Sweep the pointer across the field.
		pointer.X = 300 + 250*math.Sin(float64(frame)/20)
	}
}
