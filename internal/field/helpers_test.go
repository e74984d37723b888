package field

import (
	"image/color"
	"math/rand"
)

type opKind int

const (
	opClear opKind = iota
	opDisc
	opLine
)

type op struct {
	kind           opKind
	x0, y0, x1, y1 float64
	radius         float64
	c              color.NRGBA
	alpha          float64
}

// recorder is a Surface that keeps every draw call.
type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: opClear}) }

func (r *recorder) Disc(x, y, radius float64, c color.NRGBA, alpha float64) {
	r.ops = append(r.ops, op{kind: opDisc, x0: x, y0: y, radius: radius, c: c, alpha: alpha})
}

func (r *recorder) Line(x0, y0, x1, y1 float64, c color.NRGBA, alpha float64) {
	r.ops = append(r.ops, op{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, c: c, alpha: alpha})
}

func (r *recorder) count(k opKind) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == k {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.ops = r.ops[:0] }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// engineWith returns an engine whose steady field is exactly pts.
func engineWith(pts Field, w, h float64, opts ...Option) *Engine {
	e := New(append([]Option{WithRand(seeded(1))}, opts...)...)
	e.width, e.height = w, h
	e.points = pts
	return e
}
