package field

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// drawSteady clears the surface and draws, for each point in order, its
// edges to later points followed by its own disc. It returns the number of
// edges drawn.
func (e *Engine) drawSteady(s Surface) int {
	s.Clear()

	pts := e.points
	maxDist := e.params.LinkDistance
	linkColor, linkAlpha := linkStyle(e.dark)

	var idx *grid
	if e.params.SpatialIndex && len(pts) > 1 {
		idx = e.indexFor()
		idx.rebuild(pts)
	}

	edges := 0
	for i := range pts {
		a := &pts[i]

		if idx != nil {
			e.scratch = idx.candidates(e.scratch[:0], i)
			for _, j := range e.scratch {
				if link(s, a, &pts[j], maxDist, linkColor, linkAlpha) {
					edges++
				}
			}
		} else {
			for j := i + 1; j < len(pts); j++ {
				if link(s, a, &pts[j], maxDist, linkColor, linkAlpha) {
					edges++
				}
			}
		}

		s.Disc(a.Pos.X, a.Pos.Y, a.Radius, a.Color, a.Alpha)
	}
	return edges
}

// link draws the edge between a and b when they are closer than maxDist.
// Opacity fades linearly to zero at maxDist.
func link(s Surface, a, b *Point, maxDist float64, c color.NRGBA, base float64) bool {
	d := r2.Norm(r2.Sub(a.Pos, b.Pos))
	if d >= maxDist {
		return false
	}
	s.Line(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, c, base*(1-d/maxDist))
	return true
}

// drawBurst draws burst particles only; no edges.
func drawBurst(s Surface, pts Field) {
	s.Clear()
	for i := range pts {
		p := &pts[i]
		s.Disc(p.Pos.X, p.Pos.Y, p.Radius, p.Color, p.Alpha)
	}
}

// indexFor returns a grid sized for the current viewport, reusing the last
// one when the viewport has not changed.
func (e *Engine) indexFor() *grid {
	if e.index == nil || e.indexW != e.width || e.indexH != e.height {
		e.index = newGrid(e.width, e.height, e.params.LinkDistance)
		e.indexW, e.indexH = e.width, e.height
	}
	return e.index
}
