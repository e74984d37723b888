package field

import "gonum.org/v1/gonum/spatial/r2"

// advance moves every point one frame. Edges reflect velocity without
// clamping position, so a point may sit just outside the viewport for a
// frame or two.
func (f Field) advance(p Params, pointer *r2.Vec, w, h float64) {
	for i := range f {
		pt := &f[i]
		pt.Pos = r2.Add(pt.Pos, pt.Vel)

		if pt.Pos.X < 0 || pt.Pos.X > w {
			pt.Vel.X = -pt.Vel.X
		}
		if pt.Pos.Y < 0 || pt.Pos.Y > h {
			pt.Vel.Y = -pt.Vel.Y
		}

		if pointer != nil {
			repel(pt, p, *pointer)
		}
	}
}

// repel pushes pt away from the pointer when inside the interaction radius
// and caps the resulting speed.
func repel(pt *Point, p Params, pointer r2.Vec) {
	d := r2.Sub(pointer, pt.Pos)
	dist := r2.Norm(d)
	if dist >= p.InteractionRadius {
		return
	}

	force := (p.InteractionRadius - dist) / p.ForceDivisor
	if dist > 0 {
		pt.Vel = r2.Sub(pt.Vel, r2.Scale(force/dist, d))
	} else {
		// Pointer exactly on the point: push along -x.
		pt.Vel.X -= force
	}

	if speed := r2.Norm(pt.Vel); speed > p.MaxSpeed {
		pt.Vel = r2.Scale(p.MaxSpeed/speed, pt.Vel)
	}
}

// drift integrates velocity only. Used by burst particles.
func (f Field) drift() {
	for i := range f {
		f[i].Pos = r2.Add(f[i].Pos, f[i].Vel)
	}
}
