package game

import "github.com/charmbracelet/harmonica"

// fade eases the field layer's opacity towards its target.
type fade struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newFade(tps int, frequency, damping, target float64) fade {
	return fade{
		spring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping),
		target: target,
	}
}

func (f *fade) step() {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, f.target)
}

func (f *fade) value() float64 {
	return clamp01(f.pos)
}
