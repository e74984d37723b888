// Package field implements the ambient particle field: a set of drifting
// points that reflect off the viewport edges, shy away from the pointer and
// link up with faint edges when close, plus a one-shot burst effect.
//
// The engine registers no listeners and owns no clock. The host pushes
// input signals (SetViewport, SetPointer, SetTheme, TriggerBurst) and calls
// Tick once per display frame. All methods must be called from the same
// goroutine.
package field

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Engine owns one steady field and at most one running burst.
type Engine struct {
	params Params
	rng    *rand.Rand

	width, height float64
	dark          bool
	pointer       *r2.Vec

	points Field
	burst  *burst
	frame  uint64
	closed bool

	onBurstDone func()

	index          *grid
	indexW, indexH float64
	scratch        []int
}

// Option configures an Engine.
type Option func(*Engine)

// WithParams overrides DefaultParams.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithRand sets the random source used for seeding fields and bursts.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithDark sets the initial theme.
func WithDark(dark bool) Option {
	return func(e *Engine) { e.dark = dark }
}

// WithBurstDone registers a callback fired on the tick a burst expires,
// after the steady field has been restored.
func WithBurstDone(fn func()) Option {
	return func(e *Engine) { e.onBurstDone = fn }
}

// New returns an engine with an empty field. The field is seeded by the
// first SetViewport call.
func New(opts ...Option) *Engine {
	e := &Engine{params: DefaultParams()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// SetViewport re-seeds the steady field for a new viewport. A viewport
// without area produces an empty field. During a burst the paused field is
// replaced, so the burst hands back the new one.
func (e *Engine) SetViewport(w, h float64) {
	if e.closed {
		return
	}
	e.width, e.height = w, h
	e.regenerate()
}

// SetTheme re-seeds the field with the palette of the given theme. The
// point count does not change since it depends only on the viewport.
func (e *Engine) SetTheme(dark bool) {
	if e.closed || dark == e.dark {
		return
	}
	e.dark = dark
	e.regenerate()
}

// SetPointer moves the repulsion target.
func (e *Engine) SetPointer(x, y float64) {
	e.pointer = &r2.Vec{X: x, Y: y}
}

// ClearPointer removes the repulsion target, e.g. when the cursor leaves
// the window.
func (e *Engine) ClearPointer() {
	e.pointer = nil
}

// TriggerBurst pauses the steady field and starts an explosion at origin.
// Triggering again while a burst runs restarts it.
func (e *Engine) TriggerBurst(origin r2.Vec) {
	if e.closed {
		return
	}
	e.burst = newBurst(e.rng, origin, e.params.BurstCount)
}

// Tick advances one frame and draws it onto s. A nil surface skips the
// frame entirely: nothing moves and the burst budget is not spent.
func (e *Engine) Tick(s Surface) FrameStats {
	if s == nil || e.closed {
		return FrameStats{Frame: e.frame, Mode: e.Mode()}
	}
	e.frame++

	if b := e.burst; b != nil {
		b.points.drift()
		drawBurst(s, b.points)
		b.frames++

		st := FrameStats{Frame: e.frame, Mode: ModeBurst, Points: len(b.points), Drawn: true}
		if b.frames >= e.params.BurstFrames {
			e.burst = nil
			if e.onBurstDone != nil {
				e.onBurstDone()
			}
		}
		return st
	}

	e.points.advance(e.params, e.pointer, e.width, e.height)
	edges := e.drawSteady(s)
	return FrameStats{Frame: e.frame, Mode: ModeSteady, Points: len(e.points), Edges: edges, Drawn: true}
}

// Close stops the engine and drops its fields. It is safe to call more
// than once.
func (e *Engine) Close() {
	e.closed = true
	e.burst = nil
	e.points = nil
	e.index = nil
	e.scratch = nil
}

// Mode reports whether a burst is running.
func (e *Engine) Mode() Mode {
	if e.burst != nil {
		return ModeBurst
	}
	return ModeSteady
}

// Points returns a copy of the steady field.
func (e *Engine) Points() Field {
	out := make(Field, len(e.points))
	copy(out, e.points)
	return out
}

// BurstPoints returns a copy of the running burst, or nil.
func (e *Engine) BurstPoints() Field {
	if e.burst == nil {
		return nil
	}
	out := make(Field, len(e.burst.points))
	copy(out, e.burst.points)
	return out
}

// BurstFramesLeft reports how many ticks the running burst has left.
func (e *Engine) BurstFramesLeft() int {
	if e.burst == nil {
		return 0
	}
	return e.params.BurstFrames - e.burst.frames
}

// Frame returns the number of frames drawn so far.
func (e *Engine) Frame() uint64 { return e.frame }

// Dark reports the active theme.
func (e *Engine) Dark() bool { return e.dark }

// Viewport returns the current viewport size.
func (e *Engine) Viewport() (w, h float64) { return e.width, e.height }

func (e *Engine) regenerate() {
	e.points = Generate(e.rng, e.width, e.height, e.dark, e.params.Density)
}
