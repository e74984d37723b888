// Package game hosts the field engine in a desktop window. It turns window
// events into engine signals and drives one engine tick per drawn frame.
package game

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/ambient-field/internal/audio"
	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/field"
	"github.com/iburimskiy/ambient-field/internal/input"
	"github.com/iburimskiy/ambient-field/internal/render"
)

// Options wires a Game. Player and Themes may be nil.
type Options struct {
	Config *config.Config
	Rand   *rand.Rand
	Player *audio.Player
	// Themes delivers theme changes from outside the window, e.g. an
	// edited config file.
	Themes <-chan bool
	Logger *zap.Logger
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	engine *field.Engine
	player *audio.Player
	themes <-chan bool
	logger *zap.Logger

	konami *input.Sequence
	fade   fade
	keys   []ebiten.Key

	// outside size reported by Layout; view size applied to the engine
	outW, outH   int
	viewW, viewH int

	layer   *ebiten.Image
	surface *screen

	stopping atomic.Bool
	closed   bool
}

// New builds a game and its engine.
func New(opts Options) *Game {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:    cfg,
		player: opts.Player,
		themes: opts.Themes,
		logger: logger,
		konami: input.NewSequence(input.Konami...),
		fade:   newFade(cfg.Window.TPS, cfg.Layer.FadeFrequency, cfg.Layer.FadeDamping, cfg.Layer.Opacity),
		outW:   cfg.Window.Width,
		outH:   cfg.Window.Height,
	}
	g.engine = field.New(
		field.WithParams(cfg.Params()),
		field.WithRand(rng),
		field.WithDark(cfg.Theme.Resolve()),
		field.WithBurstDone(g.onBurstDone),
	)
	return g
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.Window.TPS)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	if g.closed || g.stopping.Load() {
		return ebiten.Termination
	}

	if g.outW != g.viewW || g.outH != g.viewH {
		g.resize(g.outW, g.outH)
	}

	g.updatePointer()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			return ebiten.Termination
		case ebiten.KeyT:
			g.setTheme(!g.engine.Dark(), "keyboard")
		case ebiten.KeyO:
			g.chooseChime()
		}
		if g.konami.Press(keyName(k)) {
			g.triggerBurst()
		}
	}

	select {
	case dark := <-g.themes:
		g.setTheme(dark, "config")
	default:
	}

	g.fade.step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	dark := g.engine.Dark()
	screen.Fill(render.Background(dark))

	if g.surface == nil {
		// Not laid out yet; the engine skips the frame.
		g.engine.Tick(nil)
		return
	}
	g.engine.Tick(g.surface)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.fade.value()))
	screen.DrawImage(g.layer, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Stop asks the window loop to end on its next update. It may be called
// from any goroutine.
func (g *Game) Stop() {
	g.stopping.Store(true)
}

// Close releases the engine and silences audio. Safe to call twice.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.engine.Close()
	if g.player != nil {
		g.player.Stop()
	}
	if g.layer != nil {
		g.layer.Deallocate()
		g.layer = nil
		g.surface = nil
	}
}

func (g *Game) resize(w, h int) {
	g.viewW, g.viewH = w, h
	g.engine.SetViewport(float64(w), float64(h))

	if g.layer != nil {
		g.layer.Deallocate()
		g.layer, g.surface = nil, nil
	}
	if w > 0 && h > 0 {
		g.layer = ebiten.NewImage(w, h)
		g.surface = &screen{img: g.layer}
	}

	g.logger.Debug("viewport resized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("points", len(g.engine.Points())),
	)
}

func (g *Game) updatePointer() {
	if !ebiten.IsFocused() {
		g.engine.ClearPointer()
		return
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.viewW || y >= g.viewH {
		// Keep the last position, like a page that stops getting move events.
		return
	}
	g.engine.SetPointer(float64(x), float64(y))
}

func (g *Game) setTheme(dark bool, source string) {
	if dark == g.engine.Dark() {
		return
	}
	g.engine.SetTheme(dark)
	g.logger.Info("theme changed",
		zap.String("theme", string(config.ThemeOf(dark))),
		zap.String("source", source),
	)

	if g.player != nil {
		if err := g.player.PlayArpeggio(); err != nil {
			g.logger.Warn("play arpeggio", zap.Error(err))
		}
	}
}

func (g *Game) triggerBurst() {
	origin := r2.Vec{X: float64(g.viewW) / 2, Y: float64(g.viewH) / 2}
	g.engine.TriggerBurst(origin)
	g.logger.Info("burst triggered", zap.Float64("x", origin.X), zap.Float64("y", origin.Y))

	if g.player != nil {
		if err := g.player.PlayChime(); err != nil {
			g.logger.Warn("play chime", zap.Error(err))
		}
	}

	title := g.cfg.Window.Title
	go func() {
		if err := zenity.Notify("You found the secret!", zenity.Title(title)); err != nil {
			g.logger.Debug("notify", zap.Error(err))
		}
	}()
}

func (g *Game) onBurstDone() {
	g.logger.Info("burst finished", zap.Uint64("frame", g.engine.Frame()))
}

func (g *Game) chooseChime() {
	if g.player == nil {
		return
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Choose Chime"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.logger.Warn("chime dialog", zap.Error(err))
		}
		return
	}

	if err := g.player.SetChimeFile(filename); err != nil {
		g.logger.Warn("load chime", zap.String("path", filename), zap.Error(err))
		return
	}
	g.logger.Info("chime selected", zap.String("path", filename))
}
