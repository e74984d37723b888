package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ambient-field/internal/field"
	"github.com/iburimskiy/ambient-field/internal/render"
)

var (
	_ field.Surface = (*render.Canvas)(nil)
	_ field.Surface = (*render.Counter)(nil)
)

func TestCanvasDrawsDisc(t *testing.T) {
	c := render.NewCanvas(64, 64)
	c.Disc(32, 32, 8, color.NRGBA{R: 200, G: 220, B: 255, A: 255}, 1)

	img := c.Image()
	center := img.RGBAAt(32, 32)
	corner := img.RGBAAt(2, 2)
	assert.NotZero(t, center.A, "disc centre should be painted")
	assert.Zero(t, corner.A, "corner should stay transparent")

	c.Clear()
	assert.Zero(t, img.RGBAAt(32, 32).A)
}

func TestCanvasDrawsLine(t *testing.T) {
	c := render.NewCanvas(64, 64)
	c.Line(4, 32.5, 60, 32.5, color.NRGBA{R: 150, G: 150, B: 255, A: 255}, 1)

	assert.NotZero(t, c.Image().RGBAAt(32, 32).A)
	assert.Zero(t, c.Image().RGBAAt(32, 4).A)
}

func TestCompositeAndPNG(t *testing.T) {
	c := render.NewCanvas(32, 16)
	c.Disc(16, 8, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 1)

	bg := color.RGBA{R: 10, G: 12, B: 30, A: 255}
	out := c.Composite(bg, 0.5)
	assert.Equal(t, bg, out.RGBAAt(0, 0))
	assert.Greater(t, out.RGBAAt(16, 8).R, bg.R)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, out))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}

func TestCounter(t *testing.T) {
	var c render.Counter
	e := field.New()
	e.SetViewport(600, 500)

	st := e.Tick(&c)
	assert.Equal(t, 1, c.Clears)
	assert.Equal(t, st.Points, c.Discs)
	assert.Equal(t, st.Edges, c.Lines)

	c.Reset()
	assert.Equal(t, render.Counter{}, c)
}
