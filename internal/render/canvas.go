package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Canvas is a CPU-rasterised 2D context. It draws the way the browser
// canvas does: global alpha for discs, a 1px stroke for edges.
type Canvas struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	w, h    float64
}

// NewCanvas allocates a w×h transparent canvas.
func NewCanvas(w, h int) *Canvas {
	backend := softwarebackend.New(w, h)
	return &Canvas{
		backend: backend,
		cv:      canvas.New(backend),
		w:       float64(w),
		h:       float64(h),
	}
}

func (c *Canvas) Clear() {
	c.cv.ClearRect(0, 0, c.w, c.h)
}

func (c *Canvas) Disc(x, y, radius float64, col color.NRGBA, alpha float64) {
	c.cv.SetGlobalAlpha(clamp01(alpha))
	c.cv.SetFillStyle(cssRGBA(col, 1))
	c.cv.BeginPath()
	c.cv.Arc(x, y, radius, 0, 2*math.Pi, false)
	c.cv.Fill()
	c.cv.SetGlobalAlpha(1)
}

func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.NRGBA, alpha float64) {
	c.cv.SetStrokeStyle(cssRGBA(col, alpha))
	c.cv.SetLineWidth(1)
	c.cv.BeginPath()
	c.cv.MoveTo(x0, y0)
	c.cv.LineTo(x1, y1)
	c.cv.Stroke()
}

// Image returns the canvas pixels. The image is live: later draws show up
// in it.
func (c *Canvas) Image() *image.RGBA {
	return c.backend.Image
}

// Composite lays the canvas over a solid background at the given opacity,
// the way the site shows the field behind the page.
func (c *Canvas) Composite(bg color.Color, opacity float64) *image.RGBA {
	src := c.Image()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(clamp01(opacity) * 255))})
	draw.DrawMask(out, out.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Over)
	return out
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
