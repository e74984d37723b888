package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screen draws the field onto an ebiten image.
type screen struct {
	img *ebiten.Image
}

func (s *screen) Clear() {
	s.img.Clear()
}

func (s *screen) Disc(x, y, radius float64, c color.NRGBA, alpha float64) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), withAlpha(c, alpha), true)
}

func (s *screen) Line(x0, y0, x1, y1 float64, c color.NRGBA, alpha float64) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, withAlpha(c, alpha), true)
}
