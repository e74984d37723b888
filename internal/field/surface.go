package field

import "image/color"

// Surface is the drawing target the engine rasterises onto. Alpha is the
// compositing weight, applied on top of the colour's own alpha.
type Surface interface {
	Clear()
	Disc(x, y, radius float64, c color.NRGBA, alpha float64)
	Line(x0, y0, x1, y1 float64, c color.NRGBA, alpha float64)
}
