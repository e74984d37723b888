package render

import "image/color"

// Counter is a surface that only counts draw calls. It lets the engine run
// at full speed without rasterising anything.
type Counter struct {
	Clears int
	Discs  int
	Lines  int
}

func (c *Counter) Clear() { c.Clears++ }

func (c *Counter) Disc(_, _, _ float64, _ color.NRGBA, _ float64) { c.Discs++ }

func (c *Counter) Line(_, _, _, _ float64, _ color.NRGBA, _ float64) { c.Lines++ }

// Reset zeroes all counts.
func (c *Counter) Reset() { *c = Counter{} }
