package field

import "slices"

// grid buckets point indices into square cells so the edge pass only
// compares points in neighbouring cells. With the cell size equal to the
// link distance every linked pair is at most one cell apart.
type grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
	cellOf   []int
}

func newGrid(w, h, cellSize float64) *grid {
	cols := int(w/cellSize) + 1
	rows := int(h/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8)
	}

	return &grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// rebuild re-buckets every point of f.
func (g *grid) rebuild(f Field) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	if cap(g.cellOf) < len(f) {
		g.cellOf = make([]int, len(f))
	}
	g.cellOf = g.cellOf[:len(f)]

	for i := range f {
		col, row := g.cellCoords(f[i].Pos.X, f[i].Pos.Y)
		idx := row*g.cols + col
		g.cells[idx] = append(g.cells[idx], i)
		g.cellOf[i] = idx
	}
}

// candidates appends every index j > i sharing or touching i's cell, in
// ascending order.
func (g *grid) candidates(dst []int, i int) []int {
	idx := g.cellOf[i]
	col, row := idx%g.cols, idx/g.cols

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, j := range g.cells[r*g.cols+c] {
				if j > i {
					dst = append(dst, j)
				}
			}
		}
	}

	slices.Sort(dst)
	return dst
}

// cellCoords clamps positions outside the viewport into the border cells.
// Clamping never pushes two points more than one cell further apart.
func (g *grid) cellCoords(x, y float64) (int, int) {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	if x < 0 || col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if y < 0 || row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
