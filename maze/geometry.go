package maze

import "math"

// MergeEpsilon is the largest gap between two collinear wall spans that still
// counts as touching. It absorbs rounding in cellSize*index positions.
const MergeEpsilon = 0.00005

// WallGeometry is one emitted wall segment in cellSize units.
type WallGeometry struct {
	BegX float64 `json:"beg_x"`
	BegY float64 `json:"beg_y"`
	EndX float64 `json:"end_x"`
	EndY float64 `json:"end_y"`
}

// Length returns the length of the segment.
func (g WallGeometry) Length() float64 {
	return math.Hypot(g.EndX-g.BegX, g.EndY-g.BegY)
}

// Horizontal reports whether the segment runs along a row line.
func (g WallGeometry) Horizontal() bool {
	return g.BegY == g.EndY
}

type orientation int

const (
	horizontal orientation = iota
	vertical
)

// wallCollector merges spans along one grid line into maximal runs.
// Spans must arrive in ascending order along the line.
type wallCollector struct {
	orientation orientation
	elevation   float64 // Fixed coordinate of the grid line
	beg         float64
	end         float64
	open        bool
	segments    []WallGeometry
}

func newWallCollector(o orientation, elevation float64) *wallCollector {
	return &wallCollector{orientation: o, elevation: elevation}
}

// add extends the open run when the span starts where the run ends,
// otherwise it closes the run and starts a new one.
func (c *wallCollector) add(beg, end float64) {
	if c.open && math.Abs(c.end-beg) > MergeEpsilon {
		c.flush()
	}
	if !c.open {
		c.beg = beg
	}
	c.end = end
	c.open = true
}

func (c *wallCollector) flush() {
	if !c.open {
		return
	}
	switch c.orientation {
	case horizontal:
		c.segments = append(c.segments, WallGeometry{BegX: c.beg, BegY: c.elevation, EndX: c.end, EndY: c.elevation})
	case vertical:
		c.segments = append(c.segments, WallGeometry{BegX: c.elevation, BegY: c.beg, EndX: c.elevation, EndY: c.end})
	}
	c.open = false
}

// WallGeometries returns the standing walls as the fewest axis-aligned segments.
// Horizontal segments come first, by row line then x; vertical segments follow,
// by column line then y. The maze is not modified.
func (m *Maze) WallGeometries(cellSize float64) []WallGeometry {
	horizontals := make([]*wallCollector, m.rows+1)
	for row := range horizontals {
		horizontals[row] = newWallCollector(horizontal, float64(row)*cellSize)
	}
	verticals := make([]*wallCollector, m.cols+1)
	for col := range verticals {
		verticals[col] = newWallCollector(vertical, float64(col)*cellSize)
	}

	for row := 0; row < m.rows; row++ {
		top := float64(row) * cellSize
		bottom := float64(row+1) * cellSize
		for col := 0; col < m.cols; col++ {
			left := float64(col) * cellSize
			right := float64(col+1) * cellSize
			cell := m.cells[m.CellID(row, col)]

			if cell.HasWall(Top) {
				horizontals[row].add(left, right)
			}
			if cell.HasWall(Left) {
				verticals[col].add(top, bottom)
			}
			if row == m.rows-1 && cell.HasWall(Bottom) {
				horizontals[row+1].add(left, right)
			}
			if col == m.cols-1 && cell.HasWall(Right) {
				verticals[col+1].add(top, bottom)
			}
		}
	}

	var geometries []WallGeometry
	for _, c := range horizontals {
		c.flush()
		geometries = append(geometries, c.segments...)
	}
	for _, c := range verticals {
		c.flush()
		geometries = append(geometries, c.segments...)
	}

	return geometries
}
