package maze

// CellID identifies a cell by its row-major position in the grid.
type CellID int

// WallID identifies a wall. IDs are allocated in increasing order and are never reused.
type WallID int

const (
	InvalidCellID CellID = -1 // InvalidCellID signals "no such cell", e.g. outside the grid.
	InvalidWallID WallID = -1 // InvalidWallID signals an empty wall slot or a rejected AddWall.
)

// Direction names one side of a cell.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
	InvalidDirection
)

// Directions lists the valid sides in slot order.
var Directions = [...]Direction{Left, Right, Top, Bottom}

// Opposite returns the side a neighbor uses for the same wall.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		return InvalidDirection
	}
}

// offset returns the row and column step towards the neighbor on side d.
func (d Direction) offset() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Top:
		return -1, 0
	case Bottom:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) valid() bool {
	return d >= Left && d < InvalidDirection
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Invalid"
	}
}

// Cell represents a single cell in a maze grid.
// It holds one wall slot per side; an empty slot means the side is open.
type Cell struct {
	walls [4]WallID
}

func newCell() Cell {
	return Cell{walls: [4]WallID{InvalidWallID, InvalidWallID, InvalidWallID, InvalidWallID}}
}

// HasWall reports whether the side dir is closed.
func (c Cell) HasWall(dir Direction) bool {
	return c.Wall(dir) != InvalidWallID
}

// Wall returns the wall on side dir, or InvalidWallID.
func (c Cell) Wall(dir Direction) WallID {
	if !dir.valid() {
		return InvalidWallID
	}
	return c.walls[dir]
}

// EnumerateWalls calls fn for every occupied slot in Left, Right, Top, Bottom order.
func (c Cell) EnumerateWalls(fn func(WallID)) {
	for _, id := range c.walls {
		if id != InvalidWallID {
			fn(id)
		}
	}
}

// Walls returns the occupied slots in the same order as EnumerateWalls.
func (c Cell) Walls() []WallID {
	ids := make([]WallID, 0, len(c.walls))
	c.EnumerateWalls(func(id WallID) {
		ids = append(ids, id)
	})
	return ids
}

func (c *Cell) setWall(dir Direction, id WallID) {
	c.walls[dir] = id
}

// clearWall empties every slot that still references id.
func (c *Cell) clearWall(id WallID) {
	for i := range c.walls {
		if c.walls[i] == id {
			c.walls[i] = InvalidWallID
		}
	}
}

// Wall separates two cells. One side is InvalidCellID when the wall lies on the grid boundary.
type Wall struct {
	cellID1 CellID
	cellID2 CellID
}

// CellID1 returns the cell the wall was registered from.
func (w Wall) CellID1() CellID {
	return w.cellID1
}

// CellID2 returns the neighbor across the wall, or InvalidCellID on the boundary.
func (w Wall) CellID2() CellID {
	return w.cellID2
}

// OtherCellID returns the cell across the wall from id.
// It returns InvalidCellID when id is not a side of the wall.
func (w Wall) OtherCellID(id CellID) CellID {
	switch id {
	case w.cellID1:
		return w.cellID2
	case w.cellID2:
		return w.cellID1
	default:
		return InvalidCellID
	}
}

// IsBoundary reports whether the wall has the outside of the grid on one side.
func (w Wall) IsBoundary() bool {
	return w.cellID1 == InvalidCellID || w.cellID2 == InvalidCellID
}
