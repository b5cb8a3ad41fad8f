/*
Package maze provides tools for creating rectangular mazes and turning them into wall geometry.

A Maze is a grid of cells whose sides are closed by walls. Cells and walls refer to
each other only through integer ids: cells live in a row-major slice and walls in an
id-keyed registry, so removing a wall never leaves a dangling reference.

A Generator carves a randomized spanning tree into a fully walled maze (a frontier
growth equivalent to randomized Prim's algorithm), then opens an entrance at the top
of the first cell and an exit at the bottom of the last one. WallGeometries reduces
the surviving walls to the fewest axis-aligned segments.
*/
package maze

import (
	"errors"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
)

// Maze represents a rectangular grid of cells and the walls between them.
type Maze struct {
	rows       int             // Number of rows in the grid
	cols       int             // Number of columns in the grid
	cells      []Cell          // Cells indexed by CellID
	walls      map[WallID]Wall // Wall registry indexed by WallID
	nextWallID WallID          // Next id handed out by AddWall
}

// New creates a fully walled maze of the given dimensions.
func New(rows, cols int) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Maze{}
	m.Reset(rows, cols)
	return m, nil
}

// Reset rebuilds the maze from scratch for new dimensions, closing every cell side.
// Each cell registers its Left and Top walls; the last row adds Bottom walls and the
// last column adds Right walls, so shared interior walls are created once.
// Non-positive dimensions yield an empty maze.
func (m *Maze) Reset(rows, cols int) {
	m.rows = max(rows, 0)
	m.cols = max(cols, 0)
	m.walls = make(map[WallID]Wall, 2*m.rows*m.cols+m.rows+m.cols)
	m.nextWallID = 0

	m.cells = make([]Cell, m.rows*m.cols)
	for i := range m.cells {
		m.cells[i] = newCell()
	}

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			m.AddWall(row, col, Left)
			m.AddWall(row, col, Top)
			if row == m.rows-1 {
				m.AddWall(row, col, Bottom)
			}
			if col == m.cols-1 {
				m.AddWall(row, col, Right)
			}
		}
	}
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.cols
}

// InBound checks whether a position lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// CellID returns the id of the cell at (row, col), or InvalidCellID when out of range.
func (m *Maze) CellID(row, col int) CellID {
	if !m.InBound(row, col) {
		return InvalidCellID
	}
	return CellID(row*m.cols + col)
}

// CellPosition returns the row and column of a cell id.
func (m *Maze) CellPosition(id CellID) (int, int) {
	if !m.validCell(id) {
		return -1, -1
	}
	return int(id) / m.cols, int(id) % m.cols
}

// Cell returns a copy of the cell with the given id.
// An unknown id yields a cell with every slot empty.
func (m *Maze) Cell(id CellID) Cell {
	if !m.validCell(id) {
		return newCell()
	}
	return m.cells[id]
}

// WallID returns the wall on side dir of the cell at (row, col), or InvalidWallID.
func (m *Maze) WallID(row, col int, dir Direction) WallID {
	id := m.CellID(row, col)
	if id == InvalidCellID {
		return InvalidWallID
	}
	return m.cells[id].Wall(dir)
}

// Wall looks up a wall in the registry.
func (m *Maze) Wall(id WallID) (Wall, bool) {
	w, ok := m.walls[id]
	return w, ok
}

// WallCount returns the number of walls still standing.
func (m *Maze) WallCount() int {
	return len(m.walls)
}

// AddWall closes side dir of the cell at (row, col) and returns the new wall id.
// It returns InvalidWallID when the cell does not exist, the side is already closed,
// or the neighbor already registered the shared wall from its own side.
func (m *Maze) AddWall(row, col int, dir Direction) WallID {
	curID := m.CellID(row, col)
	if curID == InvalidCellID || !dir.valid() {
		return InvalidWallID
	}

	cur := &m.cells[curID]
	if cur.HasWall(dir) {
		return InvalidWallID
	}

	dRow, dCol := dir.offset()
	nextID := m.CellID(row+dRow, col+dCol)
	nextDir := dir.Opposite()
	if nextID != InvalidCellID && m.cells[nextID].HasWall(nextDir) {
		return InvalidWallID
	}

	wallID := m.nextWallID
	m.nextWallID++
	m.walls[wallID] = Wall{cellID1: curID, cellID2: nextID}

	cur.setWall(dir, wallID)
	if nextID != InvalidCellID {
		m.cells[nextID].setWall(nextDir, wallID)
	}

	return wallID
}

// RemoveWall detaches a wall from both adjacent cells and drops it from the registry.
// It reports false, and changes nothing, when the wall does not exist.
func (m *Maze) RemoveWall(id WallID) bool {
	w, ok := m.walls[id]
	if !ok {
		return false
	}

	if m.validCell(w.cellID1) {
		m.cells[w.cellID1].clearWall(id)
	}
	if m.validCell(w.cellID2) {
		m.cells[w.cellID2].clearWall(id)
	}
	delete(m.walls, id)

	return true
}

func (m *Maze) validCell(id CellID) bool {
	return id >= 0 && int(id) < len(m.cells)
}
