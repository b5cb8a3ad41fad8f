package maze

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSampler replays a fixed draw sequence, wrapping each value into range.
type scriptedSampler struct {
	draws []int
	next  int
}

func (s *scriptedSampler) Intn(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

// openNeighbors returns the cells reachable from id through sides without a wall.
func openNeighbors(m *Maze, id CellID) []CellID {
	row, col := m.CellPosition(id)
	cell := m.Cell(id)
	var result []CellID
	for _, dir := range Directions {
		if cell.HasWall(dir) {
			continue
		}
		dRow, dCol := dir.offset()
		if next := m.CellID(row+dRow, col+dCol); next != InvalidCellID {
			result = append(result, next)
		}
	}
	return result
}

// reachableCells runs a BFS over open sides from cell (0,0).
func reachableCells(m *Maze) int {
	total := m.Rows() * m.Cols()
	seen := make([]bool, total)
	queue := []CellID{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, next := range openNeighbors(m, queue[qi]) {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(queue)
}

// openInteriorSides counts removed walls between two cells.
func openInteriorSides(m *Maze) int {
	count := 0
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			cell := m.Cell(m.CellID(row, col))
			if col < m.Cols()-1 && !cell.HasWall(Right) {
				count++
			}
			if row < m.Rows()-1 && !cell.HasWall(Bottom) {
				count++
			}
		}
	}
	return count
}

// openBoundarySides counts missing walls on the grid outline.
func openBoundarySides(m *Maze) int {
	count := 0
	rows, cols := m.Rows(), m.Cols()
	for col := 0; col < cols; col++ {
		if !m.Cell(m.CellID(0, col)).HasWall(Top) {
			count++
		}
		if !m.Cell(m.CellID(rows-1, col)).HasWall(Bottom) {
			count++
		}
	}
	for row := 0; row < rows; row++ {
		if !m.Cell(m.CellID(row, 0)).HasWall(Left) {
			count++
		}
		if !m.Cell(m.CellID(row, cols-1)).HasWall(Right) {
			count++
		}
	}
	return count
}

func TestGenerate_SpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 7}, {10, 20}, {25, 25}}
	for _, size := range sizes {
		rows, cols := size[0], size[1]
		for seed := int64(1); seed <= 5; seed++ {
			g := NewGenerator(rows, cols, WithSeed(seed))
			require.NoError(t, g.Generate())
			m := g.Maze()

			assert.Equalf(t, rows*cols, reachableCells(m), "%dx%d seed %d: not every cell is reachable", rows, cols, seed)
			assert.Equalf(t, rows*cols-1, openInteriorSides(m), "%dx%d seed %d: carved passages do not form a tree", rows, cols, seed)
			assert.Equalf(t, 2, openBoundarySides(m), "%dx%d seed %d: expected only entrance and exit on the outline", rows, cols, seed)
			assert.Equal(t, initialWallCount(rows, cols)-(rows*cols-1)-2, m.WallCount())

			assert.False(t, m.Cell(m.CellID(0, 0)).HasWall(Top), "entrance must be open")
			assert.False(t, m.Cell(m.CellID(rows-1, cols-1)).HasWall(Bottom), "exit must be open")
		}
	}
}

func TestGenerate_SingleCell(t *testing.T) {
	g := NewGenerator(1, 1)
	require.NoError(t, g.Generate())
	m := g.Maze()

	cell := m.Cell(m.CellID(0, 0))
	assert.True(t, cell.HasWall(Left))
	assert.True(t, cell.HasWall(Right))
	assert.False(t, cell.HasWall(Top))
	assert.False(t, cell.HasWall(Bottom))
	assert.Equal(t, 2, m.WallCount())

	assert.Equal(t, []WallGeometry{
		{BegX: 0, BegY: 0, EndX: 0, EndY: 1},
		{BegX: 1, BegY: 0, EndX: 1, EndY: 1},
	}, m.WallGeometries(1.0))
}

func TestGenerate_TwoByTwo(t *testing.T) {
	g := NewGenerator(2, 2, WithSampler(&scriptedSampler{draws: []int{0}}))
	require.NoError(t, g.Generate())
	m := g.Maze()

	// 12 walls in a fully walled 2x2 grid; 3 carved plus entrance and exit.
	assert.Equal(t, 12-3-2, m.WallCount())
	assert.Equal(t, 3, openInteriorSides(m))
	assert.Equal(t, 4, reachableCells(m))
}

func TestGenerate_ScriptedDrawsAreReproducible(t *testing.T) {
	draws := []int{7, 3, 11, 0, 5, 2, 9, 4, 1, 8, 6, 13}
	run := func() []byte {
		g := NewGenerator(8, 9, WithSampler(&scriptedSampler{draws: draws}))
		require.NoError(t, g.Generate())
		out, err := json.Marshal(g.Maze().WallGeometries(1.25))
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, run(), run())
}

func TestGenerate_ZeroDrawsCarveLeftToRight(t *testing.T) {
	// (0,0) can only push its Right wall, so a single row is carved left to right.
	g := NewGenerator(1, 3, WithSampler(&scriptedSampler{draws: []int{0}}))
	require.NoError(t, g.Generate())
	m := g.Maze()

	assert.False(t, m.Cell(m.CellID(0, 0)).HasWall(Right))
	assert.False(t, m.Cell(m.CellID(0, 1)).HasWall(Right))
	assert.Equal(t, []WallGeometry{
		{BegX: 1, BegY: 0, EndX: 3, EndY: 0},
		{BegX: 0, BegY: 1, EndX: 2, EndY: 1},
		{BegX: 0, BegY: 0, EndX: 0, EndY: 1},
		{BegX: 3, BegY: 0, EndX: 3, EndY: 1},
	}, m.WallGeometries(1.0))
}

func TestGenerate_SeedIsRepeatable(t *testing.T) {
	g := NewGenerator(15, 15, WithSeed(42))
	require.NoError(t, g.Generate())
	first := g.Maze().WallGeometries(1.0)

	require.NoError(t, g.Generate())
	second := g.Maze().WallGeometries(1.0)

	assert.Equal(t, first, second)
}

func TestGenerate_SharedSamplerContinues(t *testing.T) {
	g := NewGenerator(10, 10, WithSampler(rand.New(rand.NewSource(3))))
	require.NoError(t, g.Generate())
	first := g.Maze()

	require.NoError(t, g.Generate())
	second := g.Maze()

	assert.NotSame(t, first, second, "every run must rebuild the maze")
	assert.Equal(t, 100, reachableCells(second))
	assert.Equal(t, 99, openInteriorSides(second))
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-3, 4}} {
		g := NewGenerator(dims[0], dims[1])
		before := g.Maze()

		assert.ErrorIs(t, g.Generate(), ErrInvalidDimensions)
		assert.Same(t, before, g.Maze())
		assert.Zero(t, g.Maze().WallCount())
	}
}

func TestFrontier(t *testing.T) {
	f := newFrontier()
	f.add(4)
	f.add(9)
	f.add(4)
	f.add(2)
	require.Equal(t, 3, f.len())

	f.remove(4)
	assert.Equal(t, 2, f.len())
	assert.False(t, f.has(4))
	assert.Equal(t, WallID(2), f.at(0))
	assert.Equal(t, WallID(9), f.at(1))

	f.remove(4)
	f.remove(2)
	f.remove(9)
	assert.Zero(t, f.len())
}
