package maze

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Sampler draws uniform integers in [0, n). *rand.Rand satisfies it.
type Sampler interface {
	Intn(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampler makes every run draw from s. Runs continue the sequence of s
// rather than restarting it.
func WithSampler(s Sampler) Option {
	return func(g *Generator) {
		g.newSampler = func() Sampler { return s }
	}
}

// WithSeed makes every run draw from a source seeded with seed, so repeated
// runs produce the same maze.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.newSampler = func() Sampler { return rand.New(rand.NewSource(seed)) }
	}
}

// Generator carves a maze of fixed dimensions.
// It is not safe for concurrent use.
type Generator struct {
	rows       int
	cols       int
	maze       *Maze
	newSampler func() Sampler

	// Per-run state; rebuilt by every Generate call.
	sampler  Sampler
	visited  mapset.Set[CellID]
	frontier *frontier
}

// NewGenerator creates a generator for a rows x cols maze.
// Without options each run uses a freshly time-seeded source.
func NewGenerator(rows, cols int, opts ...Option) *Generator {
	g := &Generator{
		rows: rows,
		cols: cols,
		maze: &Maze{},
		newSampler: func() Sampler {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Maze returns the maze produced by the last successful Generate.
func (g *Generator) Maze() *Maze {
	return g.maze
}

// Generate builds a fully walled maze and carves it.
//
// Steps:
//  1. Visit cell (0,0): mark it visited and push its walls towards unvisited cells.
//  2. While the frontier is not empty, draw a wall uniformly. If exactly one side
//     is visited, remove the wall and visit the other side. Drop the wall either way.
//  3. Open the entrance (top of the first cell) and the exit (bottom of the last cell).
//
// Every cell is visited once and a wall is removed only when it adds a new cell,
// so the open passages form a spanning tree. It returns ErrInvalidDimensions,
// leaving the previous maze untouched, when the dimensions are not positive.
func (g *Generator) Generate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrInvalidDimensions
	}

	maze, err := New(g.rows, g.cols)
	if err != nil {
		return err
	}

	g.maze = maze
	g.sampler = g.newSampler()
	g.visited = mapset.New[CellID]()
	g.frontier = newFrontier()
	defer g.release()

	g.visitCell(maze.CellID(0, 0))

	for g.frontier.len() > 0 {
		wallID := g.selectRandomWall()
		wall, _ := maze.Wall(wallID)

		visited1 := g.visited.Has(wall.CellID1())
		visited2 := g.visited.Has(wall.CellID2())
		if visited1 != visited2 {
			newCellID := wall.CellID1()
			if visited1 {
				newCellID = wall.CellID2()
			}
			maze.RemoveWall(wallID)
			g.visitCell(newCellID)
		}

		g.frontier.remove(wallID)
	}

	entrance := maze.WallID(0, 0, Top)
	exit := maze.WallID(g.rows-1, g.cols-1, Bottom)
	maze.RemoveWall(entrance)
	maze.RemoveWall(exit)

	return nil
}

// visitCell marks a cell visited and pushes every wall leading to an unvisited cell.
func (g *Generator) visitCell(id CellID) {
	cell := g.maze.Cell(id)
	cell.EnumerateWalls(func(wallID WallID) {
		wall, ok := g.maze.Wall(wallID)
		if !ok {
			return
		}
		other := wall.OtherCellID(id)
		if other == InvalidCellID || g.visited.Has(other) {
			return
		}
		g.frontier.add(wallID)
	})
	g.visited.Put(id)
}

func (g *Generator) selectRandomWall() WallID {
	return g.frontier.at(g.sampler.Intn(g.frontier.len()))
}

func (g *Generator) release() {
	g.sampler = nil
	g.visited = mapset.Set[CellID]{}
	g.frontier = nil
}
