// Package placement turns generated wall segments into a host-independent placement plan:
// one wall element per segment, an optional slab under the maze and a grouping flag.
package placement

import (
	"time"

	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
)

// SlabPadding is how far the slab extends past the maze outline on every side.
const SlabPadding = 2.0

// ReferenceLineCenter places a wall symmetrically around its segment.
const ReferenceLineCenter = "center"

// Point is a plan coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by two opposite corners.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Corners returns the closed outline of the rectangle, starting and ending at Min.
func (r Rect) Corners() []Point {
	return []Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
		r.Min,
	}
}

// WallElement is one vertical planar element anchored at its two endpoints.
type WallElement struct {
	Begin         Point  `json:"begin"`
	End           Point  `json:"end"`
	ReferenceLine string `json:"reference_line"`
}

// Plan lists everything to place for one generated maze.
type Plan struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"owner_id"`
	Settings  settings.Settings `json:"settings"`
	Walls     []WallElement     `json:"walls"`
	Slab      *Rect             `json:"slab,omitempty"`
	Group     bool              `json:"group"`
	CreatedAt time.Time         `json:"created_at"`
}

// New builds a plan from the emitted segments of a maze generated with s.
func New(ownerID uuid.UUID, s settings.Settings, segments []maze.WallGeometry) *Plan {
	walls := make([]WallElement, 0, len(segments))
	for _, seg := range segments {
		walls = append(walls, WallElement{
			Begin:         Point{X: seg.BegX, Y: seg.BegY},
			End:           Point{X: seg.EndX, Y: seg.EndY},
			ReferenceLine: ReferenceLineCenter,
		})
	}

	plan := &Plan{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Settings:  s,
		Walls:     walls,
		Group:     s.CreateGroup,
		CreatedAt: time.Now().UTC(),
	}

	if s.CreateSlab {
		slab := plan.Bounds()
		slab.Min.X -= SlabPadding
		slab.Min.Y -= SlabPadding
		slab.Max.X += SlabPadding
		slab.Max.Y += SlabPadding
		plan.Slab = &slab
	}

	return plan
}

// Bounds returns the maze outline without padding.
func (p *Plan) Bounds() Rect {
	return Rect{
		Min: Point{X: 0, Y: 0},
		Max: Point{X: p.Settings.Width(), Y: p.Settings.Height()},
	}
}

// ElementCount returns how many elements the plan places.
func (p *Plan) ElementCount() int {
	n := len(p.Walls)
	if p.Slab != nil {
		n++
	}
	return n
}
