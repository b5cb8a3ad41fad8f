package i

import (
	"context"

	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/placement"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
)

// MazeBuilder generates mazes and manages the settings they are generated from.
type MazeBuilder interface {
	// Build generates a maze for s and stores its placement plan.
	Build(ctx context.Context, ownerID uuid.UUID, s settings.Settings, opts ...maze.Option) (*placement.Plan, error)

	// Plan returns a stored plan owned by ownerID.
	Plan(ctx context.Context, ownerID, planID uuid.UUID) (*placement.Plan, error)

	// Settings returns the owner's saved settings, or the defaults.
	Settings(ctx context.Context, ownerID uuid.UUID) (settings.Settings, error)

	// SaveSettings validates and stores the owner's settings.
	SaveSettings(ctx context.Context, ownerID uuid.UUID, s settings.Settings) error
}
