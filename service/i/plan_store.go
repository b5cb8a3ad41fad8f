package i

import (
	"context"

	"github.com/beka-birhanu/mazegen/placement"
	"github.com/google/uuid"
)

// PlanStore keeps generated placement plans for a limited time.
type PlanStore interface {
	Save(ctx context.Context, plan *placement.Plan) error

	// ByID returns a stored plan, or ErrNotFound once it expired or never existed.
	ByID(ctx context.Context, id uuid.UUID) (*placement.Plan, error)
}
