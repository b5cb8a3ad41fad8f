// Package mazeapi provides the request and response bodies of the maze endpoints.
package mazeapi

import (
	"github.com/beka-birhanu/mazegen/placement"
	"github.com/beka-birhanu/mazegen/settings"
)

// BuildRequest asks for a new maze. Without settings the caller's saved
// settings are used; a seed makes the maze reproducible.
type BuildRequest struct {
	Settings *settings.Settings `json:"settings"`
	Seed     *int64             `json:"seed"`
}

// PlanResponse wraps a placement plan with its derived figures.
type PlanResponse struct {
	*placement.Plan
	ElementCount int            `json:"element_count"`
	Bounds       placement.Rect `json:"bounds"`
}

func newPlanResponse(plan *placement.Plan) *PlanResponse {
	return &PlanResponse{
		Plan:         plan,
		ElementCount: plan.ElementCount(),
		Bounds:       plan.Bounds(),
	}
}
