package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/beka-birhanu/mazegen/config"
	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/placement"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
)

const (
	defaultMaxMazeDimension = 200
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrMissingDependency = errors.New("missing dependency")
)

// MazeService generates mazes, stores their placement plans and remembers
// the settings each account generated with.
type MazeService struct {
	plans        i.PlanStore
	settingsRepo i.SettingsRepo
	locker       i.Locker
	maxDimension int
	logger       *log.Logger
}

// MazeConfig holds the dependencies of a MazeService.
type MazeConfig struct {
	Plans        i.PlanStore
	SettingsRepo i.SettingsRepo
	Locker       i.Locker // Serializes writes per owner
	MaxDimension int // Largest accepted row or column count; defaults to 200
	Logger       *log.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(c *MazeConfig) (*MazeService, error) {
	if c == nil || c.Plans == nil || c.SettingsRepo == nil || c.Locker == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxMazeDimension
	}

	return &MazeService{
		plans:        c.Plans,
		settingsRepo: c.SettingsRepo,
		locker:       c.Locker,
		maxDimension: maxDimension,
		logger:       c.Logger,
	}, nil
}

// Build generates a maze for s, stores its placement plan and saves s as the
// owner's current settings. Generator options (e.g. maze.WithSeed) are passed through.
func (m *MazeService) Build(ctx context.Context, ownerID uuid.UUID, s settings.Settings, opts ...maze.Option) (*placement.Plan, error) {
	if err := s.Validate(m.maxDimension); err != nil {
		return nil, err
	}

	generator := maze.NewGenerator(int(s.RowCount), int(s.ColumnCount), opts...)
	if err := generator.Generate(); err != nil {
		m.logger.Printf("%s generating %dx%d maze: %s", config.ErrorTag, s.RowCount, s.ColumnCount, err)
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	segments := generator.Maze().WallGeometries(s.CellSize)
	plan := placement.New(ownerID, s, segments)

	unlock, err := m.lockOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := m.plans.Save(ctx, plan); err != nil {
		m.logger.Printf("%s saving plan %s: %s", config.ErrorTag, plan.ID, err)
		return nil, fmt.Errorf("saving plan: %w", err)
	}

	if err := m.settingsRepo.Save(ctx, ownerID, s); err != nil {
		m.logger.Printf("%s remembering settings for %s: %s", config.ErrorTag, ownerID, err)
	}

	m.logger.Printf("%s built %dx%d maze %s with %d wall segments", config.InfoTag, s.RowCount, s.ColumnCount, plan.ID, len(segments))
	return plan, nil
}

// Plan returns a stored plan. Plans of other owners are reported as not found.
func (m *MazeService) Plan(ctx context.Context, ownerID, planID uuid.UUID) (*placement.Plan, error) {
	plan, err := m.plans.ByID(ctx, planID)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	if plan.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}

	return plan, nil
}

// Settings returns the owner's saved settings, falling back to settings.Default.
func (m *MazeService) Settings(ctx context.Context, ownerID uuid.UUID) (settings.Settings, error) {
	s, err := m.settingsRepo.ByOwner(ctx, ownerID)
	if errors.Is(err, i.ErrNotFound) {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// SaveSettings validates and stores the owner's settings.
func (m *MazeService) SaveSettings(ctx context.Context, ownerID uuid.UUID, s settings.Settings) error {
	if err := s.Validate(m.maxDimension); err != nil {
		return err
	}

	unlock, err := m.lockOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := m.settingsRepo.Save(ctx, ownerID, s); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	m.logger.Printf("%s saved settings for %s", config.InfoTag, ownerID)
	return nil
}

// lockOwner holds the owner's lock so the plan and the last-settings record of
// concurrent requests are written in one order.
func (m *MazeService) lockOwner(ctx context.Context, ownerID uuid.UUID) (func(), error) {
	unlock, err := m.locker.Lock(ctx, ownerLockKey(ownerID))
	if err != nil {
		m.logger.Printf("%s locking owner %s: %s", config.ErrorTag, ownerID, err)
		return nil, fmt.Errorf("locking owner: %w", err)
	}
	return unlock, nil
}

func ownerLockKey(ownerID uuid.UUID) string {
	return "owner:" + ownerID.String()
}
