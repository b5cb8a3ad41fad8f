package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/mazegen/identity"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by repositories and stores when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// AccountRepo defines the interface for account persistence operations.
type AccountRepo interface {
	// Save inserts or updates an account in the repository.
	// If the account already exists, it updates the record. Otherwise, it creates a new one.
	// Returns ErrConflict if another account holds the username.
	Save(account *identity.Account) error

	// ByID retrieves an account by its unique ID.
	// Returns ErrNotFound if the account does not exist.
	ByID(id uuid.UUID) (*identity.Account, error)

	// ByUsername retrieves an account by its username.
	// Returns ErrNotFound if the account does not exist.
	ByUsername(username string) (*identity.Account, error)
}

// SettingsRepo persists the last settings each account used.
type SettingsRepo interface {
	// Save stores the settings as the owner's current record, replacing any previous one.
	Save(ctx context.Context, ownerID uuid.UUID, s settings.Settings) error

	// ByOwner returns the owner's stored settings, or ErrNotFound.
	ByOwner(ctx context.Context, ownerID uuid.UUID) (settings.Settings, error)
}
