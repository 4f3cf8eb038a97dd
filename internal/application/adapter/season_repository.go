package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// SeasonRepository defines the interface for season persistence operations.
type SeasonRepository interface {
	// Create persists a new season.
	Create(ctx context.Context, season *entity.Season) error

	// FindByID retrieves a season by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Season, error)

	// FindAll retrieves all seasons, newest first.
	FindAll(ctx context.Context) ([]*entity.Season, error)

	// FindActive retrieves the currently active season.
	FindActive(ctx context.Context) (*entity.Season, error)

	// Activate marks the given season active and deactivates every other
	// season in the same transaction, so exactly one season is active.
	Activate(ctx context.Context, id uuid.UUID) (*entity.Season, error)

	// SetLocked sets the season's locked flag.
	SetLocked(ctx context.Context, id uuid.UUID, locked bool) (*entity.Season, error)
}
