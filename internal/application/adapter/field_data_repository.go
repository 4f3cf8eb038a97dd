package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// FieldDataFilter defines filter options for listing field survey entries.
type FieldDataFilter struct {
	SeasonID  *uuid.UUID
	CreatedBy *uuid.UUID
}

// FieldDataRepository defines the interface for field survey persistence operations.
type FieldDataRepository interface {
	// Create persists a new field survey entry.
	Create(ctx context.Context, data *entity.FieldData) error

	// FindByID retrieves a field survey entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FieldData, error)

	// FindByFilter retrieves entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter FieldDataFilter) ([]*entity.FieldData, error)

	// Update persists changes to an existing entry.
	Update(ctx context.Context, data *entity.FieldData) error

	// Delete removes an entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetLockedBySeason locks or unlocks every entry of a season and returns
	// the number of affected entries.
	SetLockedBySeason(ctx context.Context, seasonID uuid.UUID, locked bool) (int64, error)

	// ExistsForPlace reports whether any survey entry in the season references
	// the given place name. Consulted by the team deletion gate.
	ExistsForPlace(ctx context.Context, seasonID uuid.UUID, place string) (bool, error)
}
