// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// TeamFilter defines filter options for listing teams.
type TeamFilter struct {
	SeasonID *uuid.UUID
	Status   *entity.TeamStatus
}

// TeamRepository defines the interface for team persistence operations.
// A team and its members/receipt books are always read and written as one unit.
type TeamRepository interface {
	// Create persists a new team with its members.
	Create(ctx context.Context, team *entity.Team) error

	// FindByID retrieves a team with its members and receipt books.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)

	// FindByFilter retrieves teams matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TeamFilter) ([]*entity.Team, error)

	// Update persists the team row together with its members and receipt
	// books in a single transaction. The write is guarded by the stored lock
	// flag: if the persisted record is already locked the update affects no
	// rows and ErrTeamLocked is returned, so a racing finalize loses cleanly.
	Update(ctx context.Context, team *entity.Team) error

	// Delete removes the team and its embedded members and books.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindEnteredBook scans the season for another team holding the given
	// book number with recorded collection. Returns (nil, nil) when the book
	// is free. This is the application-level pre-check; the partial unique
	// index on (season_id, book_number) for entered books is the backstop.
	FindEnteredBook(ctx context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error)

	// FindAssignedBook is the soft variant of FindEnteredBook: it matches any
	// assignment of the book number in the season, entered or not. Used only
	// under the strict assignment policy.
	FindAssignedBook(ctx context.Context, seasonID uuid.UUID, bookNumber int, excludeTeamID uuid.UUID) (*entity.Team, error)
}
