package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// AdminRepository defines the interface for admin account persistence operations.
type AdminRepository interface {
	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByUsername retrieves an admin by username.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// Count returns the number of admin accounts. Used by the startup seed.
	Count(ctx context.Context) (int64, error)

	// Update persists changes to an existing admin account.
	Update(ctx context.Context, admin *entity.Admin) error
}
