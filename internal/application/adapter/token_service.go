package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	AdminID  uuid.UUID
	Username string
	Role     entity.AdminRole
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateToken issues a signed access token for the admin.
	GenerateToken(ctx context.Context, admin *entity.Admin) (string, error)

	// ValidateToken verifies a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
