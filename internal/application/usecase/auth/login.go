// Package auth contains the staff account use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// LoginInput represents the input for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	Token string
	Admin *entity.Admin
}

// LoginUseCase verifies credentials and issues an access token. Unknown
// username and wrong password produce the same error, so the endpoint does
// not leak which accounts exist.
type LoginUseCase struct {
	adminRepo       adapter.AdminRepository
	tokenService    adapter.TokenService
	passwordService adapter.PasswordService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	adminRepo adapter.AdminRepository,
	tokenService adapter.TokenService,
	passwordService adapter.PasswordService,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo:       adminRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}

// Execute performs the login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	admin, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerror.ErrAdminNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(admin.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.GenerateToken(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginOutput{Token: token, Admin: admin}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
