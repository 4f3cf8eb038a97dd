package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	AdminID         uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase lets an authenticated account replace its own
// password after proving the current one.
type ChangePasswordUseCase struct {
	adminRepo       adapter.AdminRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(adminRepo adapter.AdminRepository, passwordService adapter.PasswordService) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	if len(input.NewPassword) < MinPasswordLength {
		return domainerror.NewAuthError(
			domainerror.ErrCodePasswordTooShort,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
			domainerror.ErrPasswordTooShort,
		)
	}

	admin, err := uc.adminRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		return err
	}

	if err := uc.passwordService.VerifyPassword(admin.PasswordHash, input.CurrentPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWrongCurrentPassword,
			"current password is incorrect",
			domainerror.ErrWrongCurrentPassword,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.PasswordHash = hash
	admin.ForcePasswordChange = false

	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	return nil
}
