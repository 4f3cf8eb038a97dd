package fielddata

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// DeleteFieldDataInput represents the input for deleting a survey entry.
type DeleteFieldDataInput struct {
	Actor       adapter.TokenClaims
	FieldDataID uuid.UUID
}

// DeleteFieldDataUseCase handles survey entry deletion. Deletion is reserved
// for admins regardless of who created the entry.
type DeleteFieldDataUseCase struct {
	fieldDataRepo adapter.FieldDataRepository
}

// NewDeleteFieldDataUseCase creates a new DeleteFieldDataUseCase instance.
func NewDeleteFieldDataUseCase(fieldDataRepo adapter.FieldDataRepository) *DeleteFieldDataUseCase {
	return &DeleteFieldDataUseCase{fieldDataRepo: fieldDataRepo}
}

// Execute performs the survey entry deletion.
func (uc *DeleteFieldDataUseCase) Execute(ctx context.Context, input DeleteFieldDataInput) error {
	if input.Actor.Role != entity.RoleAdmin {
		return domainerror.NewFieldDataError(
			domainerror.ErrCodeFieldDataAccessDenied,
			"access to field data entry denied",
			domainerror.ErrFieldDataAccessDenied,
		)
	}

	data, err := uc.fieldDataRepo.FindByID(ctx, input.FieldDataID)
	if err != nil {
		return err
	}

	if data.IsLocked {
		return domainerror.NewFieldDataError(
			domainerror.ErrCodeFieldDataLocked,
			"field data entry is locked",
			domainerror.ErrFieldDataLocked,
		)
	}

	if err := uc.fieldDataRepo.Delete(ctx, data.ID); err != nil {
		return fmt.Errorf("failed to delete field data: %w", err)
	}

	return nil
}
