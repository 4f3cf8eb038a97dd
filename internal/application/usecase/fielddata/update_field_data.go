package fielddata

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// UpdateFieldDataInput represents the input for updating a survey entry.
// Nil fields are left unchanged.
type UpdateFieldDataInput struct {
	Actor             adapter.TokenClaims
	FieldDataID       uuid.UUID
	MasjidName        *string
	Place             *string
	Location          *entity.FieldLocation
	ContactPerson     *entity.FieldContact
	CollectionInfo    *string
	YearsOfCollection *int
	Remarks           *string
}

// UpdateFieldDataOutput represents the output of updating a survey entry.
type UpdateFieldDataOutput struct {
	FieldData *entity.FieldData
}

// UpdateFieldDataUseCase handles survey entry updates. Locked entries reject
// edits; data collectors may only touch their own entries.
type UpdateFieldDataUseCase struct {
	fieldDataRepo adapter.FieldDataRepository
}

// NewUpdateFieldDataUseCase creates a new UpdateFieldDataUseCase instance.
func NewUpdateFieldDataUseCase(fieldDataRepo adapter.FieldDataRepository) *UpdateFieldDataUseCase {
	return &UpdateFieldDataUseCase{fieldDataRepo: fieldDataRepo}
}

// Execute performs the survey entry update.
func (uc *UpdateFieldDataUseCase) Execute(ctx context.Context, input UpdateFieldDataInput) (*UpdateFieldDataOutput, error) {
	data, err := uc.fieldDataRepo.FindByID(ctx, input.FieldDataID)
	if err != nil {
		return nil, err
	}

	if err := requireOwnership(input.Actor, data); err != nil {
		return nil, err
	}

	if data.IsLocked {
		return nil, domainerror.NewFieldDataError(
			domainerror.ErrCodeFieldDataLocked,
			"field data entry is locked",
			domainerror.ErrFieldDataLocked,
		)
	}

	if input.MasjidName != nil {
		data.MasjidName = *input.MasjidName
	}
	if input.Place != nil {
		data.Place = *input.Place
	}
	if input.Location != nil {
		data.Location = *input.Location
	}
	if input.ContactPerson != nil {
		data.ContactPerson = *input.ContactPerson
	}
	if input.CollectionInfo != nil {
		data.CollectionInfo = *input.CollectionInfo
	}
	if input.YearsOfCollection != nil {
		data.YearsOfCollection = input.YearsOfCollection
	}
	if input.Remarks != nil {
		data.Remarks = *input.Remarks
	}

	if err := uc.fieldDataRepo.Update(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to update field data: %w", err)
	}

	return &UpdateFieldDataOutput{FieldData: data}, nil
}

// requireOwnership enforces the collector access rule: admins pass, data
// collectors must own the entry.
func requireOwnership(actor adapter.TokenClaims, data *entity.FieldData) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if data.CreatedBy == actor.AdminID {
		return nil
	}
	return domainerror.NewFieldDataError(
		domainerror.ErrCodeFieldDataAccessDenied,
		"access to field data entry denied",
		domainerror.ErrFieldDataAccessDenied,
	)
}
