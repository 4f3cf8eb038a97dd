package fielddata

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// GetFieldDataInput represents the input for fetching a single survey entry.
type GetFieldDataInput struct {
	Actor       adapter.TokenClaims
	FieldDataID uuid.UUID
}

// GetFieldDataOutput represents the output of fetching a single survey entry.
type GetFieldDataOutput struct {
	FieldData *entity.FieldData
}

// GetFieldDataUseCase handles single survey entry retrieval with the same
// ownership rule as updates.
type GetFieldDataUseCase struct {
	fieldDataRepo adapter.FieldDataRepository
}

// NewGetFieldDataUseCase creates a new GetFieldDataUseCase instance.
func NewGetFieldDataUseCase(fieldDataRepo adapter.FieldDataRepository) *GetFieldDataUseCase {
	return &GetFieldDataUseCase{fieldDataRepo: fieldDataRepo}
}

// Execute retrieves one survey entry.
func (uc *GetFieldDataUseCase) Execute(ctx context.Context, input GetFieldDataInput) (*GetFieldDataOutput, error) {
	data, err := uc.fieldDataRepo.FindByID(ctx, input.FieldDataID)
	if err != nil {
		return nil, err
	}

	if err := requireOwnership(input.Actor, data); err != nil {
		return nil, err
	}

	return &GetFieldDataOutput{FieldData: data}, nil
}
