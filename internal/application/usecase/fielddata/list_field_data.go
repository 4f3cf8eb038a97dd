package fielddata

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// ListFieldDataInput represents the input for listing survey entries.
type ListFieldDataInput struct {
	Actor    adapter.TokenClaims
	SeasonID *uuid.UUID
}

// ListFieldDataOutput represents the output of listing survey entries.
type ListFieldDataOutput struct {
	Entries []*entity.FieldData
}

// ListFieldDataUseCase handles survey entry listing. Admins see every entry;
// data collectors only their own.
type ListFieldDataUseCase struct {
	fieldDataRepo adapter.FieldDataRepository
}

// NewListFieldDataUseCase creates a new ListFieldDataUseCase instance.
func NewListFieldDataUseCase(fieldDataRepo adapter.FieldDataRepository) *ListFieldDataUseCase {
	return &ListFieldDataUseCase{fieldDataRepo: fieldDataRepo}
}

// Execute retrieves the entries visible to the actor.
func (uc *ListFieldDataUseCase) Execute(ctx context.Context, input ListFieldDataInput) (*ListFieldDataOutput, error) {
	filter := adapter.FieldDataFilter{SeasonID: input.SeasonID}
	if input.Actor.Role != entity.RoleAdmin {
		createdBy := input.Actor.AdminID
		filter.CreatedBy = &createdBy
	}

	entries, err := uc.fieldDataRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list field data: %w", err)
	}

	return &ListFieldDataOutput{Entries: entries}, nil
}
