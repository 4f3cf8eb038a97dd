// Package fielddata contains the field survey use cases. Survey entries are
// collected independently of the money flow and carry their own access rules:
// data collectors only see and edit their own entries.
package fielddata

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// CreateFieldDataInput represents the input for creating a survey entry.
type CreateFieldDataInput struct {
	Actor             adapter.TokenClaims
	MasjidName        string
	Place             string
	Location          entity.FieldLocation
	ContactPerson     entity.FieldContact
	CollectionInfo    string
	YearsOfCollection *int
	Remarks           string
}

// CreateFieldDataOutput represents the output of creating a survey entry.
type CreateFieldDataOutput struct {
	FieldData *entity.FieldData
}

// CreateFieldDataUseCase handles survey entry creation. Entries always land
// in the active season and are stamped with the creating account.
type CreateFieldDataUseCase struct {
	fieldDataRepo adapter.FieldDataRepository
	seasonRepo    adapter.SeasonRepository
}

// NewCreateFieldDataUseCase creates a new CreateFieldDataUseCase instance.
func NewCreateFieldDataUseCase(fieldDataRepo adapter.FieldDataRepository, seasonRepo adapter.SeasonRepository) *CreateFieldDataUseCase {
	return &CreateFieldDataUseCase{
		fieldDataRepo: fieldDataRepo,
		seasonRepo:    seasonRepo,
	}
}

// Execute performs the survey entry creation.
func (uc *CreateFieldDataUseCase) Execute(ctx context.Context, input CreateFieldDataInput) (*CreateFieldDataOutput, error) {
	if strings.TrimSpace(input.MasjidName) == "" ||
		strings.TrimSpace(input.Place) == "" ||
		strings.TrimSpace(input.ContactPerson.Name) == "" {
		return nil, domainerror.NewFieldDataError(
			domainerror.ErrCodeMissingFieldDataFields,
			"masjid name, place and contact person are required",
			domainerror.ErrMissingFieldDataFields,
		)
	}

	season, err := uc.seasonRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if season.IsLocked {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeSeasonLocked,
			"season is locked",
			domainerror.ErrSeasonLocked,
		)
	}

	data := entity.NewFieldData(
		strings.TrimSpace(input.MasjidName),
		strings.TrimSpace(input.Place),
		input.Location,
		input.ContactPerson,
		input.CollectionInfo,
		input.YearsOfCollection,
		input.Remarks,
		season.ID,
		input.Actor.AdminID,
	)

	if err := uc.fieldDataRepo.Create(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to create field data: %w", err)
	}

	return &CreateFieldDataOutput{FieldData: data}, nil
}
