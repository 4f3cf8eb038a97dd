// Package season contains the campaign period use cases: creation,
// activation and the season-wide lock that closes a campaign.
package season

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// CreateSeasonInput represents the input for creating a season.
type CreateSeasonInput struct {
	Name string
	// Activate makes the new season the active one, deactivating the rest.
	Activate bool
}

// CreateSeasonOutput represents the output of creating a season.
type CreateSeasonOutput struct {
	Season *entity.Season
}

// CreateSeasonUseCase handles season creation.
type CreateSeasonUseCase struct {
	seasonRepo adapter.SeasonRepository
}

// NewCreateSeasonUseCase creates a new CreateSeasonUseCase instance.
func NewCreateSeasonUseCase(seasonRepo adapter.SeasonRepository) *CreateSeasonUseCase {
	return &CreateSeasonUseCase{seasonRepo: seasonRepo}
}

// Execute performs the season creation.
func (uc *CreateSeasonUseCase) Execute(ctx context.Context, input CreateSeasonInput) (*CreateSeasonOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeMissingSeasonName,
			"season name is required",
			domainerror.ErrMissingSeasonName,
		)
	}

	season := entity.NewSeason(name)

	if err := uc.seasonRepo.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	if input.Activate {
		activated, err := uc.seasonRepo.Activate(ctx, season.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to activate season: %w", err)
		}
		season = activated
	}

	return &CreateSeasonOutput{Season: season}, nil
}
