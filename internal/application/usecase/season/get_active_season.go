package season

import (
	"context"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// GetActiveSeasonOutput represents the output of fetching the active season.
type GetActiveSeasonOutput struct {
	Season *entity.Season
}

// GetActiveSeasonUseCase retrieves the currently active season.
type GetActiveSeasonUseCase struct {
	seasonRepo adapter.SeasonRepository
}

// NewGetActiveSeasonUseCase creates a new GetActiveSeasonUseCase instance.
func NewGetActiveSeasonUseCase(seasonRepo adapter.SeasonRepository) *GetActiveSeasonUseCase {
	return &GetActiveSeasonUseCase{seasonRepo: seasonRepo}
}

// Execute retrieves the active season.
func (uc *GetActiveSeasonUseCase) Execute(ctx context.Context) (*GetActiveSeasonOutput, error) {
	season, err := uc.seasonRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	return &GetActiveSeasonOutput{Season: season}, nil
}
