package season

import (
	"context"
	"fmt"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// ListSeasonsOutput represents the output of listing seasons.
type ListSeasonsOutput struct {
	Seasons []*entity.Season
}

// ListSeasonsUseCase handles season listing.
type ListSeasonsUseCase struct {
	seasonRepo adapter.SeasonRepository
}

// NewListSeasonsUseCase creates a new ListSeasonsUseCase instance.
func NewListSeasonsUseCase(seasonRepo adapter.SeasonRepository) *ListSeasonsUseCase {
	return &ListSeasonsUseCase{seasonRepo: seasonRepo}
}

// Execute retrieves all seasons, newest first.
func (uc *ListSeasonsUseCase) Execute(ctx context.Context) (*ListSeasonsOutput, error) {
	seasons, err := uc.seasonRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	return &ListSeasonsOutput{Seasons: seasons}, nil
}
