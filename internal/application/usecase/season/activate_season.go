package season

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// ActivateSeasonInput represents the input for activating a season.
type ActivateSeasonInput struct {
	SeasonID uuid.UUID
}

// ActivateSeasonOutput represents the output of activating a season.
type ActivateSeasonOutput struct {
	Season *entity.Season
}

// ActivateSeasonUseCase makes one season the active campaign. Every other
// season is deactivated in the same transaction.
type ActivateSeasonUseCase struct {
	seasonRepo adapter.SeasonRepository
}

// NewActivateSeasonUseCase creates a new ActivateSeasonUseCase instance.
func NewActivateSeasonUseCase(seasonRepo adapter.SeasonRepository) *ActivateSeasonUseCase {
	return &ActivateSeasonUseCase{seasonRepo: seasonRepo}
}

// Execute performs the activation.
func (uc *ActivateSeasonUseCase) Execute(ctx context.Context, input ActivateSeasonInput) (*ActivateSeasonOutput, error) {
	if _, err := uc.seasonRepo.FindByID(ctx, input.SeasonID); err != nil {
		return nil, err
	}

	season, err := uc.seasonRepo.Activate(ctx, input.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate season: %w", err)
	}

	return &ActivateSeasonOutput{Season: season}, nil
}
