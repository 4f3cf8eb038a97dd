package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// ListTeamsInput represents the input for listing teams.
type ListTeamsInput struct {
	SeasonID *uuid.UUID
	Status   *entity.TeamStatus
}

// ListTeamsOutput represents the output of listing teams.
type ListTeamsOutput struct {
	Teams []*entity.Team
}

// ListTeamsUseCase handles team listing.
type ListTeamsUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewListTeamsUseCase creates a new ListTeamsUseCase instance.
func NewListTeamsUseCase(teamRepo adapter.TeamRepository) *ListTeamsUseCase {
	return &ListTeamsUseCase{teamRepo: teamRepo}
}

// Execute retrieves teams, optionally scoped to a season or status.
func (uc *ListTeamsUseCase) Execute(ctx context.Context, input ListTeamsInput) (*ListTeamsOutput, error) {
	teams, err := uc.teamRepo.FindByFilter(ctx, adapter.TeamFilter{
		SeasonID: input.SeasonID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return &ListTeamsOutput{Teams: teams}, nil
}
