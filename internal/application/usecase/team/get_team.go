package team

import (
	"context"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// GetTeamInput represents the input for fetching a single team.
type GetTeamInput struct {
	TeamID uuid.UUID
}

// GetTeamOutput represents the output of fetching a single team.
type GetTeamOutput struct {
	Team *entity.Team
}

// GetTeamUseCase handles single team retrieval.
type GetTeamUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewGetTeamUseCase creates a new GetTeamUseCase instance.
func NewGetTeamUseCase(teamRepo adapter.TeamRepository) *GetTeamUseCase {
	return &GetTeamUseCase{teamRepo: teamRepo}
}

// Execute retrieves one team with its members and receipt books.
func (uc *GetTeamUseCase) Execute(ctx context.Context, input GetTeamInput) (*GetTeamOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	return &GetTeamOutput{Team: team}, nil
}
