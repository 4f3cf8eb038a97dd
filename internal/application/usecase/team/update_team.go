package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// UpdateTeamInput represents the input for a partial team update. Only the
// descriptive fields and the advance are updatable here; money fields belong
// to the settlement use cases and are never touched by this path.
type UpdateTeamInput struct {
	TeamID        uuid.UUID
	PlaceName     *string
	State         *string
	Members       []entity.TeamMember
	AdvanceAmount *decimal.Decimal
}

// UpdateTeamOutput represents the output of a team update.
type UpdateTeamOutput struct {
	Team *entity.Team
}

// UpdateTeamUseCase handles partial team updates.
type UpdateTeamUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewUpdateTeamUseCase creates a new UpdateTeamUseCase instance.
func NewUpdateTeamUseCase(teamRepo adapter.TeamRepository) *UpdateTeamUseCase {
	return &UpdateTeamUseCase{teamRepo: teamRepo}
}

// Execute performs the partial update.
func (uc *UpdateTeamUseCase) Execute(ctx context.Context, input UpdateTeamInput) (*UpdateTeamOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.IsLocked {
		return nil, domainerror.NewTeamError(
			domainerror.ErrCodeTeamLocked,
			"team is locked",
			domainerror.ErrTeamLocked,
		)
	}

	if input.PlaceName != nil {
		if strings.TrimSpace(*input.PlaceName) == "" {
			return nil, domainerror.NewTeamError(
				domainerror.ErrCodeMissingTeamFields,
				"place name cannot be empty",
				domainerror.ErrMissingTeamFields,
			)
		}
		team.PlaceName = strings.TrimSpace(*input.PlaceName)
	}

	if input.State != nil {
		if strings.TrimSpace(*input.State) == "" {
			return nil, domainerror.NewTeamError(
				domainerror.ErrCodeMissingTeamFields,
				"state cannot be empty",
				domainerror.ErrMissingTeamFields,
			)
		}
		team.State = strings.TrimSpace(*input.State)
	}

	if input.Members != nil {
		if err := validateMembers(input.Members); err != nil {
			return nil, err
		}
		team.Members = input.Members
	}

	if input.AdvanceAmount != nil {
		if input.AdvanceAmount.IsNegative() {
			return nil, domainerror.NewTeamError(
				domainerror.ErrCodeNegativeAdvance,
				"advance amount cannot be negative",
				domainerror.ErrNegativeAdvance,
			)
		}
		team.AdvanceAmount = *input.AdvanceAmount
	}

	if err := uc.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return &UpdateTeamOutput{Team: team}, nil
}
