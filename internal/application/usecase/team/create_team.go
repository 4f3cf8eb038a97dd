// Package team contains team lifecycle use cases.
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

// CreateTeamInput represents the input for team creation.
type CreateTeamInput struct {
	PlaceName     string
	State         string
	SeasonID      uuid.UUID
	Members       []entity.TeamMember
	AdvanceAmount decimal.Decimal
}

// CreateTeamOutput represents the output of team creation.
type CreateTeamOutput struct {
	Team *entity.Team
}

// CreateTeamUseCase handles team creation logic.
type CreateTeamUseCase struct {
	teamRepo   adapter.TeamRepository
	seasonRepo adapter.SeasonRepository
}

// NewCreateTeamUseCase creates a new CreateTeamUseCase instance.
func NewCreateTeamUseCase(teamRepo adapter.TeamRepository, seasonRepo adapter.SeasonRepository) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
	}
}

// Execute performs the team creation. The season must exist, be the active
// one and be unlocked.
func (uc *CreateTeamUseCase) Execute(ctx context.Context, input CreateTeamInput) (*CreateTeamOutput, error) {
	if strings.TrimSpace(input.PlaceName) == "" || strings.TrimSpace(input.State) == "" {
		return nil, domainerror.NewTeamError(
			domainerror.ErrCodeMissingTeamFields,
			"place name and state are required",
			domainerror.ErrMissingTeamFields,
		)
	}

	if err := validateMembers(input.Members); err != nil {
		return nil, err
	}

	if input.AdvanceAmount.IsNegative() {
		return nil, domainerror.NewTeamError(
			domainerror.ErrCodeNegativeAdvance,
			"advance amount cannot be negative",
			domainerror.ErrNegativeAdvance,
		)
	}

	season, err := uc.seasonRepo.FindByID(ctx, input.SeasonID)
	if err != nil {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeSeasonNotFound,
			"season not found",
			domainerror.ErrSeasonNotFound,
		)
	}
	if !season.IsActive {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeSeasonNotActive,
			"teams can only be created in the active season",
			domainerror.ErrSeasonNotActive,
		)
	}
	if season.IsLocked {
		return nil, domainerror.NewSeasonError(
			domainerror.ErrCodeSeasonLocked,
			"season is locked",
			domainerror.ErrSeasonLocked,
		)
	}

	team := entity.NewTeam(
		strings.TrimSpace(input.PlaceName),
		strings.TrimSpace(input.State),
		input.SeasonID,
		input.Members,
		input.AdvanceAmount,
	)

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &CreateTeamOutput{Team: team}, nil
}

// validateMembers checks that at least one member is present and every member
// carries name, class and phone.
func validateMembers(members []entity.TeamMember) error {
	if len(members) == 0 {
		return domainerror.NewTeamError(
			domainerror.ErrCodeNoTeamMembers,
			"at least one team member is required",
			domainerror.ErrNoTeamMembers,
		)
	}
	for _, m := range members {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Class) == "" || strings.TrimSpace(m.Phone) == "" {
			return domainerror.NewTeamError(
				domainerror.ErrCodeIncompleteMember,
				"member name, class and phone are required",
				domainerror.ErrIncompleteMember,
			)
		}
	}
	return nil
}
