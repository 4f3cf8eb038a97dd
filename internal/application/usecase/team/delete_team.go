package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// DeleteTeamInput represents the input for team deletion.
type DeleteTeamInput struct {
	TeamID uuid.UUID
}

// DeleteTeamOutput represents the output of team deletion.
type DeleteTeamOutput struct{}

// DeleteTeamUseCase handles the team deletion gate. A team with financial
// history or field survey cross-references is never deleted.
type DeleteTeamUseCase struct {
	teamRepo      adapter.TeamRepository
	fieldDataRepo adapter.FieldDataRepository
}

// NewDeleteTeamUseCase creates a new DeleteTeamUseCase instance.
func NewDeleteTeamUseCase(teamRepo adapter.TeamRepository, fieldDataRepo adapter.FieldDataRepository) *DeleteTeamUseCase {
	return &DeleteTeamUseCase{
		teamRepo:      teamRepo,
		fieldDataRepo: fieldDataRepo,
	}
}

// Execute performs the deletion after checking the three denial conditions:
// the team is locked, the team has recorded collection, or field survey
// entries reference the team's place in the same season.
func (uc *DeleteTeamUseCase) Execute(ctx context.Context, input DeleteTeamInput) (*DeleteTeamOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.IsLocked {
		return nil, domainerror.NewDeletionDeniedError(domainerror.DeletionReasonLocked)
	}

	if team.TotalCollection.IsPositive() {
		return nil, domainerror.NewDeletionDeniedError(domainerror.DeletionReasonHasCollection)
	}

	referenced, err := uc.fieldDataRepo.ExistsForPlace(ctx, team.SeasonID, team.PlaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to check field survey references: %w", err)
	}
	if referenced {
		return nil, domainerror.NewDeletionDeniedError(domainerror.DeletionReasonFieldData)
	}

	if err := uc.teamRepo.Delete(ctx, team.ID); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	return &DeleteTeamOutput{}, nil
}
