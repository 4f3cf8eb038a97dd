package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// RecordCollectionInput represents the input for a collection entry.
type RecordCollectionInput struct {
	TeamID uuid.UUID
	CollectionInput
}

// RecordCollectionOutput represents the output of a collection entry.
type RecordCollectionOutput struct {
	Team *entity.Team
}

// RecordCollectionUseCase handles collection entry prior to finalization.
// It records per-book amounts and the cash/bank breakup, recomputes the
// collection total and leaves status and lock untouched, so staff can keep
// correcting the entry until the team finalizes.
type RecordCollectionUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewRecordCollectionUseCase creates a new RecordCollectionUseCase instance.
func NewRecordCollectionUseCase(teamRepo adapter.TeamRepository) *RecordCollectionUseCase {
	return &RecordCollectionUseCase{teamRepo: teamRepo}
}

// Execute performs the collection entry.
func (uc *RecordCollectionUseCase) Execute(ctx context.Context, input RecordCollectionInput) (*RecordCollectionOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.IsLocked {
		return nil, lockedError()
	}

	if err := applyCollection(ctx, uc.teamRepo, team, input.CollectionInput); err != nil {
		return nil, err
	}

	if err := uc.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to record collection: %w", err)
	}

	return &RecordCollectionOutput{Team: team}, nil
}
