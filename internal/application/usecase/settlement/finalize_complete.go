package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
)

// FinalizeCompleteInput represents the input for the combined settlement
// path: collection entry, expense and lock in a single atomic step.
type FinalizeCompleteInput struct {
	TeamID uuid.UUID
	CollectionInput
	Expense decimal.Decimal
}

// FinalizeCompleteUseCase is the recommended settlement path. It performs the
// same conflict detection and collection recording as RecordCollection and
// the same balance/status/lock derivation as Finalize, persisted as one
// write. A failure anywhere leaves the stored team exactly as it was.
type FinalizeCompleteUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewFinalizeCompleteUseCase creates a new FinalizeCompleteUseCase instance.
func NewFinalizeCompleteUseCase(teamRepo adapter.TeamRepository) *FinalizeCompleteUseCase {
	return &FinalizeCompleteUseCase{teamRepo: teamRepo}
}

// Execute performs the combined settlement.
func (uc *FinalizeCompleteUseCase) Execute(ctx context.Context, input FinalizeCompleteInput) (*FinalizeOutput, error) {
	team, err := uc.teamRepo.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.IsLocked {
		return nil, lockedError()
	}

	if err := validateExpense(input.Expense); err != nil {
		return nil, err
	}

	if err := applyCollection(ctx, uc.teamRepo, team, input.CollectionInput); err != nil {
		return nil, err
	}

	team.Finalize(input.Expense)

	if err := uc.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to finalize settlement: %w", err)
	}

	difference := team.CashBankDifference()
	return &FinalizeOutput{
		Team:               team,
		Reconciled:         difference.IsZero(),
		CashBankDifference: difference,
	}, nil
}
