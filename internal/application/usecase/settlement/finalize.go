package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// FinalizeInput represents the input for finalizing a settlement.
type FinalizeInput struct {
	TeamID  uuid.UUID
	Expense decimal.Decimal
}

// FinalizeOutput represents the output of a finalized settlement. Reconciled
// compares the declared cash+bank breakup against the computed balance; the
// comparison is advisory and a mismatch never blocks the settlement.
type FinalizeOutput struct {
	Team               *entity.Team
	Reconciled         bool
	CashBankDifference decimal.Decimal
}

// FinalizeUseCase fixes the expense, derives balance and status and locks the
// team. Terminal: after this returns, every mutating operation on the team is
// rejected with a locked error.
type FinalizeUseCase struct {
	teamRepo adapter.TeamRepository
}

// NewFinalizeUseCase creates a new FinalizeUseCase instance.
func NewFinalizeUseCase(teamRepo adapter.TeamRepository) *FinalizeUseCase {
	return &FinalizeUseCase{teamRepo: teamRepo}
}

// Execute performs the finalization.
func (uc *FinalizeUseCase) Execute(ctx context.Context, input FinalizeInput) (*FinalizeOutput, error) {
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
