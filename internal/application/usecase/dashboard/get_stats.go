// Package dashboard aggregates the season's settlement numbers into the
// audit export consumed by the campaign office.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// TeamRow is one team's line in the audit export.
type TeamRow struct {
	TeamID          uuid.UUID
	PlaceName       string
	State           string
	Status          entity.TeamStatus
	TotalCollection decimal.Decimal
	AdvanceAmount   decimal.Decimal
	Expense         decimal.Decimal
	Balance         decimal.Decimal
	CashAmount      decimal.Decimal
	BankAmount      decimal.Decimal
	BooksAssigned   int
	BooksEntered    int
	IsLocked        bool
}

// GetStatsInput represents the input for the audit export.
type GetStatsInput struct {
	SeasonID *uuid.UUID
}

// GetStatsOutput is a point-in-time projection over the season's teams. The
// totals are recomputed from the team rows on every call, never cached, so
// the export always reflects the stored settlement state.
type GetStatsOutput struct {
	TotalTeams      int
	SettledTeams    int
	ShortageTeams   int
	PendingTeams    int
	TotalCollection decimal.Decimal
	CashTotal       decimal.Decimal
	BankTotal       decimal.Decimal
	TotalAdvance    decimal.Decimal
	TotalExpense    decimal.Decimal
	NetBalance      decimal.Decimal
	Teams           []TeamRow
}

// GetStatsUseCase builds the audit export.
type GetStatsUseCase struct {
	teamRepo   adapter.TeamRepository
	seasonRepo adapter.SeasonRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(teamRepo adapter.TeamRepository, seasonRepo adapter.SeasonRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
	}
}

// Execute aggregates the teams of the requested season, defaulting to the
// active one.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	seasonID := input.SeasonID
	if seasonID == nil {
		season, err := uc.seasonRepo.FindActive(ctx)
		if err != nil {
			return nil, err
		}
		seasonID = &season.ID
	}

	teams, err := uc.teamRepo.FindByFilter(ctx, adapter.TeamFilter{SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for stats: %w", err)
	}

	out := &GetStatsOutput{
		TotalCollection: decimal.Zero,
		CashTotal:       decimal.Zero,
		BankTotal:       decimal.Zero,
		TotalAdvance:    decimal.Zero,
		TotalExpense:    decimal.Zero,
		NetBalance:      decimal.Zero,
		Teams:           make([]TeamRow, 0, len(teams)),
	}

	for _, team := range teams {
		out.TotalTeams++
		switch team.Status {
		case entity.TeamStatusSettled:
			out.SettledTeams++
		case entity.TeamStatusShortage:
			out.ShortageTeams++
		default:
			out.PendingTeams++
		}

		out.TotalCollection = out.TotalCollection.Add(team.TotalCollection)
		out.CashTotal = out.CashTotal.Add(team.CashAmount)
		out.BankTotal = out.BankTotal.Add(team.BankAmount)
		out.TotalAdvance = out.TotalAdvance.Add(team.AdvanceAmount)
		out.TotalExpense = out.TotalExpense.Add(team.Expense)
		out.NetBalance = out.NetBalance.Add(team.Balance)

		entered := 0
		for _, book := range team.ReceiptBooks {
			if book.IsEntered {
				entered++
			}
		}

		out.Teams = append(out.Teams, TeamRow{
			TeamID:          team.ID,
			PlaceName:       team.PlaceName,
			State:           team.State,
			Status:          team.Status,
			TotalCollection: team.TotalCollection,
			AdvanceAmount:   team.AdvanceAmount,
			Expense:         team.Expense,
			Balance:         team.Balance,
			CashAmount:      team.CashAmount,
			BankAmount:      team.BankAmount,
			BooksAssigned:   len(team.ReceiptBooks),
			BooksEntered:    entered,
			IsLocked:        team.IsLocked,
		})
	}

	return out, nil
}
