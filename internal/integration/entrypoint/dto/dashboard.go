package dto

import (
	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/usecase/dashboard"
)

// StatsTeamRow is one team's line in the stats response.
type StatsTeamRow struct {
	TeamID          string          `json:"teamId"`
	PlaceName       string          `json:"placeName"`
	State           string          `json:"state"`
	Status          string          `json:"status"`
	TotalCollection decimal.Decimal `json:"totalCollection"`
	AdvanceAmount   decimal.Decimal `json:"advanceAmount"`
	Expense         decimal.Decimal `json:"expense"`
	Balance         decimal.Decimal `json:"balance"`
	CashAmount      decimal.Decimal `json:"cashAmount"`
	BankAmount      decimal.Decimal `json:"bankAmount"`
	BooksAssigned   int             `json:"booksAssigned"`
	BooksEntered    int             `json:"booksEntered"`
	IsLocked        bool            `json:"isLocked"`
}

// StatsResponse is the season-wide settlement summary.
type StatsResponse struct {
	TotalTeams      int             `json:"totalTeams"`
	SettledTeams    int             `json:"settledTeams"`
	ShortageTeams   int             `json:"shortageTeams"`
	PendingTeams    int             `json:"pendingTeams"`
	TotalCollection decimal.Decimal `json:"totalCollection"`
	CashTotal       decimal.Decimal `json:"cashTotal"`
	BankTotal       decimal.Decimal `json:"bankTotal"`
	TotalAdvance    decimal.Decimal `json:"totalAdvance"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	Teams           []StatsTeamRow  `json:"teams"`
}

// ToStatsResponse converts the stats use case output to a StatsResponse.
func ToStatsResponse(output *dashboard.GetStatsOutput) StatsResponse {
	teams := make([]StatsTeamRow, len(output.Teams))
	for i, row := range output.Teams {
		teams[i] = StatsTeamRow{
			TeamID:          row.TeamID.String(),
			PlaceName:       row.PlaceName,
			State:           row.State,
			Status:          string(row.Status),
			TotalCollection: row.TotalCollection,
			AdvanceAmount:   row.AdvanceAmount,
			Expense:         row.Expense,
			Balance:         row.Balance,
			CashAmount:      row.CashAmount,
			BankAmount:      row.BankAmount,
			BooksAssigned:   row.BooksAssigned,
			BooksEntered:    row.BooksEntered,
			IsLocked:        row.IsLocked,
		}
	}

	return StatsResponse{
		TotalTeams:      output.TotalTeams,
		SettledTeams:    output.SettledTeams,
		ShortageTeams:   output.ShortageTeams,
		PendingTeams:    output.PendingTeams,
		TotalCollection: output.TotalCollection,
		CashTotal:       output.CashTotal,
		BankTotal:       output.BankTotal,
		TotalAdvance:    output.TotalAdvance,
		TotalExpense:    output.TotalExpense,
		NetBalance:      output.NetBalance,
		Teams:           teams,
	}
}
