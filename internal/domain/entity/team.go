// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeamStatus represents the settlement state of a team.
type TeamStatus string

const (
	// TeamStatusPending means collection is still in progress.
	TeamStatusPending TeamStatus = "PENDING"
	// TeamStatusSettled means the team finalized with a non-negative balance.
	TeamStatusSettled TeamStatus = "SETTLED"
	// TeamStatusShortage means the team finalized owing money.
	TeamStatusShortage TeamStatus = "SHORTAGE"
)

// TeamMember is one person on a collection team.
type TeamMember struct {
	Name  string
	Class string
	Phone string
}

// ReceiptBook is a pre-printed receipt booklet assigned to a team.
// StartPage/EndPage are the canonical range derived from BookNumber;
// UsedStartPage/UsedEndPage record the receipts physically used.
type ReceiptBook struct {
	BookNumber      int
	StartPage       int
	EndPage         int
	UsedStartPage   *int
	UsedEndPage     *int
	CollectedAmount decimal.Decimal
	IsEntered       bool
}

// Team is a place-based collection unit with members, assigned receipt books
// and a per-team settlement record. It is the aggregate root of the core.
type Team struct {
	ID              uuid.UUID
	PlaceName       string
	State           string
	SeasonID        uuid.UUID
	Members         []TeamMember
	ReceiptBooks    []ReceiptBook
	TotalCollection decimal.Decimal
	CashAmount      decimal.Decimal
	CashRef         string
	BankAmount      decimal.Decimal
	BankRef         string
	AdvanceAmount   decimal.Decimal
	Expense         decimal.Decimal
	Balance         decimal.Decimal
	Status          TeamStatus
	IsLocked        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTeam creates a new Team entity in the PENDING state with no books.
func NewTeam(placeName, state string, seasonID uuid.UUID, members []TeamMember, advanceAmount decimal.Decimal) *Team {
	now := time.Now().UTC()

	return &Team{
		ID:              uuid.New(),
		PlaceName:       placeName,
		State:           state,
		SeasonID:        seasonID,
		Members:         members,
		ReceiptBooks:    []ReceiptBook{},
		TotalCollection: decimal.Zero,
		CashAmount:      decimal.Zero,
		BankAmount:      decimal.Zero,
		AdvanceAmount:   advanceAmount,
		Expense:         decimal.Zero,
		Balance:         decimal.Zero,
		Status:          TeamStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RecomputeTotals recalculates TotalCollection as the sum of collected
// amounts over the current receipt books and refreshes each book's entered
// marker. It is the single place totals are derived; callers must invoke it
// after every change to the book list. A team whose book list became empty
// falls back to an unsettled state.
func (t *Team) RecomputeTotals() {
	total := decimal.Zero
	for i := range t.ReceiptBooks {
		t.ReceiptBooks[i].IsEntered = t.ReceiptBooks[i].CollectedAmount.IsPositive()
		total = total.Add(t.ReceiptBooks[i].CollectedAmount)
	}
	t.TotalCollection = total

	if len(t.ReceiptBooks) == 0 {
		t.Status = TeamStatusPending
		t.Balance = decimal.Zero
	}
}

// Finalize fixes the expense, derives balance and status together, and locks
// the record. Terminal: a locked team rejects every further mutation.
func (t *Team) Finalize(expense decimal.Decimal) {
	t.Expense = expense
	t.Balance = t.TotalCollection.Add(t.AdvanceAmount).Sub(expense)
	if t.Balance.IsNegative() {
		t.Status = TeamStatusShortage
	} else {
		t.Status = TeamStatusSettled
	}
	t.IsLocked = true
}

// BookByNumber returns the team's receipt book with the given number, or nil.
func (t *Team) BookByNumber(bookNumber int) *ReceiptBook {
	for i := range t.ReceiptBooks {
		if t.ReceiptBooks[i].BookNumber == bookNumber {
			return &t.ReceiptBooks[i]
		}
	}
	return nil
}

// CashBankDifference returns balance minus the cash+bank breakup. Zero means
// the declared breakup reconciles with the computed balance; the check is
// advisory and never rejected server-side.
func (t *Team) CashBankDifference() decimal.Decimal {
	return t.Balance.Sub(t.CashAmount.Add(t.BankAmount))
}
