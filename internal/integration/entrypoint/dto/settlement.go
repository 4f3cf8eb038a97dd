package dto

import (
	"github.com/shopspring/decimal"
)

// BookEntryPayload is one receipt book line of a collection entry.
type BookEntryPayload struct {
	BookNumber      int             `json:"bookNumber" binding:"required"`
	UsedStartPage   *int            `json:"usedStartPage"`
	UsedEndPage     *int            `json:"usedEndPage"`
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
}

// CollectionRequest is the payload for PUT /settlements/:teamId/collection.
type CollectionRequest struct {
	Books      []BookEntryPayload `json:"books" binding:"required"`
	CashAmount decimal.Decimal    `json:"cashAmount"`
	CashRef    string             `json:"cashRef"`
	BankAmount decimal.Decimal    `json:"bankAmount"`
	BankRef    string             `json:"bankRef"`
}

// FinalizeRequest is the payload for POST /settlements/:teamId/finalize.
type FinalizeRequest struct {
	Expense decimal.Decimal `json:"expense"`
}

// FinalizeCompleteRequest is the payload for POST
// /settlements/:teamId/finalize-complete: a full collection entry plus the
// expense, settled in one step.
type FinalizeCompleteRequest struct {
	Books      []BookEntryPayload `json:"books" binding:"required"`
	CashAmount decimal.Decimal    `json:"cashAmount"`
	CashRef    string             `json:"cashRef"`
	BankAmount decimal.Decimal    `json:"bankAmount"`
	BankRef    string             `json:"bankRef"`
	Expense    decimal.Decimal    `json:"expense"`
}

// SettlementResponse is the payload returned by the finalize endpoints.
// Reconciled reports whether the declared cash+bank breakup matches the
// computed balance; a mismatch is informational only.
type SettlementResponse struct {
	Team               TeamResponse    `json:"team"`
	Reconciled         bool            `json:"reconciled"`
	CashBankDifference decimal.Decimal `json:"cashBankDifference"`
}
