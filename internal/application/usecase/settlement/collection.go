// Package settlement contains the money state machine use cases: collection
// entry, finalization and locking of a team's settlement record.
package settlement

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/campaign-tracker/backend/internal/application/adapter"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
	"github.com/campaign-tracker/backend/internal/domain/valueobject"
)

// BookEntry is one receipt book line of a collection entry.
type BookEntry struct {
	BookNumber      int
	UsedStartPage   *int
	UsedEndPage     *int
	CollectedAmount decimal.Decimal
}

// CollectionInput carries a full collection entry: the book list replaces the
// team's current assignment, the cash/bank breakup is stored as given. The
// breakup is not reconciled against the balance here; that comparison is
// advisory and happens at finalize time.
type CollectionInput struct {
	Books      []BookEntry
	CashAmount decimal.Decimal
	CashRef    string
	BankAmount decimal.Decimal
	BankRef    string
}

// applyCollection validates the entry and applies it to the team in memory.
// All-or-nothing: the team is only mutated once every book passed validation
// and the season-wide conflict scan. Nothing is persisted here.
func applyCollection(ctx context.Context, teamRepo adapter.TeamRepository, team *entity.Team, input CollectionInput) error {
	if input.CashAmount.IsNegative() || input.BankAmount.IsNegative() {
		return domainerror.NewSettlementError(
			domainerror.ErrCodeNegativeCollection,
			"cash and bank amounts cannot be negative",
			domainerror.ErrNegativeCollection,
		)
	}

	seen := make(map[int]bool, len(input.Books))
	books := make([]entity.ReceiptBook, 0, len(input.Books))

	for _, entry := range input.Books {
		pages, err := valueobject.NewReceiptBookRange(entry.BookNumber)
		if err != nil {
			return domainerror.NewSettlementError(
				domainerror.ErrCodeInvalidBookNumber,
				fmt.Sprintf("book number %d is invalid", entry.BookNumber),
				err,
			)
		}
		if seen[entry.BookNumber] {
			return domainerror.NewSettlementError(
				domainerror.ErrCodeInvalidBookNumber,
				fmt.Sprintf("book %d listed more than once", entry.BookNumber),
				domainerror.ErrInvalidBookNumber,
			)
		}
		seen[entry.BookNumber] = true

		if entry.CollectedAmount.IsNegative() {
			return domainerror.NewSettlementError(
				domainerror.ErrCodeNegativeCollection,
				fmt.Sprintf("collected amount for book %d cannot be negative", entry.BookNumber),
				domainerror.ErrNegativeCollection,
			)
		}

		if entry.UsedStartPage != nil && entry.UsedEndPage != nil {
			if !pages.Contains(*entry.UsedStartPage, *entry.UsedEndPage) {
				return domainerror.NewSettlementError(
					domainerror.ErrCodeUsedPagesOutOfRange,
					fmt.Sprintf("used pages %d-%d fall outside book %d (pages %d-%d)",
						*entry.UsedStartPage, *entry.UsedEndPage, entry.BookNumber, pages.StartPage, pages.EndPage),
					domainerror.ErrUsedPagesOutOfRange,
				)
			}
		}

		// A book only counts as used once money is recorded against it; the
		// season-wide exclusivity check applies to those books only.
		if entry.CollectedAmount.IsPositive() {
			other, err := teamRepo.FindEnteredBook(ctx, team.SeasonID, entry.BookNumber, team.ID)
			if err != nil {
				return fmt.Errorf("failed to check book conflicts: %w", err)
			}
			if other != nil {
				return domainerror.NewBookConflictError(entry.BookNumber, other.PlaceName)
			}
		}

		books = append(books, entity.ReceiptBook{
			BookNumber:      entry.BookNumber,
			StartPage:       pages.StartPage,
			EndPage:         pages.EndPage,
			UsedStartPage:   entry.UsedStartPage,
			UsedEndPage:     entry.UsedEndPage,
			CollectedAmount: entry.CollectedAmount,
			IsEntered:       entry.CollectedAmount.IsPositive(),
		})
	}

	// The entry replaces the book list; silently dropping a book that has
	// recorded collection would lose money from the audit trail.
	for _, existing := range team.ReceiptBooks {
		if existing.IsEntered && !seen[existing.BookNumber] {
			return domainerror.NewTeamError(
				domainerror.ErrCodeBookInUse,
				fmt.Sprintf("book %d has recorded collection and cannot be removed", existing.BookNumber),
				domainerror.ErrBookInUse,
			)
		}
	}

	team.ReceiptBooks = books
	team.CashAmount = input.CashAmount
	team.CashRef = input.CashRef
	team.BankAmount = input.BankAmount
	team.BankRef = input.BankRef
	team.RecomputeTotals()

	return nil
}

// lockedError is the shared rejection for mutations on a finalized team.
func lockedError() error {
	return domainerror.NewTeamError(
		domainerror.ErrCodeTeamLocked,
		"team is locked",
		domainerror.ErrTeamLocked,
	)
}

// validateExpense rejects a negative expense before anything is applied.
func validateExpense(expense decimal.Decimal) error {
	if expense.IsNegative() {
		return domainerror.NewSettlementError(
			domainerror.ErrCodeNegativeExpense,
			"expense cannot be negative",
			domainerror.ErrNegativeExpense,
		)
	}
	return nil
}
