// Package valueobject defines immutable domain values shared across aggregates.
package valueobject

import (
	domainerror "github.com/campaign-tracker/backend/internal/domain/error"
)

// PagesPerBook is the number of pre-printed receipts in every book. The
// canonical page range of a book is a fixed function of its number and is
// never stored independently.
const PagesPerBook = 50

// ReceiptBookRange is the canonical page range of a numbered receipt book.
type ReceiptBookRange struct {
	StartPage int
	EndPage   int
}

// NewReceiptBookRange derives the canonical page range for a book number.
// Book 1 covers pages 1-50, book 2 covers 51-100, and so on; ranges of
// consecutive books are contiguous and never overlap.
func NewReceiptBookRange(bookNumber int) (ReceiptBookRange, error) {
	if bookNumber <= 0 {
		return ReceiptBookRange{}, domainerror.ErrInvalidBookNumber
	}

	start := bookNumber*PagesPerBook - (PagesPerBook - 1)
	return ReceiptBookRange{
		StartPage: start,
		EndPage:   start + PagesPerBook - 1,
	}, nil
}

// Contains reports whether the given used sub-range lies inside the canonical range.
func (r ReceiptBookRange) Contains(start, end int) bool {
	return start <= end && start >= r.StartPage && end <= r.EndPage
}
