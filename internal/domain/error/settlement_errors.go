package error

import (
	"errors"
	"fmt"
)

// Settlement domain errors.
var (
	// ErrInvalidBookNumber is returned when a receipt book number is not a
	// positive integer.
	ErrInvalidBookNumber = errors.New("book number must be a positive integer")

	// ErrBookConflict is returned when a receipt book is already entered under
	// another team in the same season.
	ErrBookConflict = errors.New("receipt book already entered under another team")

	// ErrNegativeCollection is returned when a collected amount is negative.
	ErrNegativeCollection = errors.New("collected amount cannot be negative")

	// ErrNegativeExpense is returned when the expense is negative.
	ErrNegativeExpense = errors.New("expense cannot be negative")

	// ErrUsedPagesOutOfRange is returned when the used page sub-range falls
	// outside the book's canonical page range.
	ErrUsedPagesOutOfRange = errors.New("used pages outside the book's page range")
)

// SettlementErrorCode defines error codes for settlement errors.
// Format: STL-XXYYYY where XX is category and YYYY is specific error.
type SettlementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBookNumber   SettlementErrorCode = "STL-010001"
	ErrCodeBookConflict        SettlementErrorCode = "STL-010002"
	ErrCodeNegativeCollection  SettlementErrorCode = "STL-010003"
	ErrCodeNegativeExpense     SettlementErrorCode = "STL-010004"
	ErrCodeUsedPagesOutOfRange SettlementErrorCode = "STL-010005"
)

// SettlementError represents a settlement error with code and message.
type SettlementError struct {
	Code    SettlementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettlementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// NewSettlementError creates a new SettlementError with the given code and message.
func NewSettlementError(code SettlementErrorCode, message string, err error) *SettlementError {
	return &SettlementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BookConflictError names the team that already entered the disputed book so
// staff can resolve the double-booking manually.
type BookConflictError struct {
	BookNumber int
	TeamName   string
}

// Error implements the error interface.
func (e *BookConflictError) Error() string {
	if e.TeamName == "" {
		return fmt.Sprintf("receipt book %d already entered under another team", e.BookNumber)
	}
	return fmt.Sprintf("receipt book %d already entered by team %q", e.BookNumber, e.TeamName)
}

// Unwrap returns the sentinel conflict error so errors.Is keeps working.
func (e *BookConflictError) Unwrap() error {
	return ErrBookConflict
}

// NewBookConflictError creates a BookConflictError for the given book and team.
func NewBookConflictError(bookNumber int, teamName string) *BookConflictError {
	return &BookConflictError{BookNumber: bookNumber, TeamName: teamName}
}
