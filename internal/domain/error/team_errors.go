// Package error defines domain-specific errors for the Campaign Tracker application.
package error

import "errors"

// Team domain errors.
var (
	// ErrTeamNotFound is returned when a team is not found in the system.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamLocked is returned when a mutation is attempted on a finalized team.
	ErrTeamLocked = errors.New("team is locked")

	// ErrMissingTeamFields is returned when required team fields are empty.
	ErrMissingTeamFields = errors.New("place name and state are required")

	// ErrNoTeamMembers is returned when a team is created or updated with no members.
	ErrNoTeamMembers = errors.New("at least one team member is required")

	// ErrIncompleteMember is returned when a member entry misses name, class or phone.
	ErrIncompleteMember = errors.New("member name, class and phone are required")

	// ErrNegativeAdvance is returned when the advance amount is negative.
	ErrNegativeAdvance = errors.New("advance amount cannot be negative")

	// ErrBookInUse is returned when a book with recorded collection would be
	// removed or renumbered.
	ErrBookInUse = errors.New("receipt book has recorded collection and cannot be removed")

	// ErrBookAlreadyAssigned is returned under strict assignment policy when a
	// book is already assigned to another team, even without collection.
	ErrBookAlreadyAssigned = errors.New("receipt book already assigned to another team")

	// ErrTeamDeletionDenied is returned when a team has financial or
	// cross-module history and cannot be deleted.
	ErrTeamDeletionDenied = errors.New("team deletion denied")
)

// TeamErrorCode defines error codes for team errors.
// Format: TEAM-XXYYYY where XX is category and YYYY is specific error.
type TeamErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTeamNotFound        TeamErrorCode = "TEAM-010001"
	ErrCodeTeamLocked          TeamErrorCode = "TEAM-010002"
	ErrCodeMissingTeamFields   TeamErrorCode = "TEAM-010003"
	ErrCodeNoTeamMembers       TeamErrorCode = "TEAM-010004"
	ErrCodeIncompleteMember    TeamErrorCode = "TEAM-010005"
	ErrCodeNegativeAdvance     TeamErrorCode = "TEAM-010006"
	ErrCodeBookInUse           TeamErrorCode = "TEAM-010007"
	ErrCodeBookAlreadyAssigned TeamErrorCode = "TEAM-010008"
	ErrCodeTeamDeletionDenied  TeamErrorCode = "TEAM-010009"
	ErrCodeMissingTeamID       TeamErrorCode = "TEAM-010010"
)

// DeletionReason identifies why a team deletion was denied.
type DeletionReason string

const (
	DeletionReasonLocked        DeletionReason = "team is locked"
	DeletionReasonHasCollection DeletionReason = "team has recorded collection"
	DeletionReasonFieldData     DeletionReason = "field survey entries reference this team"
)

// TeamError represents a team error with code and message.
type TeamError struct {
	Code    TeamErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TeamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TeamError) Unwrap() error {
	return e.Err
}

// NewTeamError creates a new TeamError with the given code and message.
func NewTeamError(code TeamErrorCode, message string, err error) *TeamError {
	return &TeamError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// DeletionDeniedError carries the specific reason a team could not be deleted.
type DeletionDeniedError struct {
	Reason DeletionReason
}

// Error implements the error interface.
func (e *DeletionDeniedError) Error() string {
	return "team deletion denied: " + string(e.Reason)
}

// Unwrap returns the sentinel deletion error so errors.Is keeps working.
func (e *DeletionDeniedError) Unwrap() error {
	return ErrTeamDeletionDenied
}

// NewDeletionDeniedError creates a DeletionDeniedError for the given reason.
func NewDeletionDeniedError(reason DeletionReason) *DeletionDeniedError {
	return &DeletionDeniedError{Reason: reason}
}
