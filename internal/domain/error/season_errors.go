package error

import "errors"

// Season domain errors.
var (
	// ErrSeasonNotFound is returned when a season is not found in the system.
	ErrSeasonNotFound = errors.New("season not found")

	// ErrNoActiveSeason is returned when no season is currently active.
	ErrNoActiveSeason = errors.New("no active season")

	// ErrSeasonNotActive is returned when an operation requires the season to
	// be the active one.
	ErrSeasonNotActive = errors.New("season is not active")

	// ErrSeasonLocked is returned when a mutation is attempted within a locked season.
	ErrSeasonLocked = errors.New("season is locked")

	// ErrMissingSeasonName is returned when a season is created without a name.
	ErrMissingSeasonName = errors.New("season name is required")
)

// SeasonErrorCode defines error codes for season errors.
type SeasonErrorCode string

const (
	ErrCodeSeasonNotFound    SeasonErrorCode = "SSN-010001"
	ErrCodeNoActiveSeason    SeasonErrorCode = "SSN-010002"
	ErrCodeSeasonNotActive   SeasonErrorCode = "SSN-010003"
	ErrCodeSeasonLocked      SeasonErrorCode = "SSN-010004"
	ErrCodeMissingSeasonName SeasonErrorCode = "SSN-010005"
)

// SeasonError represents a season error with code and message.
type SeasonError struct {
	Code    SeasonErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SeasonError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SeasonError) Unwrap() error {
	return e.Err
}

// NewSeasonError creates a new SeasonError with the given code and message.
func NewSeasonError(code SeasonErrorCode, message string, err error) *SeasonError {
	return &SeasonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
