package error

import "errors"

// Field data domain errors.
var (
	// ErrFieldDataNotFound is returned when a field survey entry is not found.
	ErrFieldDataNotFound = errors.New("field data not found")

	// ErrFieldDataLocked is returned when a mutation is attempted on a locked entry.
	ErrFieldDataLocked = errors.New("field data entry is locked")

	// ErrFieldDataAccessDenied is returned when a data collector touches an
	// entry created by someone else.
	ErrFieldDataAccessDenied = errors.New("access to field data entry denied")

	// ErrMissingFieldDataFields is returned when required survey fields are empty.
	ErrMissingFieldDataFields = errors.New("masjid name, place and contact person are required")
)

// FieldDataErrorCode defines error codes for field data errors.
type FieldDataErrorCode string

const (
	ErrCodeFieldDataNotFound      FieldDataErrorCode = "FLD-010001"
	ErrCodeFieldDataLocked        FieldDataErrorCode = "FLD-010002"
	ErrCodeFieldDataAccessDenied  FieldDataErrorCode = "FLD-010003"
	ErrCodeMissingFieldDataFields FieldDataErrorCode = "FLD-010004"
)

// FieldDataError represents a field data error with code and message.
type FieldDataError struct {
	Code    FieldDataErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FieldDataError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FieldDataError) Unwrap() error {
	return e.Err
}

// NewFieldDataError creates a new FieldDataError with the given code and message.
func NewFieldDataError(code FieldDataErrorCode, message string, err error) *FieldDataError {
	return &FieldDataError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
