package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminNotFound is returned when an admin account is not found.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrPasswordTooShort is returned when a new password is below the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrWrongCurrentPassword is returned when the current password does not match.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials   AuthErrorCode = "AUTH-010001"
	ErrCodeAdminNotFound        AuthErrorCode = "AUTH-010002"
	ErrCodePasswordTooShort     AuthErrorCode = "AUTH-010003"
	ErrCodeWrongCurrentPassword AuthErrorCode = "AUTH-010004"
	ErrCodeMissingToken         AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken         AuthErrorCode = "AUTH-020002"
	ErrCodeInsufficientRole     AuthErrorCode = "AUTH-020003"
	ErrCodeRateLimited          AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
