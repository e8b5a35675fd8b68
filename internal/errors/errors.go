package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeCorruptData = "CORRUPT_DATA"
)

// AppError is an error the menus can show to the player as-is.
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "CORRUPT_DATA")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// NewCorruptDataError creates a new CORRUPT_DATA error for a file or record
// that exists but cannot be decoded.
func NewCorruptDataError(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeCorruptData,
		Message: fmt.Sprintf("%s is unreadable", resource),
		Err:     err,
	}
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// UserMessage is the text shown to the player for err. AppErrors show their
// message without the code; anything else is reported generically.
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if appErr.Err != nil && appErr.Code != ErrCodeInternal {
			return fmt.Sprintf("%s (%v)", appErr.Message, appErr.Err)
		}
		if appErr.Code == ErrCodeInternal && appErr.Err != nil {
			return appErr.Err.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
