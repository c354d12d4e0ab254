package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Repositories translate a storage-level unique violation into this error, which is the
// authoritative duplicate signal; service-level existence pre-checks only produce a
// friendlier message in the non-racing case.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateEmail narrows ErrDuplicate to an email uniqueness violation, so
// callers can report it distinctly from a duplicate business code. It matches
// errors.Is(err, ErrDuplicate).
var ErrDuplicateEmail = fmt.Errorf("%w: email already in use", ErrDuplicate)

// ErrMissingFields indicates that a required-field precondition failed before any
// other business rule was evaluated.
var ErrMissingFields = errors.New("required fields missing")

// ErrTypeMismatch indicates a hierarchical type disagreement, e.g. a child account
// whose type differs from its parent's.
var ErrTypeMismatch = errors.New("type mismatch")

// AppError wraps a lower-level error with an HTTP-ish code and a message suitable
// for logging. It is mostly produced by the repository layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
