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
var ErrDuplicate = errors.New("resource already exists")

// ErrHasDependents indicates a deletion was refused because other records still reference the resource.
var ErrHasDependents = errors.New("resource has dependent records")

// ErrImmutable indicates an update was refused because the resource has left its editable state.
var ErrImmutable = errors.New("resource is no longer editable")

// ErrStoreUnavailable indicates the persistent store is not configured or reachable.
// Reads degrade to empty results; writes surface this error.
var ErrStoreUnavailable = errors.New("persistent store unavailable")

// AppError carries an HTTP-ish status code alongside a message and cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping an optional cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
