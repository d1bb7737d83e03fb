// Package common defines the error taxonomy shared by the agrostock stores and
// the CLI, plus small byte helpers. Callers match errors with errors.Is against
// the sentinels below; AppError carries the human-readable message shown to
// the user.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrConflict marks an attempt to register an email that is already taken.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks an unknown email at login or profile edit.
	ErrNotFound = errors.New("not found")
	// ErrAuth marks a password mismatch.
	ErrAuth = errors.New("authentication failed")
	// ErrStorage marks a failure of the underlying key-value store.
	ErrStorage = errors.New("storage error")
)

// AppError pairs one of the sentinel errors with a message for the user and,
// for validation failures, the offending field.
type AppError struct {
	Err     error
	Message string
	Field   string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes both the sentinel and, for storage failures, the driver error.
func (e *AppError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

func Validation(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Auth(message string) *AppError {
	return &AppError{Err: ErrAuth, Message: message}
}

// Storage wraps a backend failure. A nil err yields nil so it can be used
// directly on return values.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{Err: ErrStorage, Message: op, cause: err}
}
