// Package apperr defines the error taxonomy shared by all bookkeeping
// operations: NotFound, Conflict, and ValidationError. Every failure is the
// result of a bad request or missing prerequisite data, never transient, so
// callers surface these directly instead of retrying.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced id or named entity that does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict marks a duplicate unique name on create.
var ErrConflict = errors.New("already exists")

// ValidationError describes a rejected request: a non-positive amount, an
// unresolved foreign reference, or a malformed enum value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf wraps ErrNotFound with a human-readable message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Conflictf wraps ErrConflict with a human-readable message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
