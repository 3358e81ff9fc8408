// ABOUTME: Error taxonomy for ledger and registry mutations.
// ABOUTME: Sentinel errors plus a structured ValidationError.
package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when an exercise name already exists
	// for the target date (trimmed, case-insensitive comparison).
	ErrDuplicateName = errors.New("an exercise with this name already exists for this date")

	// ErrDuplicateType is returned when an exercise type already exists
	// in the registry (trimmed, exact comparison).
	ErrDuplicateType = errors.New("this exercise type already exists")

	// ErrNotFound is returned when a referenced record does not exist,
	// for example after a concurrent deletion.
	ErrNotFound = errors.New("exercise not found")

	// ErrUnknownType is returned when a record references an exercise
	// type that is not in the registry.
	ErrUnknownType = errors.New("unknown exercise type")
)

// ValidationError reports an out-of-range or missing required field.
// Failed mutations leave ledger and aggregate state untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
