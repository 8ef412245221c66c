package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the target of an operation does not
	// exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrCapacityExceeded is returned when a booking would push a time
	// slot past its capacity. The store is left untouched.
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
)

// ValidationError reports malformed input rejected before any store
// mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
