package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookup failures and caller-fault input.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidDirection = errors.New("invalid sort direction")
)

// MissingFieldError reports a required field that was absent, or blank after
// trimming, in a create or update request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// StorageError wraps a failure of the backing store. The operation that hit it
// is recoverable: the persisted collection is whatever the last successful
// Save left behind, and the caller may simply retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is caller-fault: a missing field, a bad
// date, or a bad sort request. Lookup and storage failures are not validation
// errors.
func IsValidation(err error) bool {
	var missing *MissingFieldError
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidSortField) ||
		errors.Is(err, ErrInvalidDirection) ||
		errors.As(err, &missing)
}
