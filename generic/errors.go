/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The payroll package and the stores wrap these; the api package maps
  them to HTTP status codes in a single place.

ERROR CATEGORIES:
  1. Invalid input - malformed dates, end-before-start, bad fields
  2. Not found - unknown employee id
  3. Conflict - employee number collision that survived retries
  4. Storage - the record store failed

USAGE:
  if errors.Is(err, generic.ErrInvalidInput) {
      // 400, never retried
  }

SEE ALSO:
  - api/handlers.go: writeDomainError maps these to HTTP
  - store/sqlite/sqlite.go: Produces StorageError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is the root of every client-side validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate is returned when a date does not parse as a calendar date.
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrInvalidInput)

	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = fmt.Errorf("%w: end date must be on or after start date", ErrInvalidInput)

	// ErrEntityNotFound is returned when a referenced entity doesn't exist.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateEmployeeNumber is returned when a generated employee number
	// is already taken. The service retries on it before giving up.
	ErrDuplicateEmployeeNumber = errors.New("duplicate employee number")

	// ErrStorageFailure is returned when the record store is unavailable.
	ErrStorageFailure = errors.New("storage failure")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// StorageError wraps a driver error. The cause is kept for logs; callers
// only see ErrStorageFailure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return ErrStorageFailure }

// Cause returns the underlying driver error.
func (e *StorageError) Cause() error { return e.Err }

// NewStorageError returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRetryable returns true if the error might succeed on retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrDuplicateEmployeeNumber)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}
