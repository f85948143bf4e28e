package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DatabaseError wraps an unexpected database failure with the operation and
// entity type it occurred on, so callers can log and map it uniformly.
type DatabaseError struct {
	Op     string
	Entity string
	Err    error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Entity, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError creates a new database error
func NewDatabaseError(op, entity string, err error) error {
	return &DatabaseError{Op: op, Entity: entity, Err: err}
}

// JobStateError is returned when a job status transition violates the job
// state machine (e.g. completing an already-failed job).
type JobStateError struct {
	JobID string
	From  string
	To    string
}

func (e *JobStateError) Error() string {
	return fmt.Sprintf("job %s: invalid transition from '%s' to '%s'", e.JobID, e.From, e.To)
}

// IsJobStateError checks if an error is a job state error
func IsJobStateError(err error) bool {
	var se *JobStateError
	return errors.As(err, &se)
}
