package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateTranscript is returned when a non-terminal job already
	// exists for the same transcript file
	ErrDuplicateTranscript = errors.New("duplicate transcript")

	// ErrInvalidTransition is returned when a status change is outside the
	// allowed transition graph
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrentModification is returned when a conditional update loses
	// a race with another writer
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// DuplicateTranscriptError carries the job that already holds the
// transcript. Unwraps to ErrDuplicateTranscript.
type DuplicateTranscriptError struct {
	TranscriptFile string
	ExistingJobID  int
}

func (e *DuplicateTranscriptError) Error() string {
	return fmt.Sprintf("duplicate transcript: %s is held by job %d", e.TranscriptFile, e.ExistingJobID)
}

func (e *DuplicateTranscriptError) Unwrap() error {
	return ErrDuplicateTranscript
}

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
