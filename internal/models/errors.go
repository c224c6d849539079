package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation error")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

var (
	ErrEventNotFound      = fmt.Errorf("event %w", ErrNotFound)
	ErrResourceNotFound   = fmt.Errorf("resource %w", ErrNotFound)
	ErrProgramNotFound    = fmt.Errorf("program %w", ErrNotFound)
	ErrTicketTypeNotFound = fmt.Errorf("ticket type %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket %w", ErrNotFound)

	ErrAlreadyScanned = fmt.Errorf("ticket already scanned: %w", ErrInvalidTransition)
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Reason
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
