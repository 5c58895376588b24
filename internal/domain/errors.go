// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a birthdate string does not resolve to a
	// valid calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownPosition is returned when a matrix position key is not one of
	// the eleven known positions.
	ErrUnknownPosition = errors.New("unknown matrix position")

	// ErrIncompleteMatrix is returned when a matrix is rebuilt without all
	// eleven positions.
	ErrIncompleteMatrix = errors.New("matrix must contain all positions")

	// ErrDigitOutOfRange is returned when a matrix value lies outside 1..9.
	ErrDigitOutOfRange = errors.New("matrix value must be between 1 and 9")
)

// ValidationError describes a single invalid field or argument.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping err, which is usually
// ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
