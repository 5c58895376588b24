package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Domain errors are wrapped in MatrixServiceError and stay reachable through errors.Is
// 3. The API layer maps service and domain errors to appropriate HTTP status codes
var (
	// ErrEmptyBatch indicates a batch request without any birth dates.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyBatch = errors.New("batch contains no birth dates")

	// ErrBatchTooLarge indicates a batch request above the configured maximum.
	// API layer should map this to HTTP 400 Bad Request.
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
)

// MatrixServiceError is a custom error type for matrix service errors.
type MatrixServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for MatrixServiceError.
func (e *MatrixServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("matrix service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("matrix service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MatrixServiceError) Unwrap() error {
	return e.Err
}

// NewMatrixServiceError creates a new MatrixServiceError.
func NewMatrixServiceError(operation, message string, err error) *MatrixServiceError {
	return &MatrixServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
