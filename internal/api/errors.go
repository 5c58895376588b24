package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/destiny-matrix/internal/api/shared"
	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrBatchTooLarge):
		return http.StatusBadRequest

	// Well-formed requests carrying an unusable matrix
	case errors.Is(err, domain.ErrUnknownPosition),
		errors.Is(err, domain.ErrDigitOutOfRange),
		errors.Is(err, domain.ErrIncompleteMatrix),
		errors.Is(err, numerology.ErrEmptyMatrix):
		return http.StatusUnprocessableEntity

	// Client went away or the server deadline passed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid birth date"

	case errors.Is(err, service.ErrEmptyBatch):
		return "Batch must contain at least one birth date"

	case errors.Is(err, service.ErrBatchTooLarge):
		return "Batch contains too many birth dates"

	case errors.Is(err, domain.ErrUnknownPosition):
		return "Matrix contains an unknown position"

	case errors.Is(err, domain.ErrDigitOutOfRange):
		return "Matrix values must be between 1 and 9"

	case errors.Is(err, domain.ErrIncompleteMatrix),
		errors.Is(err, numerology.ErrEmptyMatrix):
		return "Matrix must contain all eleven positions"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return "Request was cancelled"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
