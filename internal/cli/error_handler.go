package cli

import (
	"fmt"

	"timereport/internal/errors"
	"timereport/internal/validation"
)

// ErrorHandler turns structured errors into the single-line messages the
// CLI prints before exiting non-zero.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsConfigurationError checks if an error is a configuration error
func (eh *ErrorHandler) IsConfigurationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeConfiguration)
}

// IsLookupError checks if an error is a lookup error
func (eh *ErrorHandler) IsLookupError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeLookup)
}
