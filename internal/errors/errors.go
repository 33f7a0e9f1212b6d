package errors

import (
	"errors"
	"fmt"
)

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Code:    "CONFIGURATION_ERROR",
		Context: make(map[string]interface{}),
	}
}

// NewLookupError creates a new lookup error for a search query that
// matched no entities
func NewLookupError(kind string, query string) *AppError {
	return &AppError{
		Type:    ErrorTypeLookup,
		Message: fmt.Sprintf("no %s matches %q", kind, query),
		Code:    "LOOKUP_FAILED",
		Context: map[string]interface{}{
			"kind":  kind,
			"query": query,
		},
	}
}

// NewAmbiguousMatchError creates a new lookup error for a search query that
// matched more than one entity
func NewAmbiguousMatchError(kind string, query string, count int) *AppError {
	return &AppError{
		Type:    ErrorTypeLookup,
		Message: fmt.Sprintf("%s query %q is ambiguous: %d entities match", kind, query, count),
		Code:    "AMBIGUOUS_MATCH",
		Context: map[string]interface{}{
			"kind":  kind,
			"query": query,
			"count": count,
		},
	}
}

// NewUpstreamError creates a new upstream error for a failed service call
func NewUpstreamError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeUpstream,
		Message: fmt.Sprintf("tracker service request failed: %s", operation),
		Code:    "UPSTREAM_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeConfiguration, ErrorTypeLookup, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeUpstream:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
