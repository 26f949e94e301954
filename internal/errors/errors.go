package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
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

// NewAuthError creates a new authentication/authorization error.
// The message is the server-provided text when one was returned.
func NewAuthError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeAuth,
		Message: message,
		Code:    "AUTH_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNetworkError creates a new network error for requests that never
// reached the server
func NewNetworkError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeNetwork,
		Message: fmt.Sprintf("request failed: %s", operation),
		Code:    "NETWORK_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewRemoteError creates a new error for a non-success response from the
// remote API
func NewRemoteError(operation string, statusCode int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("remote operation failed: %s", operation)
	}
	return &AppError{
		Type:    ErrorTypeRemote,
		Message: message,
		Code:    "REMOTE_ERROR",
		Context: map[string]interface{}{
			"operation":   operation,
			"status_code": statusCode,
		},
	}
}

// NewStorageError creates a new local storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
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
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeAuth:
			if appErr.Message != "" {
				return appErr.Message
			}
			return "Authentication failed. Please log in again."
		case ErrorTypeNetwork:
			return "Network Error: Please try again later"
		case ErrorTypeRemote:
			if appErr.Message != "" {
				return appErr.Message
			}
			return "An unexpected error occurred."
		case ErrorTypeStorage:
			return "A local storage error occurred. Please try again."
		default:
			return "An unexpected error occurred."
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

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeNotFound:
			return false // user errors, not system errors
		case ErrorTypeAuth, ErrorTypeNetwork, ErrorTypeRemote, ErrorTypeStorage:
			return true
		default:
			return true
		}
	}
	return true
}
