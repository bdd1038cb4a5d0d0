package fetcher

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred while retrieving or reading indicator data
type ErrorType string

const (
	// ErrorTypeValidation indicates the caller supplied arguments of the wrong shape; no I/O was attempted
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeNetwork indicates a transport-level error (malformed URL, connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeInvalidRequest indicates the provider answered with its error payload instead of data
	ErrorTypeInvalidRequest ErrorType = "invalid_request"
	// ErrorTypeDecode indicates the response matched neither the data nor the error shape
	ErrorTypeDecode ErrorType = "decode"
)

// FetchError represents a structured error from a fetch or parse operation
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates a network error
func NewNetworkError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewInvalidRequestError creates an error for a request the provider rejected.
// message is the provider's own human-readable text.
func NewInvalidRequestError(message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeInvalidRequest,
		Message: "bad request parameters: " + message,
		Cause:   cause,
	}
}

// NewDecodeError creates a decode error
func NewDecodeError(message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeDecode,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is, or wraps, a *FetchError of the given type
func IsType(err error, t ErrorType) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Type == t
}
