// Package errors provides error handling for the Akismet API client
package errors

import "fmt"

// AkismetError represents the different types of errors that can occur
type AkismetError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// ErrorType represents the type of error
type ErrorType int

const (
	HTTPError ErrorType = iota
	ConfigError
	UnknownError
	IOError
)

// Error implements the error interface
func (e *AkismetError) Error() string {
	switch e.Type {
	case HTTPError:
		return fmt.Sprintf("HTTP request failed: %s", e.Message)
	case ConfigError:
		return fmt.Sprintf("Configuration error: %s", e.Message)
	case IOError:
		return fmt.Sprintf("IO error: %s", e.Message)
	case UnknownError:
		return "Unknown error"
	default:
		return fmt.Sprintf("Unknown error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause error
func (e *AkismetError) Unwrap() error {
	return e.Cause
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(message string) *AkismetError {
	return &AkismetError{
		Type:    HTTPError,
		Message: message,
	}
}

// NewHTTPErrorWithCause creates a new HTTP error with a cause
func NewHTTPErrorWithCause(message string, cause error) *AkismetError {
	return &AkismetError{
		Type:    HTTPError,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string) *AkismetError {
	return &AkismetError{
		Type:    ConfigError,
		Message: message,
	}
}

// NewIOError creates a new IO error
func NewIOError(cause error) *AkismetError {
	return &AkismetError{
		Type:    IOError,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// NewUnknownError creates a new unknown error
func NewUnknownError() *AkismetError {
	return &AkismetError{
		Type:    UnknownError,
		Message: "",
	}
}
