package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of client error.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates the remote API rejected the bearer token (401).
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeValidation indicates a business/validation rejection (4xx with message).
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeNotFound indicates a resource was not found (404).
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeTransport indicates the request never produced a response.
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeInternal indicates an unexpected remote or local failure.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured client error with a code, a human-readable
// message, and an optional cause. It supports errors.Is and errors.As.
// For remote rejections Message carries the message extracted from the
// response envelope, suitable for direct display.
type AppError struct {
	// Code categorizes the error type.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Status is the HTTP status that produced the error, when one exists.
	Status int
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message, Status: 401}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Status: 404}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Transport wraps a failure where no response was received. The transport's
// own message is preserved for display.
func Transport(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: ErrCodeTransport, Message: err.Error(), Cause: err}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// FromStatus builds an AppError for a non-2xx response. message is the text
// extracted from the response envelope; when empty, a generic status message
// is used so callers always have something to display.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &AppError{Code: classifyStatus(status), Message: message, Status: status}
}

func classifyStatus(status int) ErrorCode {
	switch {
	case status == 401:
		return ErrCodeUnauthorized
	case status == 404:
		return ErrCodeNotFound
	case status >= 400 && status < 500:
		return ErrCodeValidation
	default:
		return ErrCodeInternal
	}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// DisplayMessage extracts the message a presentation layer should show for
// err. AppError messages pass through; anything else falls back to the plain
// error text.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
