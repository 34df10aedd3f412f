package gateway

import (
	"errors"
	"fmt"
)

// Error codes for gateway failures
const (
	// ErrNetwork means the backend could not be reached.
	ErrNetwork = "GATEWAY_NETWORK"
	// ErrTimeout means the backend did not respond within the request timeout.
	ErrTimeout = "GATEWAY_TIMEOUT"
	// ErrUnauthorized means the backend rejected the bearer token (HTTP 401).
	ErrUnauthorized = "GATEWAY_UNAUTHORIZED"
	// ErrAPI means the backend answered with a non-success status other than 401.
	ErrAPI = "GATEWAY_API"
	// ErrDecode means the response body could not be parsed.
	ErrDecode = "GATEWAY_DECODE"
)

// Error represents a gateway failure with a stable code and HTTP context.
//
// Network, timeout and authorization failures are distinct codes so callers
// can react differently: only ErrUnauthorized carries a session side effect.
type Error struct {
	// Code is the error code (e.g., GATEWAY_UNAUTHORIZED)
	Code string

	// Message is a human-readable error message
	Message string

	// Status is the HTTP status code, 0 when no response was received
	Status int

	// Body is the raw response body for non-success statuses
	Body string

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Cause != nil:
		return fmt.Sprintf("%s: %s (status %d, caused by: %v)", e.Code, e.Message, e.Status, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode returns the stable code for log correlation.
func (e *Error) ErrorCode() string {
	return e.Code
}

// NewError creates a new gateway Error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an underlying error with a gateway Error.
func WrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// HasCode reports whether err is a gateway Error with the given code.
func HasCode(err error, code string) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Code == code
	}
	return false
}

// IsUnauthorized reports whether err is an authorization failure (HTTP 401).
func IsUnauthorized(err error) bool {
	return HasCode(err, ErrUnauthorized)
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	return HasCode(err, ErrTimeout)
}

// IsNetwork reports whether err is a network failure (including timeouts).
func IsNetwork(err error) bool {
	return HasCode(err, ErrNetwork) || HasCode(err, ErrTimeout)
}
