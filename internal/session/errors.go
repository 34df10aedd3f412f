package session

import (
	"errors"
	"fmt"
)

// Error codes for session failures
const (
	// ErrAlreadyInitialized means Initialize was called a second time.
	ErrAlreadyInitialized = "SESSION_ALREADY_INITIALIZED"
	// ErrLoginRejected means the backend refused the supplied credentials.
	ErrLoginRejected = "SESSION_LOGIN_REJECTED"
	// ErrProfileFetchFailed means a stored token exists but the profile
	// could not be retrieved; the token is treated as invalid.
	ErrProfileFetchFailed = "SESSION_PROFILE_FETCH_FAILED"
)

// Error represents a session failure with a stable code.
type Error struct {
	// Code is the error code (e.g., SESSION_LOGIN_REJECTED)
	Code string

	// Message is a human-readable error message
	Message string

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode returns the stable code for log correlation.
func (e *Error) ErrorCode() string {
	return e.Code
}

// NewError creates a new session Error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an underlying error with a session Error.
func WrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// HasCode reports whether err is a session Error with the given code.
func HasCode(err error, code string) bool {
	var sessErr *Error
	if errors.As(err, &sessErr) {
		return sessErr.Code == code
	}
	return false
}

// IsLoginRejected reports whether err means the credentials were refused.
func IsLoginRejected(err error) bool {
	return HasCode(err, ErrLoginRejected)
}

// IsProfileFetchFailed reports whether err means a token was present but
// the profile lookup failed.
func IsProfileFetchFailed(err error) bool {
	return HasCode(err, ErrProfileFetchFailed)
}
