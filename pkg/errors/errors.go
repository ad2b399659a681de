package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store errors
	ErrIO           ErrorCode = "IO"
	ErrInvalidKey   ErrorCode = "INVALID_KEY"
	ErrInvalidValue ErrorCode = "INVALID_VALUE"

	// Expansion errors
	ErrUnresolvedShortcut ErrorCode = "UNRESOLVED_SHORTCUT"

	// Front end errors
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrClipboard       ErrorCode = "CLIPBOARD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// WaypointError represents a structured error with code and details
type WaypointError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WaypointError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WaypointError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WaypointError) Is(target error) bool {
	var targetErr *WaypointError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WaypointError with the given code and message
func New(code ErrorCode, message string) *WaypointError {
	return &WaypointError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WaypointError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WaypointError {
	return &WaypointError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WaypointError.
// A nil err yields a nil *WaypointError; only call it on a non-nil error
// when the result is returned as an error interface.
func Wrap(err error, code ErrorCode, message string) *WaypointError {
	if err == nil {
		return nil
	}
	return &WaypointError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WaypointError {
	if err == nil {
		return nil
	}
	return &WaypointError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WaypointError) WithDetail(key string, value interface{}) *WaypointError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *WaypointError) WithDetails(details map[string]interface{}) *WaypointError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wpErr *WaypointError
	if errors.As(err, &wpErr) {
		return wpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WaypointError
func GetErrorCode(err error) ErrorCode {
	var wpErr *WaypointError
	if errors.As(err, &wpErr) {
		return wpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WaypointError
func GetErrorDetails(err error) map[string]interface{} {
	var wpErr *WaypointError
	if errors.As(err, &wpErr) {
		return wpErr.Details
	}
	return nil
}

// The constructors below name the failure kinds the store, the expander and
// the command line surface to their callers.

// IO reports a backing file that could not be read or written.
func IO(err error, path string, op string) *WaypointError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "failed to %s %s", op, path).WithDetails(map[string]interface{}{
		"path": path,
		"op":   op,
	})
}

// InvalidKey reports a shortcut key that is not made of word characters.
func InvalidKey(key string) *WaypointError {
	return Newf(ErrInvalidKey, "invalid shortcut key %q: only letters, digits and underscores are allowed", key).
		WithDetail("key", key)
}

// InvalidValue reports a shortcut value the line-based store cannot hold.
func InvalidValue(key string) *WaypointError {
	return Newf(ErrInvalidValue, "value for shortcut %q must be a single line", key).
		WithDetail("key", key)
}

// UnresolvedShortcut reports a token that matches neither a stored shortcut nor a built-in escape.
func UnresolvedShortcut(key string) *WaypointError {
	return Newf(ErrUnresolvedShortcut, "unrecognized shortcut [%s]", key).
		WithDetail("key", key)
}

// MissingArgument reports a required input that was not supplied.
func MissingArgument(argument string) *WaypointError {
	return Newf(ErrMissingArgument, "missing required argument: %s", argument).
		WithDetail("argument", argument)
}
