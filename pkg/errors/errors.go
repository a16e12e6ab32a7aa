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

	// Pathvar errors
	ErrInvalidPathEncoding ErrorCode = "INVALID_PATH_ENCODING"
	ErrInvalidPathEntry    ErrorCode = "INVALID_PATH_ENTRY"
	ErrVariableNotSet      ErrorCode = "VARIABLE_NOT_SET"
	ErrInvalidName         ErrorCode = "INVALID_NAME"
	ErrScopeWrite          ErrorCode = "SCOPE_WRITE"

	// Session errors
	ErrSessionLoad ErrorCode = "SESSION_LOAD"
	ErrSessionSave ErrorCode = "SESSION_SAVE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// PathvarError represents a structured error with code and details
type PathvarError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathvarError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathvarError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathvarError) Is(target error) bool {
	var targetErr *PathvarError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathvarError with the given code and message
func New(code ErrorCode, message string) *PathvarError {
	return &PathvarError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathvarError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathvarError {
	return &PathvarError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathvarError
func Wrap(err error, code ErrorCode, message string) *PathvarError {
	if err == nil {
		return nil
	}
	return &PathvarError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathvarError {
	if err == nil {
		return nil
	}
	return &PathvarError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathvarError) WithDetail(key string, value interface{}) *PathvarError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PathvarError) WithDetails(details map[string]interface{}) *PathvarError {
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
	var pvErr *PathvarError
	if errors.As(err, &pvErr) {
		return pvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathvarError
func GetErrorCode(err error) ErrorCode {
	var pvErr *PathvarError
	if errors.As(err, &pvErr) {
		return pvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathvarError
func GetErrorDetails(err error) map[string]interface{} {
	var pvErr *PathvarError
	if errors.As(err, &pvErr) {
		return pvErr.Details
	}
	return nil
}
