// Package errors defines the coded error type returned by every keepsake
// operation. Callers branch on the code rather than on message text:
//
//	if errors.IsErrorCode(err, errors.ErrDecode) {
//		// file exists but no longer matches the value type
//	}
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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Environment errors
	ErrBaseDir ErrorCode = "BASE_DIR"

	// Codec errors
	ErrDecode ErrorCode = "DECODE"
	ErrEncode ErrorCode = "ENCODE"

	// FileSystem errors
	ErrFileOpen  ErrorCode = "FILE_OPEN"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// StoreError represents a structured error with code and details
type StoreError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StoreError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a StoreError with the same code.
func (e *StoreError) Is(target error) bool {
	var targetErr *StoreError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StoreError with the given code and message
func New(code ErrorCode, message string) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StoreError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StoreError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a StoreError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *StoreError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StoreError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *StoreError) WithDetail(key string, value interface{}) *StoreError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *StoreError) WithDetails(details map[string]interface{}) *StoreError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StoreError
func GetErrorCode(err error) ErrorCode {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StoreError
func GetErrorDetails(err error) map[string]interface{} {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Details
	}
	return nil
}
