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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Stub tree errors
	ErrUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"
	ErrPathEscape      ErrorCode = "PATH_ESCAPE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// fileSystemCodes groups the codes that make up a filesystem failure.
var fileSystemCodes = map[ErrorCode]bool{
	ErrFileAccess: true,
	ErrFileRead:   true,
	ErrFileWrite:  true,
	ErrFileRemove: true,
	ErrDirCreate:  true,
}

// GraftError represents a structured error with code and details
type GraftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GraftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GraftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GraftError) Is(target error) bool {
	var targetErr *GraftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GraftError with the given code and message
func New(code ErrorCode, message string) *GraftError {
	return &GraftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GraftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GraftError {
	return &GraftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GraftError
func Wrap(err error, code ErrorCode, message string) *GraftError {
	if err == nil {
		return nil
	}
	return &GraftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GraftError {
	if err == nil {
		return nil
	}
	return &GraftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GraftError) WithDetail(key string, value interface{}) *GraftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var graftErr *GraftError
	if errors.As(err, &graftErr) {
		return graftErr.Code == code
	}
	return false
}

// IsFileSystemError reports whether err is a filesystem failure (permission,
// missing parent, disk full, ...) raised by one of the installer components.
func IsFileSystemError(err error) bool {
	var graftErr *GraftError
	if errors.As(err, &graftErr) {
		return fileSystemCodes[graftErr.Code]
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GraftError
func GetErrorCode(err error) ErrorCode {
	var graftErr *GraftError
	if errors.As(err, &graftErr) {
		return graftErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GraftError
func GetErrorDetails(err error) map[string]interface{} {
	var graftErr *GraftError
	if errors.As(err, &graftErr) {
		return graftErr.Details
	}
	return nil
}
