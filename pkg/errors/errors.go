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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUsage        ErrorCode = "USAGE"
	ErrAborted      ErrorCode = "ABORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Preflight errors, nothing has been touched when one of these is returned
	ErrSourceMissing               ErrorCode = "SOURCE_MISSING"
	ErrDestinationUnset            ErrorCode = "DESTINATION_UNSET"
	ErrDestinationExists           ErrorCode = "DESTINATION_EXISTS"
	ErrDestinationInsideSource     ErrorCode = "DESTINATION_INSIDE_SOURCE"
	ErrNotConfigurationRoot        ErrorCode = "NOT_CONFIGURATION_ROOT"
	ErrLocalizedAPI                ErrorCode = "LOCALIZED_API"
	ErrDestinationParentMissing    ErrorCode = "DESTINATION_PARENT_MISSING"
	ErrDestinationParentPermission ErrorCode = "DESTINATION_PARENT_PERMISSION"

	// Mutating phase errors
	ErrPartialCopy    ErrorCode = "PARTIAL_COPY"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrFileWrite      ErrorCode = "FILE_WRITE"
	ErrMappingUpdate  ErrorCode = "MAPPING_UPDATE"
	ErrRegistryUpdate ErrorCode = "REGISTRY_UPDATE"
	ErrRegistryAccess ErrorCode = "REGISTRY_ACCESS"
)

var preflightCodes = map[ErrorCode]bool{
	ErrSourceMissing:               true,
	ErrDestinationUnset:            true,
	ErrDestinationExists:           true,
	ErrDestinationInsideSource:     true,
	ErrNotConfigurationRoot:        true,
	ErrLocalizedAPI:                true,
	ErrDestinationParentMissing:    true,
	ErrDestinationParentPermission: true,
}

// PcmoveError represents a structured error with code and details
type PcmoveError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PcmoveError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PcmoveError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PcmoveError) Is(target error) bool {
	var targetErr *PcmoveError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PcmoveError with the given code and message
func New(code ErrorCode, message string) *PcmoveError {
	return &PcmoveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PcmoveError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PcmoveError {
	return &PcmoveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PcmoveError
func Wrap(err error, code ErrorCode, message string) *PcmoveError {
	if err == nil {
		return nil
	}
	return &PcmoveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PcmoveError {
	if err == nil {
		return nil
	}
	return &PcmoveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PcmoveError) WithDetail(key string, value interface{}) *PcmoveError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pcErr *PcmoveError
	if errors.As(err, &pcErr) {
		return pcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PcmoveError
func GetErrorCode(err error) ErrorCode {
	var pcErr *PcmoveError
	if errors.As(err, &pcErr) {
		return pcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PcmoveError
func GetErrorDetails(err error) map[string]interface{} {
	var pcErr *PcmoveError
	if errors.As(err, &pcErr) {
		return pcErr.Details
	}
	return nil
}

// IsPreflight reports whether err was raised by a preflight check.
func IsPreflight(err error) bool {
	return preflightCodes[GetErrorCode(err)]
}
