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

	// Input parsing errors
	ErrNoPaths   ErrorCode = "NO_PATHS"
	ErrImbalance ErrorCode = "IMBALANCE"
	ErrBadRow    ErrorCode = "BAD_ROW"
	ErrBadParas  ErrorCode = "BAD_PARAGRAPHS"
	ErrReadInput ErrorCode = "READ_INPUT"

	// Plan errors
	ErrInvalidControl ErrorCode = "INVALID_CONTROL"
	ErrInvalidStrict  ErrorCode = "INVALID_STRICT"
	ErrPlanFailed     ErrorCode = "PLAN_FAILED"
	ErrRenameDone     ErrorCode = "RENAME_DONE"

	// Execution errors
	ErrUnrequestedClobber ErrorCode = "UNREQUESTED_CLOBBER"
	ErrUnsupportedClobber ErrorCode = "UNSUPPORTED_CLOBBER"
	ErrParentCreate       ErrorCode = "PARENT_CREATE"
	ErrRenameFailed       ErrorCode = "RENAME_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule errors
	ErrRuleParse ErrorCode = "RULE_PARSE"

	// History errors
	ErrHistoryWrite ErrorCode = "HISTORY_WRITE"
	ErrHistoryRead  ErrorCode = "HISTORY_READ"
)

// RenamerError represents a structured error with code and details
type RenamerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenamerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenamerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenamerError) Is(target error) bool {
	var targetErr *RenamerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenamerError with the given code and message
func New(code ErrorCode, message string) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenamerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenamerError {
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenamerError
func Wrap(err error, code ErrorCode, message string) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenamerError {
	if err == nil {
		return nil
	}
	return &RenamerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenamerError) WithDetail(key string, value interface{}) *RenamerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rerr *RenamerError
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenamerError
func GetErrorCode(err error) ErrorCode {
	var rerr *RenamerError
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ErrUnknown
}
