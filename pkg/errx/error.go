package errx

import (
	"errors"
	"fmt"
)

// Error represents a rich error with context and metadata
type Error struct {
	// Code is the unique error code
	Code string `json:"code"`

	// Message is the human-readable error message
	Message string `json:"message"`

	// Type categorizes the error
	Type Type `json:"type"`

	// ExitCode is the suggested process exit code
	ExitCode int `json:"exit_code"`

	// Details contains additional context about the error
	Details map[string]interface{} `json:"details,omitempty"`

	// Err is the underlying error (not exported in JSON)
	Err error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error and returns the error for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// New creates a new Error
func New(message string, errType Type) *Error {
	return &Error{
		Code:     string(errType),
		Message:  message,
		Type:     errType,
		ExitCode: typeToExitCode(errType),
		Details:  make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string, errType Type) *Error {
	if err == nil {
		return nil
	}

	// If it's already an Error, preserve code and details
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:     existingErr.Code,
			Message:  message,
			Type:     errType,
			ExitCode: existingErr.ExitCode,
			Details:  existingErr.Details,
			Err:      err,
		}
	}

	return &Error{
		Code:     string(errType),
		Message:  message,
		Type:     errType,
		ExitCode: typeToExitCode(errType),
		Details:  make(map[string]interface{}),
		Err:      err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, errType Type, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...), errType)
}

// Is checks if an error matches the target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// typeToExitCode maps error types to process exit codes
func typeToExitCode(t Type) int {
	switch t {
	case TypeValidation, TypeNotFound:
		return 2 // usage error
	case TypeAuthorization:
		return 2 // missing/invalid credentials, fixable by the user
	case TypeExternal:
		return 3 // upstream service failure
	case TypeInternal:
		return 1
	default:
		return 1
	}
}

// ExitCodeFor extracts the suggested exit code from any error
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.ExitCode
	}
	return 1
}
