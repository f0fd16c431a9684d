// Package errors provides structured error types for tikznet.
//
// Every failure of a render request carries a machine-readable code so callers
// can tell configuration mistakes apart from malformed attribute values or
// layout problems without parsing messages.
//
// # Error Codes
//
// The core taxonomy:
//   - CONFIG: malformed canvas, margin or unit setting
//   - FORMAT: attribute value of an unsupported shape, malformed network input
//   - LAYOUT: malformed adjacency or unknown layout algorithm
//   - UNAVAILABLE_FEATURE: a requested code path is not supported by the input
//
// The CLI layer adds INVALID_INPUT, FILE_NOT_FOUND and UNSUPPORTED.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfig, "unknown unit %q", name)
//	if errors.Is(err, errors.ErrCodeConfig) {
//	    // abort the render
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render request errors
	ErrCodeConfig      Code = "CONFIG"
	ErrCodeFormat      Code = "FORMAT"
	ErrCodeLayout      Code = "LAYOUT"
	ErrCodeUnavailable Code = "UNAVAILABLE_FEATURE"

	// Caller errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Config is shorthand for New(ErrCodeConfig, ...).
func Config(format string, args ...any) *Error {
	return New(ErrCodeConfig, format, args...)
}

// Format is shorthand for New(ErrCodeFormat, ...).
func Format(format string, args ...any) *Error {
	return New(ErrCodeFormat, format, args...)
}

// Layout is shorthand for New(ErrCodeLayout, ...).
func Layout(format string, args ...any) *Error {
	return New(ErrCodeLayout, format, args...)
}

// Unavailable is shorthand for New(ErrCodeUnavailable, ...).
func Unavailable(format string, args ...any) *Error {
	return New(ErrCodeUnavailable, format, args...)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
