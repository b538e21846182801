// Package errors provides structured error types for Anchorage.
//
// Errors carry a machine-readable code so the CLI can map failures to exit
// behavior and scenario reports can group them, while the message stays
// readable for humans.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (scenario files, names, values)
//   - UNKNOWN_*: References to things that do not exist
//   - EXPECTATION_FAILED: A scenario expectation did not hold
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownAttribute, "unknown attribute %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownAttribute) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScenario, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidScenario  Code = "INVALID_SCENARIO"
	ErrCodeInvalidName      Code = "INVALID_NAME"
	ErrCodeInvalidCondition Code = "INVALID_CONDITION"
	ErrCodeInvalidPriority  Code = "INVALID_PRIORITY"
	ErrCodeInvalidRelation  Code = "INVALID_RELATION"
	ErrCodeInvalidTraits    Code = "INVALID_TRAITS"

	// Lookup errors
	ErrCodeUnknownAttribute Code = "UNKNOWN_ATTRIBUTE"
	ErrCodeUnknownElement   Code = "UNKNOWN_ELEMENT"
	ErrCodeUnknownAction    Code = "UNKNOWN_ACTION"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// Playback errors
	ErrCodeExpectationFailed Code = "EXPECTATION_FAILED"
	ErrCodeCanceled          Code = "CANCELED"

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
		return e.Message
	}
	return err.Error()
}

// StepError locates a failure inside a scenario file.
type StepError struct {
	Step   int    // Zero-based step index
	Action string // Step action, e.g. "layout"
	Err    error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step+1, e.Action, e.Err)
}

// Unwrap returns the wrapped error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Code returns the code of the wrapped error, or ErrCodeInternal.
func (e *StepError) Code() Code {
	if c := GetCode(e.Err); c != "" {
		return c
	}
	return ErrCodeInternal
}
