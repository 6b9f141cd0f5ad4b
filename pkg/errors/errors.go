/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	stderrors "errors"
	"fmt"
)

// Is and As re-export the standard library helpers so callers do not need a
// second errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As reports whether any error in err's chain matches target, assigning it.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid CLI input.
	// Commands failing with this code exit with status 2 before probing.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeProbeFailure indicates a single external probe failed.
	ErrCodeProbeFailure ErrorCode = "PROBE_FAILURE"
	// ErrCodeAggregateFailure indicates every alternative within a
	// best-effort group failed, so zero usable results were produced.
	ErrCodeAggregateFailure ErrorCode = "AGGREGATE_FAILURE"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information. It includes an
// error code for programmatic handling (exit-code mapping), a human-readable
// message, the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of err, walking the wrap chain. Errors that carry
// no StructuredError anywhere in the chain report ErrCodeInternal. A nil
// error reports an empty code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
