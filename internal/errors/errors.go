// Package errors provides unified error handling for the promptbank CLI.
//
// Every failure surfaced to the user travels as an *AppError carrying a
// standardized code. Errors are terminal for the current command: the CLI
// prints the message once to stderr and exits non-zero. There is no retry
// policy anywhere in the tool.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of failure.
type ErrorCode string

const (
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeStorageFailure  ErrorCode = "STORAGE_FAILURE"
	ErrCodeParseFailure    ErrorCode = "PARSE_FAILURE"
	ErrCodeEnvironment     ErrorCode = "ENVIRONMENT_FAILURE"
	ErrCodeClipboard       ErrorCode = "CLIPBOARD_FAILURE"
	ErrCodeNetwork         ErrorCode = "NETWORK_FAILURE"
)

// AppError is a structured error with a code, a user-facing message, and an
// optional underlying cause.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Suggestion string // optional "did you mean" hint shown after the message
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithSuggestion attaches a hint printed alongside the error message.
func (e *AppError) WithSuggestion(s string) *AppError {
	e.Suggestion = s
	return e
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error, preserving the
// cause chain for errors.Is/As.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// GetAppError extracts an AppError from err, converting foreign errors to a
// storage failure so every surfaced error carries a code.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeStorageFailure, "operation failed")
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Constructors for the common failure kinds.

func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

func InvalidCategory(tag string) *AppError {
	return New(ErrCodeInvalidCategory, fmt.Sprintf("invalid category: %s", tag))
}

func NotFound(key string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("prompt not found: %s", key))
}

func StorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageFailure, fmt.Sprintf("storage operation failed: %s", operation))
}

func ParseError(path string, err error) *AppError {
	return Wrap(err, ErrCodeParseFailure, fmt.Sprintf("failed to parse %s", path))
}

func EnvironmentError(message string) *AppError {
	return New(ErrCodeEnvironment, message)
}

func ClipboardError(err error) *AppError {
	return Wrap(err, ErrCodeClipboard, "failed to copy to clipboard")
}

func NetworkError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeNetwork, fmt.Sprintf("network operation failed: %s", operation))
}
