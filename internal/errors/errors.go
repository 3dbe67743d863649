package errors

import "errors"

// Code identifies a structured error type used across the application.
type Code string

const (
	// Generic codes
	CodeUnknown Code = "unknown"

	// Validation errors. Handled locally as silent no-ops at the call site.
	CodeEmptyText     Code = "empty_text"
	CodeInvalidColor  Code = "invalid_color"
	CodeUnknownKind   Code = "unknown_content_kind"
	CodeInvalidListID Code = "invalid_list_id"

	// Persistence errors (local store save failures). Surfaced to the user
	// only for operations with explicit save semantics (color, category).
	CodePersistenceFailed Code = "persistence_failed"
	CodeNotFound          Code = "not_found"

	// Suggestion provider errors. Swallowed by the engine; the code exists
	// so the debug log can classify them.
	CodeProviderFailed Code = "provider_failed"

	CodeConfigurationError Code = "configuration_error"
)

// Error represents a structured error with a machine-readable code plus message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
