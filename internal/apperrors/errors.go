package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError carries the full ordered list of rule-engine messages for
// one request. Handlers render every message, never just the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Is lets errors.Is(err, ErrValidation) match a ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError wraps the accumulated rule messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// ConflictError carries one message per conflicting duplicate field.
type ConflictError struct {
	Messages []string
}

func (e *ConflictError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Is lets errors.Is(err, ErrDuplicate) match a ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewConflictError wraps the duplicate-field messages.
func NewConflictError(messages []string) *ConflictError {
	return &ConflictError{Messages: messages}
}

// AppError pairs an HTTP-ish status code with an underlying cause. Used by
// the repository layer for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
