// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Caller errors.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// Completion errors.
	ErrProvider = errors.New("completion provider failed")
	ErrTimeout  = errors.New("completion provider timed out")
	ErrCoercion = errors.New("completion could not be coerced")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Violation describes one field that failed a constraint.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Constraint)
}

// InputError is returned when a caller payload is missing or has invalid
// structured fields. It is raised before any prompt is built.
type InputError struct {
	Violations []Violation
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", joinViolations(e.Violations))
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputError builds an InputError from a single field violation.
func NewInputError(field, constraint string) *InputError {
	return &InputError{Violations: []Violation{{Field: field, Constraint: constraint}}}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

func joinViolations(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}
