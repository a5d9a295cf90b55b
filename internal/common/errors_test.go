package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError(t *testing.T) {
	err := &InputError{Violations: []Violation{
		{Field: "content", Constraint: "required"},
		{Field: "type", Constraint: "must be one of [email, call]"},
	}}

	assert.Equal(t, "invalid input: content: required; type: must be one of [email, call]", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(fmt.Errorf("classify: %w", err), ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrCoercion))
}

func TestNewInputError(t *testing.T) {
	err := NewInputError("body", "required")
	assert.Equal(t, []Violation{{Field: "body", Constraint: "required"}}, err.Violations)
}

func TestUserError(t *testing.T) {
	cause := fmt.Errorf("%w: llm.provider", ErrInvalidConfig)
	err := NewUserError("configuration is invalid", cause)

	assert.Equal(t, "configuration is invalid: invalid configuration: llm.provider", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
