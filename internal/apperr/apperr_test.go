package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Game not found", New(NotFound, "Game not found").Error())

	wrapped := Wrap(Unexpected, "Server error", errors.New("connection reset"))
	assert.Equal(t, "Server error: connection reset", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("outer: %w", Wrap(Unexpected, "Server error", cause))

	var ae *Error
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, Unexpected, ae.Kind)
	assert.True(t, errors.Is(err, cause))
}

func TestValidation(t *testing.T) {
	err := Validation(map[string]string{"title": "Title is required"})
	assert.Equal(t, ValidationFailed, err.Kind)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Contains(t, err.Fields, "title")
}
