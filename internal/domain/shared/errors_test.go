package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsKind(t *testing.T) {
	err := NewDomainError("module", "AddStudent", ErrAlreadyExists, "student already exists")

	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "module.AddStudent: student already exists", err.Error())
}

func TestDomainError_IsSentinelThroughWrapping(t *testing.T) {
	sentinel := NewDomainError("buddy", "AddModule", ErrAlreadyExists, "module already exists")
	wrapped := fmt.Errorf("add module: %w", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, NewDomainError("buddy", "RemoveModule", ErrNotFound, "module not found")))
}

func TestWrapError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError("storage", "Save", ErrInvalidState, "cannot save", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ValidationError("student", "NewName", "bad name")))
	assert.True(t, IsValidation(ErrEmptyValue))
	assert.False(t, IsValidation(ErrNotFound))
}

func TestMessageOf(t *testing.T) {
	err := fmt.Errorf("ctx: %w", ValidationError("student", "NewEmail", "Emails should be of the format local-part@domain"))
	assert.Equal(t, "Emails should be of the format local-part@domain", MessageOf(err))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Equal(t, "", MessageOf(nil))
}
