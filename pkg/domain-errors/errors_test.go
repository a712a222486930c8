package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Run("matches the code", func(t *testing.T) {
		err := New(CodeValidation, "country is required")
		assert.True(t, Is(err, CodeValidation))
		assert.False(t, Is(err, CodeNotFound))
	})

	t.Run("finds a code deeper in the chain", func(t *testing.T) {
		inner := New(CodeInvalidInput, "bad digits")
		outer := Wrap(inner, CodeInternal, "validation failed")
		assert.True(t, Is(outer, CodeInternal))
		assert.True(t, Is(outer, CodeInvalidInput))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, Is(errors.New("boom"), CodeInternal))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeBadRequest, CodeOf(New(CodeBadRequest, "x")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	// Wrapping in fmt.Errorf keeps the code reachable.
	wrapped := fmt.Errorf("handler: %w", New(CodeValidation, "x"))
	assert.Equal(t, CodeValidation, CodeOf(wrapped))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(cause, CodeInternal, "context")
	assert.ErrorIs(t, err, cause)
}
