package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	t.Run("message is the error text", func(t *testing.T) {
		err := NewDomainError(CodeInvalidField, "unknown order field \"x\"")
		assert.Equal(t, "unknown order field \"x\"", err.Error())
	})

	t.Run("matches sentinel by code", func(t *testing.T) {
		err := NewDomainError(CodeItemNotFound, "line item \"abc\" not found")
		assert.True(t, errors.Is(err, ErrItemNotFound))
		assert.False(t, errors.Is(err, ErrSessionNotFound))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("delete item: %w", NewDomainError(CodeConfirmationRequired, "Delete the last item?"))
		assert.True(t, errors.Is(err, ErrConfirmationRequired))

		var domainErr *DomainError
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, CodeConfirmationRequired, domainErr.Code)
	})

	t.Run("plain errors never match", func(t *testing.T) {
		assert.False(t, ErrNotFound.Is(errors.New("NOT_FOUND")))
	})
}
