package kernel_test

import (
	"strings"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should create email with valid address", func(t *testing.T) {
		e, err := kernel.NewEmail("ann@example.com")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "ann@example.com", e.String())
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without at sign", func(t *testing.T) {
		_, err := kernel.NewEmail("ann.example.com")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without domain dot", func(t *testing.T) {
		_, err := kernel.NewEmail("ann@example")

		require.Error(t, err)
	})

	t.Run("should fail with whitespace", func(t *testing.T) {
		_, err := kernel.NewEmail("ann smith@example.com")

		require.Error(t, err)
	})

	t.Run("should fail when longer than 254 characters", func(t *testing.T) {
		long := strings.Repeat("a", 250) + "@x.com"

		_, err := kernel.NewEmail(long)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept address at the length limit", func(t *testing.T) {
		local := strings.Repeat("a", 254-len("@example.com"))

		e, err := kernel.NewEmail(local + "@example.com")

		require.NoError(t, err)
		assert.Len(t, e.String(), 254)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var e kernel.Email

		err := e.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrEmailIsNotConstructed, err)
	})
}

func TestEmail_IsEqual(t *testing.T) {
	t.Run("should compare by exact value", func(t *testing.T) {
		a, _ := kernel.NewEmail("ann@example.com")
		b, _ := kernel.NewEmail("ann@example.com")
		c, _ := kernel.NewEmail("bob@example.com")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
