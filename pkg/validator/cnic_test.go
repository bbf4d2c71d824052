package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCNICValidator(t *testing.T) {
	v := NewCNICValidator()

	t.Run("Dashed Form", func(t *testing.T) {
		got, err := v.Validate("35202-1234567-8")
		require.NoError(t, err)
		assert.Equal(t, "35202-1234567-8", got)
	})

	t.Run("Plain Digits", func(t *testing.T) {
		got, err := v.Validate("3520212345678")
		require.NoError(t, err)
		assert.Equal(t, "35202-1234567-8", got)
	})

	t.Run("With Spaces", func(t *testing.T) {
		got, err := v.Validate(" 35202 1234567 8 ")
		require.NoError(t, err)
		assert.Equal(t, "35202-1234567-8", got)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.Validate("")
		assert.ErrorIs(t, err, ErrEmptyCNIC)
	})

	t.Run("Letters", func(t *testing.T) {
		_, err := v.Validate("35202-ABCDEFG-8")
		assert.ErrorIs(t, err, ErrInvalidCNICFormat)
	})

	t.Run("Too Short", func(t *testing.T) {
		_, err := v.Validate("35202-12345-8")
		assert.ErrorIs(t, err, ErrInvalidCNICLength)
	})

	t.Run("Too Long", func(t *testing.T) {
		_, err := v.Validate("35202-12345678-90")
		assert.ErrorIs(t, err, ErrInvalidCNICLength)
	})
}
