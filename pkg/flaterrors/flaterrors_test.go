package flaterrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	errC := errors.New("c")

	t.Run("should return nil when all inputs are nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, Join())
		assert.NoError(t, Join(nil))
		assert.NoError(t, Join(nil, nil))
	})

	t.Run("should discard nil errors", func(t *testing.T) {
		t.Parallel()

		err := Join(nil, errA, nil)
		require.Error(t, err)
		assert.Equal(t, "a", err.Error())
	})

	t.Run("should match every joined error with errors.Is", func(t *testing.T) {
		t.Parallel()

		err := Join(errA, errB)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.NotErrorIs(t, err, errC)
	})

	t.Run("should flatten previously joined errors", func(t *testing.T) {
		t.Parallel()

		inner := Join(errA, errB)
		err := Join(inner, errC)

		fe, ok := err.(*flatError)
		require.True(t, ok)
		assert.Len(t, fe.errs, 3)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errC)
	})

	t.Run("should join messages with newlines", func(t *testing.T) {
		t.Parallel()

		err := Join(errA, errB)
		assert.Equal(t, "a\nb", err.Error())
	})
}
