package errors_test

import (
	"fmt"
	"testing"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "entry not found")
	assert.Equal(t, errors.ErrNotFound, err.Code)
	assert.Equal(t, "[NOT_FOUND] entry not found", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		inner := fmt.Errorf("disk exploded")
		err := errors.Wrap(inner, errors.ErrStoreRead, "reading order blob")
		require.NotNil(t, err)
		assert.Equal(t, "[STORE_READ] reading order blob: disk exploded", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("nil_passthrough", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrStoreRead, "nope"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrStoreRead, "nope %d", 1))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrDecodeInvalid, "bad name length %d", 99)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecodeInvalid))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotFound))

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrDecodeInvalid))
	assert.Equal(t, errors.ErrDecodeInvalid, errors.GetErrorCode(wrapped))

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMoveInfeasible, "fence in the way").
		WithDetail("operation", "temperature").
		WithDetail("instance", 0)
	assert.Equal(t, "temperature", err.Details["operation"])
	assert.Equal(t, 0, err.Details["instance"])
}
