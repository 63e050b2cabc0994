package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrNoPaths, "no input paths")
	assert.Equal(t, "[NO_PATHS] no input paths", err.Error())

	err = Newf(ErrBadRow, "bad row: %q", "a\tb\tc")
	assert.Contains(t, err.Error(), "bad row")
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(cause, ErrRenameFailed, "renaming failed")

	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, cause, errors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrRenameFailed, "ignored"))
}

func TestErrorCodes(t *testing.T) {
	err := Newf(ErrPlanFailed, "plan is not ok")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrPlanFailed))
	assert.False(t, IsErrorCode(wrapped, ErrRenameDone))
	assert.Equal(t, ErrPlanFailed, GetErrorCode(wrapped))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := New(ErrRenameDone, "already executed")
	assert.True(t, errors.Is(err, New(ErrRenameDone, "other message")))
	assert.False(t, errors.Is(err, New(ErrPlanFailed, "x")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrRenameFailed, "failed").
		WithDetail("original", "a.txt").
		WithDetail("cursor", 3)

	require.NotNil(t, err.Details)
	assert.Equal(t, "a.txt", err.Details["original"])
	assert.Equal(t, 3, err.Details["cursor"])
}
