package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = New("sentinel")

func TestWrapKeepsIdentity(t *testing.T) {
	wrapped := Wrapf(errSentinel, "creating %s", "demo")

	assert.Contains(t, wrapped.Error(), "creating demo")
	assert.Contains(t, wrapped.Error(), "sentinel")
	assert.True(t, Is(wrapped, errSentinel))
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(errSentinel, "choose another name")
	err = Wrap(err, "outer")

	require.True(t, Is(err, errSentinel))
	assert.Equal(t, []string{"choose another name"}, Hints(err))
}

func TestHintsOnPlainError(t *testing.T) {
	assert.Empty(t, Hints(fmt.Errorf("plain")))
	assert.Nil(t, Hints(nil))
}

type pathError struct{ path string }

func (e *pathError) Error() string { return "bad path " + e.path }

func TestAsThroughWrap(t *testing.T) {
	err := Wrap(&pathError{path: "demo"}, "failed")

	var target *pathError
	require.True(t, As(err, &target))
	assert.Equal(t, "demo", target.path)
}

func TestMarkKeepsCause(t *testing.T) {
	cause := fmt.Errorf("mkdir demo: %w", fs.ErrExist)
	err := Mark(Wrap(cause, "failed to create project directory"), errSentinel)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, fs.ErrExist))
}
