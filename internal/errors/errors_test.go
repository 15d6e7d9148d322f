package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "while sweeping")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
	assert.False(t, IsAny(wrapped))
}

func TestCauseUnwrapsStack(t *testing.T) {
	wrapped := Wrapf(WithStack(errFirst), "step %d", 2)

	assert.Equal(t, errFirst, Cause(wrapped))
	assert.Equal(t, "step 2: first", wrapped.Error())
}
