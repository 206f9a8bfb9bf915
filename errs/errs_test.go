package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesOnKind(t *testing.T) {
	a := New(OutOfRange, "t=%g out of range", 3.5).WithSymbol("x").WithVarIndex(0)
	b := New(OutOfRange, "different message entirely")
	assert.True(t, errors.Is(a, b))
}

func TestIsRejectsDifferentKind(t *testing.T) {
	a := New(OutOfRange, "msg")
	b := New(InvalidDelay, "msg")
	assert.False(t, errors.Is(a, b))
}

func TestErrorStringIncludesContext(t *testing.T) {
	e := New(HistoryTooShort, "span %g < %g", 1.0, 2.0).WithSymbol("x1").WithVarIndex(2)
	s := e.Error()
	assert.Contains(t, s, "HistoryTooShort")
	assert.Contains(t, s, "x1")
	assert.Contains(t, s, "index 2")
}

func TestNewDefaultsVarIndex(t *testing.T) {
	e := New(InvalidDelay, "bad")
	assert.Equal(t, -1, e.VarIndex)
}
