package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/testutil"
)

func TestRegister_DuplicateIndicator(t *testing.T) {
	m := New()

	err := m.Register("p", 2, func(*Machine, []term.Value) error { return nil })
	require.NoError(t, err)

	err = m.Register("p", 2, func(*Machine, []term.Value) error { return nil })
	assert.Error(t, err, "same name/arity registers once")

	// Different arity is a different predicate.
	err = m.Register("p", 1, func(*Machine, []term.Value) error { return nil })
	assert.NoError(t, err)
}

func TestCall_UnknownPredicate(t *testing.T) {
	m := New()

	err := m.Call("no_such_predicate", term.Int(1))
	assert.ErrorContains(t, err, "unknown predicate")
}

func TestCall_DispatchesByArity(t *testing.T) {
	m := New()
	var calledArity int

	require.NoError(t, m.Register("q", 1, func(_ *Machine, args []term.Value) error {
		calledArity = len(args)
		return nil
	}))
	require.NoError(t, m.Register("q", 2, func(_ *Machine, args []term.Value) error {
		calledArity = len(args)
		return nil
	}))

	require.NoError(t, m.Call("q", term.Int(1), term.Int(2)))
	assert.Equal(t, 2, calledArity)

	require.NoError(t, m.Call("q", term.Int(1)))
	assert.Equal(t, 1, calledArity)
}

func TestStreamHandles(t *testing.T) {
	m := New()

	h1 := m.OpenStream(testutil.NewPipe(), "a")
	h2 := m.OpenStream(testutil.NewPipe(), "b")
	assert.NotEqual(t, h1, h2)

	s, ok := m.Stream(h1)
	require.True(t, ok)
	assert.Equal(t, "a", s.Name())

	require.NoError(t, m.CloseStream(h1))
	_, ok = m.Stream(h1)
	assert.False(t, ok)

	assert.Error(t, m.CloseStream(h1), "double close reports an error")
}
