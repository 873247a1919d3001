package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedRefcount(t *testing.T) {
	finalized := 0
	h := NewShared("payload", func() { finalized++ })
	assert.Equal(t, int64(1), h.Refs())

	clone := h.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, int64(2), h.Refs())

	// Releasing one holder keeps the value alive.
	assert.False(t, clone.Release())
	assert.Equal(t, 0, finalized)
	v, ok := h.Value()
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	// The last release ends the lifetime exactly once.
	assert.True(t, h.Release())
	assert.Equal(t, 1, finalized)
	assert.False(t, h.Release())
	assert.Equal(t, 1, finalized)

	_, ok = h.Value()
	assert.False(t, ok)
	assert.Nil(t, h.Clone())
}

func TestExclusiveMove(t *testing.T) {
	finalized := 0
	h := NewExclusive(7, func() { finalized++ })

	v, ok := h.Value()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	moved, ok := h.Move()
	require.True(t, ok)

	// The source is dead after the move.
	_, ok = h.Value()
	assert.False(t, ok)
	_, ok = h.Move()
	assert.False(t, ok)
	assert.False(t, h.Release())

	v, ok = moved.Value()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	assert.True(t, moved.Release())
	assert.Equal(t, 1, finalized)
}

// Copies of an exclusive handle alias the same validity state, so moving
// through any copy invalidates all of them.
func TestExclusiveCopiesAlias(t *testing.T) {
	h := NewExclusive("x", nil)
	cp := *h

	_, ok := cp.Move()
	require.True(t, ok)

	_, ok = h.Value()
	assert.False(t, ok)
	_, ok = cp.Value()
	assert.False(t, ok)
}

func TestBorrowed(t *testing.T) {
	h := NewBorrowed(3.14)
	v, ok := h.Value()
	require.True(t, ok)
	assert.Equal(t, 3.14, v)
	assert.False(t, h.Release())
	// Borrowed handles never lose access.
	_, ok = h.Value()
	assert.True(t, ok)
}

type exclusiveType struct{}

func (exclusiveType) PreferredPolicy() Policy { return PolicyExclusive }

func TestPolicyOf(t *testing.T) {
	assert.Equal(t, PolicyExclusive, PolicyOf(exclusiveType{}))
	assert.Equal(t, PolicyShared, PolicyOf("no preference"))
	assert.Equal(t, PolicyShared, PolicyOf(nil))
}

func TestWrap(t *testing.T) {
	cases := []struct {
		policy Policy
	}{
		{PolicyShared},
		{PolicyExclusive},
		{PolicyBorrowed},
	}
	for _, tc := range cases {
		h := Wrap(1, tc.policy, nil)
		assert.Equal(t, tc.policy, h.Policy())
		v, ok := h.Value()
		require.True(t, ok)
		assert.Equal(t, 1, v)
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "shared", PolicyShared.String())
	assert.Equal(t, "exclusive", PolicyExclusive.String())
	assert.Equal(t, "borrowed", PolicyBorrowed.String())
}
