package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/value"
)

func TestNametablePutGet(t *testing.T) {
	nt := value.NewNametable()
	assert.False(t, nt.Has("x"))

	nt.Put("x", value.Integer(1))
	v, ok := nt.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Integer(1), v)

	// last write wins
	nt.Put("x", value.Integer(2))
	v, _ = nt.Get("x")
	assert.Equal(t, value.Integer(2), v)

	assert.Equal(t, []value.Identifier{"x"}, nt.Identifiers())
}

func TestChainLookupWalksTopToBottom(t *testing.T) {
	c := value.NewChain()
	c.GlobalDefine("x", value.Integer(1))

	frame := value.NewNametable()
	frame.Put("x", value.Integer(2))
	c.Push(frame)

	v, err := c.MustLookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Integer(2), v)

	popped := c.Pop()
	assert.Same(t, frame, popped)

	v, err = c.MustLookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Integer(1), v)
}

func TestChainDefineWritesTop(t *testing.T) {
	c := value.NewChain()
	c.Push(value.NewNametable())
	c.Define("y", value.Integer(9))

	assert.False(t, c.Global().Has("y"))
	assert.True(t, c.Top().Has("y"))
}

func TestChainUndefinedNameErrors(t *testing.T) {
	c := value.NewChain()
	_, err := c.MustLookup("nope")
	require.Error(t, err)
}

func TestChainDepthNeverEmpty(t *testing.T) {
	c := value.NewChain()
	assert.Equal(t, 1, c.Depth())
}
