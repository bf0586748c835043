package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/token"
)

func collect(t *testing.T, c *token.Cursor) []string {
	t.Helper()
	var got []string
	for c.HasNext() {
		tok, err := c.Next()
		require.NoError(t, err)
		got = append(got, tok.Text)
	}
	return got
}

func TestNextBasic(t *testing.T) {
	c := token.New("<test>", `1 2 + "hi there" dup true false x_1 <= >= := return:3 convert:int`)
	assert.Equal(t, []string{
		"1", "2", "+", `"hi there"`, "dup", "true", "false", "x_1",
		"<=", ">=", ":=", "return:3", "convert:int",
	}, collect(t, c))
}

func TestNumericLiteralBases(t *testing.T) {
	c := token.New("<test>", `0b101 0o5 0d5 0x5 5 1.5 2e3 1.5e-2`)
	assert.Equal(t, []string{"0b101", "0o5", "0d5", "0x5", "5", "1.5", "2e3", "1.5e-2"}, collect(t, c))
}

func TestNotFoundAtEnd(t *testing.T) {
	c := token.New("<test>", "   ")
	assert.False(t, c.HasNext())
	_, err := c.Next()
	require.Error(t, err)
	assert.True(t, token.IsNotFound(err))
}

func TestSyntaxErrorOnGarbage(t *testing.T) {
	c := token.New("<test>", "1 @@@ 2")
	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.Error(t, err)
	assert.False(t, token.IsNotFound(err))
}

func TestPushPopStateRestartability(t *testing.T) {
	before := collect(t, token.New("<test>", "1 2 3 4"))

	c2 := token.New("<test>", "1 2 3 4")
	c2.PushState()
	_, err := c2.Next()
	require.NoError(t, err)
	_, err = c2.Next()
	require.NoError(t, err)
	c2.PopState()

	after := collect(t, c2)
	assert.Equal(t, before, after)
}

func TestCurrentPosition(t *testing.T) {
	c := token.New("<test>", "1 2\n3 4")
	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	_, err = c.Next() // "3", now positioned after it on the second line
	require.NoError(t, err)
	line, col := c.CurrentPosition()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestWithCodeAppended(t *testing.T) {
	c := token.New("<test>", "1 2")
	_, err := c.Next()
	require.NoError(t, err)

	c2 := c.WithCodeAppended(" 3")
	// old cursor position is preserved; its own state is untouched
	rest := collect(t, c)
	assert.Equal(t, []string{"2"}, rest)

	rest2 := collect(t, c2)
	assert.Equal(t, []string{"2", "3"}, rest2)
}
