package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/parser"
	"github.com/jcorbin/sof/internal/token"
)

func parse(t *testing.T, src string) *ast.TokenList {
	t.Helper()
	c := token.New("<test>", src)
	root, err := parser.Parse(c)
	require.NoError(t, err)
	return root
}

func TestParseLiterals(t *testing.T) {
	root := parse(t, `1 2.5 "hi" true false`)
	require.Len(t, root.Children, 5)

	lit, ok := root.Children[0].(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)

	lit = root.Children[1].(*ast.Literal)
	assert.Equal(t, 2.5, lit.Value)

	lit = root.Children[2].(*ast.Literal)
	assert.Equal(t, "hi", lit.Value)

	lit = root.Children[3].(*ast.Literal)
	assert.Equal(t, true, lit.Value)

	lit = root.Children[4].(*ast.Literal)
	assert.Equal(t, false, lit.Value)
}

func TestIntegerBasesRoundTrip(t *testing.T) {
	root := parse(t, `0b101 0o5 0d5 0x5 5`)
	for _, child := range root.Children {
		lit := child.(*ast.Literal)
		assert.Equal(t, int64(5), lit.Value)
	}
}

func TestParseAtomAndPrimitive(t *testing.T) {
	root := parse(t, `dup foo +`)
	require.Len(t, root.Children, 3)

	_, ok := root.Children[0].(*ast.Primitive)
	assert.True(t, ok)

	atom, ok := root.Children[1].(*ast.Atom)
	require.True(t, ok)
	assert.Equal(t, "foo", atom.Name)

	_, ok = root.Children[2].(*ast.Primitive)
	assert.True(t, ok)
}

func TestParseNestedBlock(t *testing.T) {
	root := parse(t, `{ dup * } 1 function`)
	require.Len(t, root.Children, 3)

	block, ok := root.Children[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Body.Children, 2)
}

func TestUnbalancedBraces(t *testing.T) {
	c := token.New("<test>", `{ dup`)
	_, err := parser.Parse(c)
	require.Error(t, err)

	c = token.New("<test>", `dup }`)
	_, err = parser.Parse(c)
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	root := parse(t, `quote foo`)
	require.Len(t, root.Children, 1)
	lit, ok := root.Children[0].(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.IdentValue("foo"), lit.Value)
}

func TestReturnN(t *testing.T) {
	root := parse(t, `return:3`)
	require.Len(t, root.Children, 1)
	prim := root.Children[0].(*ast.Primitive)
	assert.Equal(t, "return:3", prim.Token)
}
