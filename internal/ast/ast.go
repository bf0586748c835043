// Package ast defines SOF's abstract syntax tree (spec §4.3): a token-list
// node is an ordered sequence of children, each either a literal, an atom
// (identifier reference), a primitive-token operation, or a nested
// token-list (a code block's body).
package ast

import "github.com/jcorbin/sof/internal/location"

// Node is satisfied by every AST node kind.
type Node interface {
	Loc() location.Loc
	node()
}

// base carries the location every node needs for error reporting and
// stack traces (spec §3: "every CodeBlock/Function carries enough
// location data to be reported in a stack trace").
type base struct{ loc location.Loc }

func (b base) Loc() location.Loc { return b.loc }
func (base) node()               {}

// Literal is an already-constructed runtime value pushed verbatim:
// an integer, float, boolean, string, or quoted-identifier literal.
type Literal struct {
	base
	Value interface{} // int64, float64, bool, string, or IdentValue
}

// IdentValue marks a Literal's Value as a quoted identifier-as-data,
// produced by the `quote` primitive (spec §9's resolution of the
// identifier-on-stack vs. name-lookup ambiguity): pushed verbatim as an
// Identifier value, never looked up.
type IdentValue string

// NewLiteral constructs a Literal node.
func NewLiteral(loc location.Loc, value interface{}) *Literal {
	return &Literal{base: base{loc}, Value: value}
}

// Atom is an identifier appearing in source as a value/lookup reference,
// resolved at evaluation time via the scope chain (spec §4.5).
type Atom struct {
	base
	Name string
}

// NewAtom constructs an Atom node.
func NewAtom(loc location.Loc, name string) *Atom {
	return &Atom{base: base{loc}, Name: name}
}

// Primitive is one of the fixed set of primitive tokens (spec §6),
// tagged by its textual form (e.g. "dup", "+", "return:3").
type Primitive struct {
	base
	Token string
}

// NewPrimitive constructs a Primitive node.
func NewPrimitive(loc location.Loc, tok string) *Primitive {
	return &Primitive{base: base{loc}, Token: tok}
}

// Block is the parsed body of a `{ ... }` code block: a nested
// token-list node, wrapped as a literal CodeBlock value at evaluation
// time by the interpreter (not here, since ast has no notion of Value).
type Block struct {
	base
	Body *TokenList

	// SourceStart and SourceEnd bound the code block's source span
	// (inclusive of the braces), so a CodeBlock value built from this
	// node can report where it came from.
	SourceStart, SourceEnd int
}

// NewBlock constructs a Block node.
func NewBlock(loc location.Loc, body *TokenList, start, end int) *Block {
	return &Block{base: base{loc}, Body: body, SourceStart: start, SourceEnd: end}
}

// TokenList is an ordered sequence of child nodes: the AST root, and the
// body of every nested code block.
type TokenList struct {
	base
	Children []Node
}

// NewTokenList constructs a TokenList node.
func NewTokenList(loc location.Loc, children []Node) *TokenList {
	return &TokenList{base: base{loc}, Children: children}
}

// Len reports the node count of the list, accessible in O(n) per spec
// §4.3 (it is exactly the slice length, so O(1) in practice).
func (tl *TokenList) Len() int { return len(tl.Children) }
