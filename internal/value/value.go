// Package value implements SOF's tagged runtime value model (spec §3,
// §4.4): every variant implements a common Value interface (print,
// debug_string, equals, compare, copy), and Nametable/scope-chain
// bindings live alongside it since a Nametable is itself a Value.
package value

import "github.com/jcorbin/sof/internal/langerr"

// Kind tags which variant a Value holds.
type Kind int

// The variants named by spec §3's data model table.
const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindIdentifier
	KindCodeBlock
	KindFunction
	KindCurriedFunction
	KindConstructor
	KindObject
	KindNametable
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindIdentifier:
		return "Identifier"
	case KindCodeBlock:
		return "CodeBlock"
	case KindFunction:
		return "Function"
	case KindCurriedFunction:
		return "CurriedFunction"
	case KindConstructor:
		return "Constructor"
	case KindObject:
		return "Object"
	case KindNametable:
		return "Nametable"
	default:
		return "Unknown"
	}
}

// Extensiveness selects how much detail debug_string renders (spec §4.4,
// supplemented per SPEC_FULL.md).
type Extensiveness int

// The three extensiveness levels `describe` can render.
const (
	// Compact renders a one-line, human-facing summary.
	Compact Extensiveness = iota
	// Full renders nested structure: object fields, code block spans.
	Full
	// Type renders only the value's variant tag.
	Type
)

// Value is satisfied by every SOF runtime value variant.
type Value interface {
	Kind() Kind
	Print() string
	DebugString(x Extensiveness) string
	Equals(other Value) bool
	Compare(other Value) (int, error)
	Copy() Value
}

// Callable is satisfied by the variants that participate in the call
// protocol (spec §4.5): CodeBlock, Function, CurriedFunction,
// Constructor. Identifier also participates, but via lookup-then-dispatch
// rather than a fixed arity, so it is handled separately by the
// interpreter rather than implementing this interface.
type Callable interface {
	Value
	Arity() int
}

// errIncomparable builds the type error Compare raises across
// incompatible variants (spec §4.4: "mixed-type ordering fails with
// type").
func errIncomparable(a, b Value) error {
	return langerr.Typef("cannot compare %v with %v", a.Kind(), b.Kind())
}
