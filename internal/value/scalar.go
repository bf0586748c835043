package value

import (
	"fmt"
	"strconv"
)

// Integer is a signed 64-bit numeric value (spec §3).
type Integer int64

func (Integer) Kind() Kind             { return KindInteger }
func (v Integer) Print() string        { return strconv.FormatInt(int64(v), 10) }
func (v Integer) Copy() Value          { return v }
func (v Integer) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Integer"
	case Full:
		return fmt.Sprintf("Integer(%d)", int64(v))
	default:
		return v.Print()
	}
}
func (v Integer) Equals(other Value) bool {
	switch o := other.(type) {
	case Integer:
		return v == o
	case Float:
		return Float(v) == o
	default:
		return false
	}
}
func (v Integer) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case Integer:
		return compareOrdered(int64(v), int64(o)), nil
	case Float:
		return compareOrdered(float64(v), float64(o)), nil
	default:
		return 0, errIncomparable(v, other)
	}
}

// Float is a 64-bit IEEE floating point value (spec §3).
type Float float64

func (Float) Kind() Kind      { return KindFloat }
func (v Float) Copy() Value   { return v }
func (v Float) Print() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Float) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Float"
	case Full:
		return fmt.Sprintf("Float(%v)", float64(v))
	default:
		return v.Print()
	}
}
func (v Float) Equals(other Value) bool {
	switch o := other.(type) {
	case Float:
		return v == o
	case Integer:
		return v == Float(o)
	default:
		return false
	}
}
func (v Float) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case Float:
		return compareOrdered(float64(v), float64(o)), nil
	case Integer:
		return compareOrdered(float64(v), float64(o)), nil
	default:
		return 0, errIncomparable(v, other)
	}
}

// Boolean is a truth value (spec §3).
type Boolean bool

func (Boolean) Kind() Kind      { return KindBoolean }
func (v Boolean) Copy() Value   { return v }
func (v Boolean) Print() string { return strconv.FormatBool(bool(v)) }
func (v Boolean) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Boolean"
	case Full:
		return fmt.Sprintf("Boolean(%v)", bool(v))
	default:
		return v.Print()
	}
}
func (v Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && v == o
}
func (v Boolean) Compare(other Value) (int, error) {
	o, ok := other.(Boolean)
	if !ok {
		return 0, errIncomparable(v, other)
	}
	return compareOrdered(boolToInt(v), boolToInt(o)), nil
}

func boolToInt(b Boolean) int {
	if b {
		return 1
	}
	return 0
}

// String is an immutable byte sequence (spec §3); length is cached via
// Go's native string length, which is already O(1).
type String string

func (String) Kind() Kind      { return KindString }
func (v String) Copy() Value   { return v }
func (v String) Print() string { return string(v) }
func (v String) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "String"
	case Full:
		return fmt.Sprintf("String(%q, len=%d)", string(v), len(v))
	default:
		return strconv.Quote(string(v))
	}
}
func (v String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && v == o
}
func (v String) Compare(other Value) (int, error) {
	o, ok := other.(String)
	if !ok {
		return 0, errIncomparable(v, other)
	}
	return compareOrdered(string(v), string(o)), nil
}

// Identifier is a validated name, compared by textual equality (spec §3).
// As a Value it is data: pushed via the `quote` primitive, or by an Atom
// whose name is unbound; an Atom with a bound name pushes that name's
// value instead, and never invokes it.
type Identifier string

func (Identifier) Kind() Kind      { return KindIdentifier }
func (v Identifier) Copy() Value   { return v }
func (v Identifier) Print() string { return string(v) }
func (v Identifier) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Identifier"
	case Full:
		return fmt.Sprintf("Identifier(%s)", string(v))
	default:
		return string(v)
	}
}
func (v Identifier) Equals(other Value) bool {
	o, ok := other.(Identifier)
	return ok && v == o
}
func (v Identifier) Compare(other Value) (int, error) {
	o, ok := other.(Identifier)
	if !ok {
		return 0, errIncomparable(v, other)
	}
	return compareOrdered(string(v), string(o)), nil
}

// compareOrdered returns -1/0/1 for any Go ordered scalar type.
func compareOrdered[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
