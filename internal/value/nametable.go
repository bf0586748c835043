package value

import (
	"fmt"
	"strings"

	"github.com/jcorbin/sof/internal/langerr"
)

// Nametable is a single scope frame: an Identifier->Value binding map
// (spec §3, §4.4). It is itself a Value, so a Nametable can be pushed,
// inspected, or (via Object) reached as ordinary data. Equal identifiers
// collapse -- last write wins -- and insertion order is not significant
// to lookup, only to debug rendering, which is why Put tracks first-seen
// order separately.
type Nametable struct {
	names map[Identifier]Value
	order []Identifier
}

// NewNametable returns an empty scope frame.
func NewNametable() *Nametable {
	return &Nametable{names: make(map[Identifier]Value)}
}

func (*Nametable) Kind() Kind { return KindNametable }
func (nt *Nametable) Copy() Value {
	out := NewNametable()
	for _, id := range nt.order {
		out.Put(id, nt.names[id])
	}
	return out
}
func (nt *Nametable) Print() string { return fmt.Sprintf("nametable{%v names}", len(nt.names)) }
func (nt *Nametable) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Nametable"
	case Full:
		var sb strings.Builder
		sb.WriteString("Nametable{")
		for i, id := range nt.order {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(id))
			sb.WriteString("=")
			sb.WriteString(nt.names[id].DebugString(Compact))
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return nt.Print()
	}
}
func (nt *Nametable) Equals(other Value) bool {
	o, ok := other.(*Nametable)
	return ok && o == nt
}
func (nt *Nametable) Compare(other Value) (int, error) { return 0, errIncomparable(nt, other) }

// Has reports whether id is bound in this frame.
func (nt *Nametable) Has(id Identifier) bool {
	_, ok := nt.names[id]
	return ok
}

// Get returns the value bound to id in this frame, if any.
func (nt *Nametable) Get(id Identifier) (Value, bool) {
	v, ok := nt.names[id]
	return v, ok
}

// Put binds id to v in this frame, overwriting any prior binding.
func (nt *Nametable) Put(id Identifier, v Value) {
	if _, exists := nt.names[id]; !exists {
		nt.order = append(nt.order, id)
	}
	nt.names[id] = v
}

// PutAll copies every binding from other into this frame.
func (nt *Nametable) PutAll(other map[Identifier]Value) {
	for id, v := range other {
		nt.Put(id, v)
	}
}

// Identifiers returns the identifiers bound in this frame, in the order
// they were first put.
func (nt *Nametable) Identifiers() []Identifier {
	out := make([]Identifier, len(nt.order))
	copy(out, nt.order)
	return out
}

// Chain is the scope chain (spec §4.4): an ordered stack of Nametables
// with the global table at the bottom. Lookup walks top to bottom.
type Chain struct {
	frames []*Nametable
}

// NewChain returns a scope chain seeded with a single global frame, which
// is never popped (spec §3: "the scope chain is never empty after
// interpreter initialization").
func NewChain() *Chain {
	return &Chain{frames: []*Nametable{NewNametable()}}
}

// Depth reports how many frames are on the chain, global included.
func (c *Chain) Depth() int { return len(c.frames) }

// Global returns the bottom (global) frame.
func (c *Chain) Global() *Nametable { return c.frames[0] }

// Top returns the top (innermost) frame.
func (c *Chain) Top() *Nametable { return c.frames[len(c.frames)-1] }

// Push adds a fresh frame to the top of the chain.
func (c *Chain) Push(nt *Nametable) { c.frames = append(c.frames, nt) }

// Pop removes and returns the top frame. Popping the lone global frame is
// a programmer error in the interpreter, not a language-level condition;
// callers must check Depth() > 1 first (spec §4.5: unwinding past the
// global frame is a `stack` error, caught before Pop is ever called).
func (c *Chain) Pop() *Nametable {
	n := len(c.frames) - 1
	top := c.frames[n]
	c.frames = c.frames[:n]
	return top
}

// Lookup walks the chain top to bottom, returning the first binding
// found for id.
func (c *Chain) Lookup(id Identifier) (Value, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if v, ok := c.frames[i].Get(id); ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds id in the top frame (spec §4.4's `def`).
func (c *Chain) Define(id Identifier, v Value) { c.Top().Put(id, v) }

// GlobalDefine binds id in the bottom (global) frame (spec §4.4's
// `globaldef`).
func (c *Chain) GlobalDefine(id Identifier, v Value) { c.Global().Put(id, v) }

// MustLookup is Lookup, raising an incomplete name error on miss (spec
// §4.4: "a name lookup that finds nothing raises `name`").
func (c *Chain) MustLookup(id Identifier) (Value, error) {
	v, ok := c.Lookup(id)
	if !ok {
		return nil, langerr.Namef("undefined name %q", string(id))
	}
	return v, nil
}
