package value

import (
	"fmt"

	"github.com/jcorbin/sof/internal/ast"
)

// CodeBlock is a suspended, unexecuted sequence of AST nodes plus the
// source span it was parsed from (spec §3): a first-class callable value
// produced by a `{ ... }` literal.
type CodeBlock struct {
	Body        *ast.TokenList
	File        string
	SourceStart int
	SourceEnd   int
}

func (*CodeBlock) Kind() Kind    { return KindCodeBlock }
func (cb *CodeBlock) Arity() int { return 0 }
func (cb *CodeBlock) Copy() Value {
	return cb // code blocks are immutable once parsed; copies alias
}
func (cb *CodeBlock) Print() string { return fmt.Sprintf("{...} (%v bytes)", cb.SourceEnd-cb.SourceStart) }
func (cb *CodeBlock) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "CodeBlock"
	case Full:
		return fmt.Sprintf("CodeBlock(%v:%v-%v, %v nodes)", cb.File, cb.SourceStart, cb.SourceEnd, cb.Body.Len())
	default:
		return cb.Print()
	}
}
func (cb *CodeBlock) Equals(other Value) bool {
	o, ok := other.(*CodeBlock)
	return ok && o == cb
}
func (cb *CodeBlock) Compare(other Value) (int, error) { return 0, errIncomparable(cb, other) }

// Function is a CodeBlock bound with a declared argument count and the
// global nametable it closes over (spec §3). Per spec §9, a Function
// holds only a non-owning reference to the global frame -- the global
// frame is what owns Function values, never the reverse -- so there is
// no ownership cycle between a function and the scope that defines it.
type Function struct {
	Body        *ast.TokenList
	ArgCount    int
	Global      *Nametable
	File        string
	SourceStart int
	SourceEnd   int
	Name        string // best-effort, for stack traces; may be empty
}

func (*Function) Kind() Kind    { return KindFunction }
func (fn *Function) Arity() int { return fn.ArgCount }
func (fn *Function) Copy() Value {
	return fn
}
func (fn *Function) Print() string {
	if fn.Name != "" {
		return fmt.Sprintf("function %v/%v", fn.Name, fn.ArgCount)
	}
	return fmt.Sprintf("function/%v", fn.ArgCount)
}
func (fn *Function) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Function"
	case Full:
		return fmt.Sprintf("Function(%v, arity=%v, %v:%v-%v)", fn.Name, fn.ArgCount, fn.File, fn.SourceStart, fn.SourceEnd)
	default:
		return fn.Print()
	}
}
func (fn *Function) Equals(other Value) bool {
	o, ok := other.(*Function)
	return ok && o == fn
}
func (fn *Function) Compare(other Value) (int, error) { return 0, errIncomparable(fn, other) }

// Constructor has the same shape as Function; the interpreter dispatches
// on Kind() to treat its invocation specially, producing an Object
// instead of an ordinary return value (spec §3, §4.5).
type Constructor struct {
	Function
	ClassName string
}

func (*Constructor) Kind() Kind { return KindConstructor }
func (c *Constructor) Copy() Value {
	return c
}
func (c *Constructor) Print() string {
	return fmt.Sprintf("constructor %v/%v", c.ClassName, c.ArgCount)
}
func (c *Constructor) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "Constructor"
	case Full:
		return fmt.Sprintf("Constructor(%v, arity=%v)", c.ClassName, c.ArgCount)
	default:
		return c.Print()
	}
}
func (c *Constructor) Equals(other Value) bool {
	o, ok := other.(*Constructor)
	return ok && o == c
}
func (c *Constructor) Compare(other Value) (int, error) { return 0, errIncomparable(c, other) }

// CurriedFunction pairs an underlying Callable with args already
// supplied; its remaining arity is the underlying arity minus the
// curried count (spec §3 invariant: never negative).
type CurriedFunction struct {
	Under   Callable
	Curried []Value
}

func (*CurriedFunction) Kind() Kind { return KindCurriedFunction }
func (cf *CurriedFunction) Arity() int {
	n := cf.Under.Arity() - len(cf.Curried)
	if n < 0 {
		return 0
	}
	return n
}
func (cf *CurriedFunction) Copy() Value {
	return cf
}
func (cf *CurriedFunction) Print() string {
	return fmt.Sprintf("curried(%v, %v supplied)/%v", cf.Under.Print(), len(cf.Curried), cf.Arity())
}
func (cf *CurriedFunction) DebugString(x Extensiveness) string {
	switch x {
	case Type:
		return "CurriedFunction"
	case Full:
		return fmt.Sprintf("CurriedFunction(under=%v, curried=%v, remaining=%v)", cf.Under.DebugString(Compact), len(cf.Curried), cf.Arity())
	default:
		return cf.Print()
	}
}
func (cf *CurriedFunction) Equals(other Value) bool {
	o, ok := other.(*CurriedFunction)
	return ok && o == cf
}
func (cf *CurriedFunction) Compare(other Value) (int, error) { return 0, errIncomparable(cf, other) }
