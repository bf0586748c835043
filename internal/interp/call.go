package interp

import (
	"fmt"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/value"
)

// unwind is the sentinel carried by `return`/`return:n` (spec §4.5): it
// propagates as an ordinary Go error through nested invoke() calls,
// decrementing remaining at each intervening frame until it reaches its
// target, at which point the carried value is pushed and evaluation
// resumes normally. evalReturnN rejects any n that would unwind past the
// global frame before this type is ever constructed, so it never escapes
// RunSource's top-level evalList call.
type unwind struct {
	remaining int
	value     value.Value
}

func (u *unwind) Error() string {
	return fmt.Sprintf("return unwound %d frame(s) without reaching a target", u.remaining)
}

// argName is the binding convention for positional arguments (spec §4.5):
// arg0 through argN-1, bound in the fresh frame before the body runs.
func argName(i int) value.Identifier { return value.Identifier(fmt.Sprintf("arg%d", i)) }

// invoke runs the call protocol for any Callable (spec §4.5, steps 1-7).
func (interp *Interpreter) invoke(c value.Callable) error {
	switch v := c.(type) {
	case *value.CurriedFunction:
		return interp.invokeCurried(v)
	case *value.Constructor:
		return interp.invokeConstructor(v, nil)
	case *value.Function:
		return interp.invokeFunction(v.Body, v.ArgCount, nil)
	case *value.CodeBlock:
		return interp.invokeFunction(v.Body, 0, nil)
	default:
		return langerr.Typef("value of kind %v is not callable", c.Kind())
	}
}

// invokeValue dispatches `.` and any other point where a popped value
// must be invoked (spec §9): an Identifier is resolved -- first against
// the native registry, then the scope chain -- and whatever it resolves
// to is invoked in turn; any other value must already be Callable.
func (interp *Interpreter) invokeValue(v value.Value) error {
	if id, ok := v.(value.Identifier); ok {
		if nat, ok := interp.natives[string(id)]; ok {
			return interp.callNative(nat)
		}
		resolved, err := interp.chain.MustLookup(id)
		if err != nil {
			return err
		}
		return interp.invokeValue(resolved)
	}
	c, ok := v.(value.Callable)
	if !ok {
		return langerr.Typef("value of kind %v is not callable", v.Kind())
	}
	return interp.invoke(c)
}

// invokeFunction binds prepend (already-curried args, in order) followed
// by freshly popped arguments into a new frame, then pushes the same
// values back onto the operand stack before running body. A SOF function
// body is an ordinary sequence of stack primitives (spec §6's examples
// never name arg0 explicitly), so the call protocol's "pop into a vector,
// then bind by name" (spec §4.5 steps 1-2) has to leave those values
// where the body's `dup`/arithmetic/etc. can still reach them -- arg0..N-1
// are simultaneously a named frame binding and the body's starting stack.
func (interp *Interpreter) invokeFunction(body *ast.TokenList, argCount int, prepend []value.Value) error {
	args, err := interp.popArgs(argCount - len(prepend))
	if err != nil {
		return err
	}
	full := make([]value.Value, 0, argCount)
	full = append(full, prepend...)
	full = append(full, args...)
	frame := value.NewNametable()
	for i, a := range full {
		frame.Put(argName(i), a)
	}
	interp.chain.Push(frame)
	for _, a := range full {
		interp.push(a)
	}
	err = interp.evalList(body)
	return interp.completeFrame(err)
}

// completeFrame pops the just-pushed frame and folds its outcome back
// into the operand stack: an unwind signal either resolves here (its
// value is pushed) or keeps propagating with one less frame to cross; a
// plain error propagates untouched; normal completion (the body ran off
// its end without a `return`) leaves the stack exactly as the body left
// it, same as any other code block (spec §4.5: `return`/`return:n` are
// the only primitives that produce a function's result).
func (interp *Interpreter) completeFrame(err error) error {
	if uw, ok := err.(*unwind); ok {
		interp.chain.Pop()
		if uw.remaining <= 1 {
			interp.push(uw.value)
			return nil
		}
		return &unwind{remaining: uw.remaining - 1, value: uw.value}
	}
	if err != nil {
		return err
	}
	interp.chain.Pop()
	return nil
}

// invokeConstructor runs the same protocol as invokeFunction, but wraps
// the completed frame as an Object instead of pushing any return value
// (spec §4.5: "Constructor invocation produces an Object wrapping the
// fresh frame, registered under the constructor's class identifier").
func (interp *Interpreter) invokeConstructor(c *value.Constructor, prepend []value.Value) error {
	args, err := interp.popArgs(c.ArgCount - len(prepend))
	if err != nil {
		return err
	}
	full := make([]value.Value, 0, c.ArgCount)
	full = append(full, prepend...)
	full = append(full, args...)
	frame := value.NewNametable()
	for i, a := range full {
		frame.Put(argName(i), a)
	}
	className := c.ClassName
	if className == "" {
		className = "object"
	}
	interp.chain.Push(frame)
	for _, a := range full {
		interp.push(a)
	}
	err = interp.evalList(c.Body)
	if uw, ok := err.(*unwind); ok {
		interp.chain.Pop()
		if uw.remaining > 1 {
			return &unwind{remaining: uw.remaining - 1, value: uw.value}
		}
		interp.push(value.NewObject(value.Identifier(className), frame))
		return nil
	}
	if err != nil {
		return err
	}
	interp.chain.Pop()
	interp.push(value.NewObject(value.Identifier(className), frame))
	return nil
}

// invokeCurried applies a CurriedFunction's already-supplied arguments
// ahead of whatever remains on the stack (spec §3, §9: curry never
// auto-invokes; the result is invoked later, same as any other Callable).
func (interp *Interpreter) invokeCurried(cf *value.CurriedFunction) error {
	switch under := cf.Under.(type) {
	case *value.Function:
		return interp.invokeFunction(under.Body, under.ArgCount, cf.Curried)
	case *value.CodeBlock:
		return interp.invokeFunction(under.Body, 0, cf.Curried)
	case *value.Constructor:
		return interp.invokeConstructor(under, cf.Curried)
	case *value.CurriedFunction:
		return langerr.Typef("curried function cannot curry another curried function directly")
	default:
		return langerr.Typef("cannot invoke curried value of kind %v", cf.Under.Kind())
	}
}
