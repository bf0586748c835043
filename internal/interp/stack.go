package interp

import (
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/value"
)

// push puts v on top of the shared operand stack.
func (interp *Interpreter) push(v value.Value) { interp.stack = append(interp.stack, v) }

// pop removes and returns the top of the operand stack, raising an
// incomplete stack error on underflow (spec §4.4).
func (interp *Interpreter) pop() (value.Value, error) {
	n := len(interp.stack)
	if n == 0 {
		return nil, langerr.Stackf("stack underflow")
	}
	v := interp.stack[n-1]
	interp.stack = interp.stack[:n-1]
	return v, nil
}

// peek returns the top of the operand stack without removing it.
func (interp *Interpreter) peek() (value.Value, error) {
	n := len(interp.stack)
	if n == 0 {
		return nil, langerr.Stackf("stack underflow")
	}
	return interp.stack[n-1], nil
}

// popArgs pops n values off the stack and returns them in left-to-right
// argument order (arg0 is the deepest of the n, argN-1 was on top), per
// the call protocol's "top of stack is the last argument" convention
// (spec §4.5).
func (interp *Interpreter) popArgs(n int) ([]value.Value, error) {
	if n < 0 {
		n = 0
	}
	if len(interp.stack) < n {
		return nil, langerr.Stackf("stack underflow: need %d argument(s), have %d", n, len(interp.stack))
	}
	args := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		top := len(interp.stack) - 1
		args[i] = interp.stack[top]
		interp.stack = interp.stack[:top]
	}
	return args, nil
}

// Depth reports the operand stack's current size, e.g. for trace logging.
func (interp *Interpreter) Depth() int { return len(interp.stack) }
