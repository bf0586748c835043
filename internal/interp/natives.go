package interp

import "github.com/jcorbin/sof/internal/value"

// NativeFunc is a host-language function body, given the already-popped
// argument vector in left-to-right order.
type NativeFunc func(args []value.Value) (value.Value, error)

// Native is a registered builtin (spec §4.5 item 5, §6): the Value model
// has no variant for it (spec §3's table is closed), so a native is
// dispatched by name lookup against this registry rather than ever
// appearing as a stack value. It behaves like an extra primitive token:
// naming it in call position invokes it immediately, with no frame
// pushed onto the scope chain.
type Native struct {
	Name     string
	ArgCount int
	Fn       NativeFunc
}

// callNative pops its declared argument count, runs Fn, and pushes the
// result if any (a native may return a nil Value to mean "nothing
// pushed", e.g. a pure side-effecting native).
func (interp *Interpreter) callNative(nat Native) error {
	args, err := interp.popArgs(nat.ArgCount)
	if err != nil {
		return err
	}
	v, err := nat.Fn(args)
	if err != nil {
		return err
	}
	if v != nil {
		interp.push(v)
	}
	return nil
}
