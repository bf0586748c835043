// Package builtin supplies the standard-library layer named but left
// external by spec §1 ("the standard-library / builtin function bodies
// written in the host language") and §4.5 (the native-builtin registry)
// and §9 (the embedded preamble). It owns two things: a small registry of
// host-implemented natives for operations no primitive token covers
// (transcendental math, string case conversion), and a bundled SOF source
// file, the preamble, that defines everything else in terms of ordinary
// primitive tokens, the way the teacher's `third.go` builds THIRD's
// higher-level vocabulary out of FIRST's small primitive core.
package builtin

import (
	"math"
	"strings"

	"github.com/jcorbin/sof/internal/interp"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/value"
)

// Natives returns the host-implemented builtin registry (spec §4.5 item
// 5): operations that cannot be expressed as a primitive-token sequence
// because they need a host math/string library function underneath them.
// Everything expressible purely in terms of the primitive tokens belongs
// in the preamble instead (see preamble.go), not here.
func Natives() []interp.Native {
	return []interp.Native{
		unaryFloat("sqrt", math.Sqrt),
		unaryFloat("floor", math.Floor),
		unaryFloat("ceil", math.Ceil),
		{
			Name:     "pow",
			ArgCount: 2,
			Fn: func(args []value.Value) (value.Value, error) {
				base, ok := toFloat(args[0])
				if !ok {
					return nil, langerr.Typef("pow: argument 0 is not numeric")
				}
				exp, ok := toFloat(args[1])
				if !ok {
					return nil, langerr.Typef("pow: argument 1 is not numeric")
				}
				return value.Float(math.Pow(base, exp)), nil
			},
		},
		{
			Name:     "strlen",
			ArgCount: 1,
			Fn: func(args []value.Value) (value.Value, error) {
				s, ok := args[0].(value.String)
				if !ok {
					return nil, langerr.Typef("strlen: argument is not a string")
				}
				return value.Integer(len(string(s))), nil
			},
		},
		{
			Name:     "upper",
			ArgCount: 1,
			Fn: func(args []value.Value) (value.Value, error) {
				return caseConvert(args[0], strings.ToUpper)
			},
		},
		{
			Name:     "lower",
			ArgCount: 1,
			Fn: func(args []value.Value) (value.Value, error) {
				return caseConvert(args[0], strings.ToLower)
			},
		},
	}
}

// unaryFloat builds a one-argument native around a math.* function,
// widening an Integer argument the same way the interpreter's own
// arithmetic primitives do (internal/interp's numericBinary).
func unaryFloat(name string, fn func(float64) float64) interp.Native {
	return interp.Native{
		Name:     name,
		ArgCount: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			f, ok := toFloat(args[0])
			if !ok {
				return nil, langerr.Typef("%v: argument is not numeric", name)
			}
			return value.Float(fn(f)), nil
		},
	}
}

// toFloat widens Integer or Float to float64; any other kind fails.
func toFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func caseConvert(v value.Value, fn func(string) string) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, langerr.Typef("expected a string argument")
	}
	return value.String(fn(string(s))), nil
}
