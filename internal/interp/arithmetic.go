package interp

import (
	"math"

	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/value"
)

// toFloat widens an Integer or Float to float64; ok is false for any
// other kind.
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

// numericBinary implements `+ - * /  %`, promoting to Float whenever
// either operand isn't an Integer (spec §6: "mixed Integer/Float
// arithmetic promotes to Float; division and modulo by zero raise
// math").
func numericBinary(tok string, a, b value.Value) (value.Value, error) {
	if ai, ok := a.(value.Integer); ok {
		if bi, ok := b.(value.Integer); ok {
			return integerOp(tok, int64(ai), int64(bi))
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, langerr.Typef("%v requires numeric operands, got %v and %v", tok, a.Kind(), b.Kind())
	}
	return floatOp(tok, af, bf)
}

func integerOp(tok string, a, b int64) (value.Value, error) {
	switch tok {
	case "+":
		return value.Integer(a + b), nil
	case "-":
		return value.Integer(a - b), nil
	case "*":
		return value.Integer(a * b), nil
	case "/":
		if b == 0 {
			return nil, langerr.Mathf("division by zero")
		}
		return value.Integer(a / b), nil
	case "%":
		if b == 0 {
			return nil, langerr.Mathf("modulo by zero")
		}
		return value.Integer(a % b), nil
	default:
		return nil, langerr.Typef("unknown arithmetic operator %q", tok)
	}
}

func floatOp(tok string, a, b float64) (value.Value, error) {
	switch tok {
	case "+":
		return value.Float(a + b), nil
	case "-":
		return value.Float(a - b), nil
	case "*":
		return value.Float(a * b), nil
	case "/":
		if b == 0 {
			return nil, langerr.Mathf("division by zero")
		}
		return value.Float(a / b), nil
	case "%":
		if b == 0 {
			return nil, langerr.Mathf("modulo by zero")
		}
		return value.Float(math.Mod(a, b)), nil
	default:
		return nil, langerr.Typef("unknown arithmetic operator %q", tok)
	}
}

// convertValue implements `convert:int|float|string|bool` (spec §6):
// lossy conversions between the four scalar kinds, raising math on a
// malformed numeric string rather than silently producing zero.
func convertValue(target string, v value.Value) (value.Value, error) {
	switch target {
	case "int":
		switch n := v.(type) {
		case value.Integer:
			return n, nil
		case value.Float:
			return value.Integer(int64(n)), nil
		case value.Boolean:
			if n {
				return value.Integer(1), nil
			}
			return value.Integer(0), nil
		case value.String:
			i, err := parseConvertInt(string(n))
			if err != nil {
				return nil, err
			}
			return value.Integer(i), nil
		}
	case "float":
		switch n := v.(type) {
		case value.Float:
			return n, nil
		case value.Integer:
			return value.Float(float64(n)), nil
		case value.Boolean:
			if n {
				return value.Float(1), nil
			}
			return value.Float(0), nil
		case value.String:
			f, err := parseConvertFloat(string(n))
			if err != nil {
				return nil, err
			}
			return value.Float(f), nil
		}
	case "string":
		return value.String(v.Print()), nil
	case "bool":
		switch n := v.(type) {
		case value.Boolean:
			return n, nil
		case value.Integer:
			return value.Boolean(n != 0), nil
		case value.Float:
			return value.Boolean(n != 0), nil
		case value.String:
			switch string(n) {
			case "true":
				return value.Boolean(true), nil
			case "false":
				return value.Boolean(false), nil
			default:
				return nil, langerr.Mathf("cannot convert %q to bool", string(n))
			}
		}
	default:
		return nil, langerr.Typef("unknown conversion target %q", target)
	}
	return nil, langerr.Typef("cannot convert %v to %v", v.Kind(), target)
}
