package interp

import (
	"strconv"
	"strings"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/value"
)

// evalPrimitive dispatches one of spec §6's fixed primitive tokens.
func (interp *Interpreter) evalPrimitive(n *ast.Primitive) error {
	tok := n.Token
	switch {
	case tok == "dup":
		v, err := interp.peek()
		if err != nil {
			return err
		}
		interp.push(v.Copy())
		return nil

	case tok == "pop":
		_, err := interp.pop()
		return err

	case tok == "swap":
		b, err := interp.pop()
		if err != nil {
			return err
		}
		a, err := interp.pop()
		if err != nil {
			return err
		}
		interp.push(b)
		interp.push(a)
		return nil

	case tok == "+" || tok == "-" || tok == "*" || tok == "/" || tok == "%":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		result, err := numericBinary(tok, a, b)
		if err != nil {
			return err
		}
		interp.push(result)
		return nil

	case tok == "<" || tok == ">" || tok == "<=" || tok == ">=":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		cmp, err := a.Compare(b)
		if err != nil {
			return err
		}
		interp.push(value.Boolean(compareMatches(tok, cmp)))
		return nil

	case tok == "=":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		interp.push(value.Boolean(a.Equals(b)))
		return nil

	case tok == "/=":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		interp.push(value.Boolean(!a.Equals(b)))
		return nil

	case tok == "and" || tok == "or" || tok == "xor":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		ab, ok := a.(value.Boolean)
		if !ok {
			return langerr.Typef("%v requires boolean operands, got %v", tok, a.Kind())
		}
		bb, ok := b.(value.Boolean)
		if !ok {
			return langerr.Typef("%v requires boolean operands, got %v", tok, b.Kind())
		}
		interp.push(value.Boolean(boolOp(tok, bool(ab), bool(bb))))
		return nil

	case tok == "not":
		v, err := interp.pop()
		if err != nil {
			return err
		}
		bv, ok := v.(value.Boolean)
		if !ok {
			return langerr.Typef("not requires a boolean operand, got %v", v.Kind())
		}
		interp.push(value.Boolean(!bv))
		return nil

	case tok == "cat":
		a, b, err := interp.popBinary()
		if err != nil {
			return err
		}
		as, ok := a.(value.String)
		if !ok {
			return langerr.Typef("cat requires string operands, got %v", a.Kind())
		}
		bs, ok := b.(value.String)
		if !ok {
			return langerr.Typef("cat requires string operands, got %v", b.Kind())
		}
		interp.push(value.String(string(as) + string(bs)))
		return nil

	case strings.HasPrefix(tok, "convert:"):
		v, err := interp.pop()
		if err != nil {
			return err
		}
		out, err := convertValue(strings.TrimPrefix(tok, "convert:"), v)
		if err != nil {
			return err
		}
		interp.push(out)
		return nil

	case tok == "def":
		return interp.evalDefine(false)
	case tok == "globaldef":
		return interp.evalDefine(true)

	case tok == ",":
		return interp.evalAlias()

	case tok == ".":
		v, err := interp.pop()
		if err != nil {
			return err
		}
		return interp.invokeValue(v)

	case tok == ":":
		return interp.evalFieldRead()
	case tok == ":=":
		return interp.evalFieldWrite()

	case tok == "return":
		return interp.evalReturnN("return:1")

	case strings.HasPrefix(tok, "return:"):
		return interp.evalReturnN(tok)

	case tok == "if":
		return interp.evalIf()
	case tok == "ifelse":
		return interp.evalIfElse()
	case tok == "while":
		return interp.evalWhile()

	case tok == "function":
		return interp.evalFunction(false)
	case tok == "constructor":
		return interp.evalFunction(true)

	case tok == "curry":
		return interp.evalCurry()

	case tok == "describe" || tok == "describe:full" || tok == "describe:type":
		v, err := interp.peek()
		if err != nil {
			return err
		}
		interp.push(value.String(v.DebugString(describeLevel(tok))))
		return nil

	case tok == "writeln":
		v, err := interp.pop()
		if err != nil {
			return err
		}
		interp.logf("io", "writeln %v", v.Print())
		_, err = interp.out.Write([]byte(v.Print() + "\n"))
		if err != nil {
			return langerr.IOf("write failed: %v", err)
		}
		return nil

	case tok == "write":
		v, err := interp.pop()
		if err != nil {
			return err
		}
		_, err = interp.out.Write([]byte(v.Print()))
		if err != nil {
			return langerr.IOf("write failed: %v", err)
		}
		return nil

	case tok == "assert":
		v, err := interp.pop()
		if err != nil {
			return err
		}
		interp.assertCount++
		bv, ok := v.(value.Boolean)
		if !ok {
			return langerr.Typef("assert requires a boolean operand, got %v", v.Kind())
		}
		if !bv {
			return langerr.Assertf("assertion failed")
		}
		return nil

	default:
		return langerr.Typef("unrecognized primitive token %q", tok)
	}
}

func (interp *Interpreter) popBinary() (a, b value.Value, err error) {
	b, err = interp.pop()
	if err != nil {
		return nil, nil, err
	}
	a, err = interp.pop()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func compareMatches(tok string, cmp int) bool {
	switch tok {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

// describeLevel maps a `describe`/`describe:full`/`describe:type` token to
// its value.Extensiveness, mirroring the `convert:*` token family's
// suffix-selects-variant convention: plain `describe` keeps the original
// one-line rendering, the suffixed forms reach the otherwise write-only
// Full and Type levels.
func describeLevel(tok string) value.Extensiveness {
	switch tok {
	case "describe:full":
		return value.Full
	case "describe:type":
		return value.Type
	default:
		return value.Compact
	}
}

func boolOp(tok string, a, b bool) bool {
	switch tok {
	case "and":
		return a && b
	case "or":
		return a || b
	case "xor":
		return a != b
	default:
		return false
	}
}

// nameOnDefine gives an as-yet-unnamed Function/Constructor the
// identifier it's first bound to, best-effort, purely for
// describe/stack-trace rendering (spec §9: Name/ClassName "may be
// empty").
func nameOnDefine(id value.Identifier, v value.Value) {
	switch fn := v.(type) {
	case *value.Constructor:
		if fn.ClassName == "" {
			fn.ClassName = string(id)
		}
	case *value.Function:
		if fn.Name == "" {
			fn.Name = string(id)
		}
	}
}

func popIdentifier(interp *Interpreter) (value.Identifier, error) {
	v, err := interp.pop()
	if err != nil {
		return "", err
	}
	id, ok := v.(value.Identifier)
	if !ok {
		return "", langerr.Typef("expected an identifier, got %v", v.Kind())
	}
	return id, nil
}

func (interp *Interpreter) evalDefine(global bool) error {
	id, err := popIdentifier(interp)
	if err != nil {
		return err
	}
	v, err := interp.pop()
	if err != nil {
		return err
	}
	nameOnDefine(id, v)
	if global {
		interp.chain.GlobalDefine(id, v)
	} else {
		interp.chain.Define(id, v)
	}
	return nil
}

// evalAlias implements `,` (spec §6): binds a Callable to a name, like
// def but restricted to Callable values and with the Callable on top of
// the stack and the Identifier beneath it.
func (interp *Interpreter) evalAlias() error {
	v, err := interp.pop()
	if err != nil {
		return err
	}
	id, err := popIdentifier(interp)
	if err != nil {
		return err
	}
	if _, ok := v.(value.Callable); !ok {
		return langerr.Typef(", requires a callable value, got %v", v.Kind())
	}
	nameOnDefine(id, v)
	interp.chain.Define(id, v)
	return nil
}

func (interp *Interpreter) evalFieldRead() error {
	id, err := popIdentifier(interp)
	if err != nil {
		return err
	}
	ov, err := interp.pop()
	if err != nil {
		return err
	}
	obj, ok := ov.(*value.Object)
	if !ok {
		return langerr.Typef(": requires an object operand, got %v", ov.Kind())
	}
	v, ok := obj.Field(id)
	if !ok {
		return langerr.Namef("object %v has no field %q", string(obj.Class), string(id))
	}
	interp.push(v)
	return nil
}

func (interp *Interpreter) evalFieldWrite() error {
	id, err := popIdentifier(interp)
	if err != nil {
		return err
	}
	v, err := interp.pop()
	if err != nil {
		return err
	}
	ov, err := interp.pop()
	if err != nil {
		return err
	}
	obj, ok := ov.(*value.Object)
	if !ok {
		return langerr.Typef(":= requires an object operand, got %v", ov.Kind())
	}
	obj.SetField(id, v)
	return nil
}

func (interp *Interpreter) evalReturnN(tok string) error {
	n, err := strconv.Atoi(strings.TrimPrefix(tok, "return:"))
	if err != nil || n < 1 {
		return langerr.New(langerr.Syntax, "malformed return:n token %q", tok)
	}
	unwindable := interp.chain.Depth() - 1
	if n > unwindable {
		return langerr.Stackf("return:%d would unwind past the global frame", n)
	}
	v, err := interp.pop()
	if err != nil {
		return err
	}
	return &unwind{remaining: n, value: v}
}

func (interp *Interpreter) evalIf() error {
	blockv, err := interp.pop()
	if err != nil {
		return err
	}
	condv, err := interp.pop()
	if err != nil {
		return err
	}
	cond, ok := condv.(value.Boolean)
	if !ok {
		return langerr.Typef("if requires a boolean condition, got %v", condv.Kind())
	}
	block, ok := blockv.(value.Callable)
	if !ok {
		return langerr.Typef("if requires a callable block, got %v", blockv.Kind())
	}
	if bool(cond) {
		return interp.invoke(block)
	}
	return nil
}

func (interp *Interpreter) evalIfElse() error {
	elsev, err := interp.pop()
	if err != nil {
		return err
	}
	thenv, err := interp.pop()
	if err != nil {
		return err
	}
	condv, err := interp.pop()
	if err != nil {
		return err
	}
	cond, ok := condv.(value.Boolean)
	if !ok {
		return langerr.Typef("ifelse requires a boolean condition, got %v", condv.Kind())
	}
	thenC, ok := thenv.(value.Callable)
	if !ok {
		return langerr.Typef("ifelse requires callable branches, got %v", thenv.Kind())
	}
	elseC, ok := elsev.(value.Callable)
	if !ok {
		return langerr.Typef("ifelse requires callable branches, got %v", elsev.Kind())
	}
	if bool(cond) {
		return interp.invoke(thenC)
	}
	return interp.invoke(elseC)
}

func (interp *Interpreter) evalWhile() error {
	bodyv, err := interp.pop()
	if err != nil {
		return err
	}
	condv, err := interp.pop()
	if err != nil {
		return err
	}
	condC, ok := condv.(value.Callable)
	if !ok {
		return langerr.Typef("while requires a callable condition, got %v", condv.Kind())
	}
	bodyC, ok := bodyv.(value.Callable)
	if !ok {
		return langerr.Typef("while requires a callable body, got %v", bodyv.Kind())
	}
	for {
		if err := interp.invoke(condC); err != nil {
			return err
		}
		cv, err := interp.pop()
		if err != nil {
			return err
		}
		cond, ok := cv.(value.Boolean)
		if !ok {
			return langerr.Typef("while condition must leave a boolean, got %v", cv.Kind())
		}
		if !bool(cond) {
			return nil
		}
		if err := interp.invoke(bodyC); err != nil {
			return err
		}
	}
}

// evalFunction implements `function`/`constructor` (spec §6). Per the
// bundled example `{ dup * } 1 function square def`, the argument count
// is written last and so sits on top of the stack at this point, with
// the code block body beneath it.
func (interp *Interpreter) evalFunction(constructor bool) error {
	argcv, err := interp.pop()
	if err != nil {
		return err
	}
	bodyv, err := interp.pop()
	if err != nil {
		return err
	}
	cb, ok := bodyv.(*value.CodeBlock)
	if !ok {
		return langerr.Typef("function/constructor requires a code block body, got %v", bodyv.Kind())
	}
	argc, ok := argcv.(value.Integer)
	if !ok {
		return langerr.Typef("function/constructor requires an integer argument count, got %v", argcv.Kind())
	}
	if argc < 0 {
		return langerr.Mathf("argument count cannot be negative, got %d", int64(argc))
	}
	base := value.Function{
		Body:        cb.Body,
		ArgCount:    int(argc),
		Global:      interp.chain.Global(),
		File:        cb.File,
		SourceStart: cb.SourceStart,
		SourceEnd:   cb.SourceEnd,
	}
	if constructor {
		interp.push(&value.Constructor{Function: base})
	} else {
		interp.push(&base)
	}
	return nil
}

// evalCurry implements `curry` (spec §6). Per the bundled example
// `3 sq curry`, the value being curried in is written first and the
// callable second, so the callable sits on top of the stack here.
func (interp *Interpreter) evalCurry() error {
	fnv, err := interp.pop()
	if err != nil {
		return err
	}
	argv, err := interp.pop()
	if err != nil {
		return err
	}
	callable, ok := fnv.(value.Callable)
	if !ok {
		return langerr.Typef("curry requires a callable operand, got %v", fnv.Kind())
	}
	if callable.Arity() <= 0 {
		return langerr.Typef("cannot curry a value of arity %d", callable.Arity())
	}
	if cf, ok := callable.(*value.CurriedFunction); ok {
		curried := make([]value.Value, 0, len(cf.Curried)+1)
		curried = append(curried, cf.Curried...)
		curried = append(curried, argv)
		interp.push(&value.CurriedFunction{Under: cf.Under, Curried: curried})
		return nil
	}
	interp.push(&value.CurriedFunction{Under: callable, Curried: []value.Value{argv}})
	return nil
}
