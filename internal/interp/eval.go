package interp

import (
	"context"
	"fmt"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
	"github.com/jcorbin/sof/internal/panicerr"
	"github.com/jcorbin/sof/internal/value"
)

// RunSource preprocesses, tokenizes, parses, and evaluates src as a
// top-level program against this interpreter's current stack and scope
// chain (spec §4.2-§4.5's pipeline, run end to end). Evaluation runs in
// an isolated goroutine (internal/panicerr), matching the teacher's
// isolate() convention: a host-implementation bug that panics surfaces
// as an ordinary error rather than taking the whole process down.
func (interp *Interpreter) RunSource(ctx context.Context, file, src string) error {
	list, err := parseSource(file, src)
	if err != nil {
		return err
	}
	return interp.RunList(ctx, file, list)
}

// RunSourceNoPreprocess parses src directly, skipping the preprocessor
// pass (spec §6's `-P` CLI flag: "skip preprocess"). Comments and line
// continuations are only recognized by the preprocessor, so src must
// already be in the tokenizer's canonical form.
func (interp *Interpreter) RunSourceNoPreprocess(ctx context.Context, file, src string) error {
	list, err := parseTokens(file, src)
	if err != nil {
		return err
	}
	return interp.RunList(ctx, file, list)
}

// RunList evaluates an already-parsed token-list node against this
// interpreter's current stack and scope chain, the same way RunSource
// does once parsing is out of the way. This is what lets a caller (e.g.
// internal/builtin's preamble installer) parse once and memoize the AST,
// then run it fresh against every new Interpreter instance (spec §9).
func (interp *Interpreter) RunList(ctx context.Context, file string, list *ast.TokenList) error {
	interp.ctx = ctx
	defer interp.out.Flush()
	return panicerr.Recover(file, func() error {
		return interp.evalList(list)
	})
}

// evalList runs each child of list in order, checking the run context
// before every step (nested code-block bodies included) the way the
// teacher's exec loop checks ctx.Err() each step (internals.go), and
// completing any error that reaches here without a location with the
// location of the child node that raised it.
func (interp *Interpreter) evalList(list *ast.TokenList) error {
	for _, child := range list.Children {
		if interp.ctx != nil {
			if err := interp.ctx.Err(); err != nil {
				return err
			}
		}
		if err := interp.evalNode(child); err != nil {
			return interp.completeAt(err, child.Loc())
		}
	}
	return nil
}

// completeAt fills in an incomplete langerr.Error's location with loc,
// leaving any already-complete error (an inner frame saw it first) and
// any non-langerr error (unwind, context cancellation) untouched (spec
// §4.6: errors complete at the innermost frame that observes them).
func (interp *Interpreter) completeAt(err error, loc location.Loc) error {
	if le, ok := err.(*langerr.Error); ok {
		return le.At(loc)
	}
	return err
}

func (interp *Interpreter) evalNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Literal:
		return interp.pushLiteral(n)
	case *ast.Atom:
		return interp.evalAtom(n)
	case *ast.Primitive:
		return interp.evalPrimitive(n)
	case *ast.Block:
		interp.push(&value.CodeBlock{
			Body:        n.Body,
			File:        n.Loc().File,
			SourceStart: n.SourceStart,
			SourceEnd:   n.SourceEnd,
		})
		return nil
	default:
		panic(fmt.Sprintf("interp: unknown ast node type %T", node))
	}
}

func (interp *Interpreter) pushLiteral(n *ast.Literal) error {
	switch v := n.Value.(type) {
	case int64:
		interp.push(value.Integer(v))
	case float64:
		interp.push(value.Float(v))
	case bool:
		interp.push(value.Boolean(v))
	case string:
		interp.push(value.String(v))
	case ast.IdentValue:
		interp.push(value.Identifier(v))
	default:
		panic(fmt.Sprintf("interp: unknown literal value type %T", v))
	}
	return nil
}

// evalAtom resolves a bare identifier (spec §9): a native registered
// under that name is called immediately, same as a primitive token;
// otherwise a bound name's value is pushed (never auto-invoked -- only
// `.`, or a control-flow primitive's internal invocation, calls a
// Callable); an unbound name is not an error here, it pushes itself as
// an Identifier value, which is what lets a not-yet-defined word appear
// as the identifier operand of `def`/`globaldef`/`,`/`:`/`:=`.
func (interp *Interpreter) evalAtom(n *ast.Atom) error {
	if nat, ok := interp.natives[n.Name]; ok {
		return interp.callNative(nat)
	}
	v, ok := interp.chain.Lookup(value.Identifier(n.Name))
	if !ok {
		interp.push(value.Identifier(n.Name))
		return nil
	}
	interp.push(v.Copy())
	return nil
}
