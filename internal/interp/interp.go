// Package interp implements SOF's tree-walking interpreter (spec §4.5):
// it walks a parsed token-list AST against a shared operand stack and a
// chain of named scopes, dispatching primitive tokens, invoking native
// builtins, and running the call protocol for user-defined functions,
// curried functions, and constructors.
package interp

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/jcorbin/sof/internal/flushio"
	"github.com/jcorbin/sof/internal/value"
)

// Logf is a printf-style logging function, matching the teacher's
// leveled-logging convention (internal/logio).
type Logf func(mess string, args ...interface{})

// logging is carried from the teacher's core.go: a no-op logger unless a
// Logf is wired in via WithTracef.
type logging struct {
	logfn Logf
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		log.logfn(mark+" "+mess, args...)
	} else {
		log.logfn(mark + " " + mess)
	}
}

// Interpreter holds all state named by spec §4.5: the operand stack, the
// scope chain, the assert counter, the I/O collaborator, and the native
// builtin registry.
type Interpreter struct {
	logging

	stack []value.Value
	chain *value.Chain

	natives map[string]Native

	assertCount int

	out flushio.WriteFlusher
	in  io.Reader

	ctx context.Context
}

// Option configures an Interpreter at construction, following the
// teacher's functional-option pattern (options.go/api.go).
type Option interface{ apply(*Interpreter) }

type optionFunc func(*Interpreter)

func (f optionFunc) apply(interp *Interpreter) { f(interp) }

// WithOutput sets the writer `writeln`/`write` render to, wrapped in a
// flushio.WriteFlusher the way the teacher's VMOption/apply wires `vm.out`
// (api.go/options.go) -- unbuffered writers (e.g. an in-memory buffer)
// pass through untouched, anything else gets a flushing bufio.Writer so
// RunList's deferred Flush (eval.go) guarantees output lands even if the
// underlying writer buffers.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(i *Interpreter) { i.out = flushio.NewWriteFlusher(w) })
}

// WithOutputs tees `writeln`/`write` output to every writer given, combining
// them into one flushio.WriteFlusher via flushio.WriteFlushers -- e.g. the
// CLI's `-d` flag uses this to echo program output alongside the trace log
// instead of routing it to stdout alone.
func WithOutputs(ws ...io.Writer) Option {
	return optionFunc(func(i *Interpreter) {
		wfs := make([]flushio.WriteFlusher, len(ws))
		for j, w := range ws {
			wfs[j] = flushio.NewWriteFlusher(w)
		}
		i.out = flushio.WriteFlushers(wfs...)
	})
}

// WithInput sets the reader any future interactive-input native would
// read from. The core spec defines no such primitive; this exists so a
// host (or a native registered by the CLI) has somewhere to plug one in.
func WithInput(r io.Reader) Option { return optionFunc(func(i *Interpreter) { i.in = r }) }

// WithTracef wires a leveled logging function into the interpreter,
// mirroring the teacher's WithLogf (options.go) for a `-d`/debug flag.
func WithTracef(logf Logf) Option { return optionFunc(func(i *Interpreter) { i.logfn = logf }) }

// New constructs an Interpreter with a fresh operand stack and a scope
// chain seeded with one global frame (spec §3: never empty).
func New(opts ...Option) *Interpreter {
	interp := &Interpreter{
		chain:   value.NewChain(),
		natives: make(map[string]Native),
		out:     flushio.NewWriteFlusher(ioutil.Discard),
		in:      nil,
	}
	for _, opt := range opts {
		opt.apply(interp)
	}
	return interp
}

// Chain exposes the interpreter's scope chain, e.g. so a builtin
// registration package can install a preamble's globals.
func (interp *Interpreter) Chain() *value.Chain { return interp.chain }

// AssertCount reports how many `assert` primitives have run so far
// (spec §4.5: "Assert counter (for diagnostics)").
func (interp *Interpreter) AssertCount() int { return interp.assertCount }

// RegisterNative installs a native builtin (spec §4.5/§6: the host-
// language function registry; bodies are an external collaborator, only
// the registration mechanism and calling convention are specified here).
func (interp *Interpreter) RegisterNative(n Native) { interp.natives[n.Name] = n }
