package builtin

import (
	"context"
	_ "embed"
	"sync"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/interp"
	"github.com/jcorbin/sof/internal/parser"
	"github.com/jcorbin/sof/internal/preprocess"
	"github.com/jcorbin/sof/internal/token"
)

//go:embed preamble.sof
var preambleSource string

// PreambleFile is the synthetic file tag the preamble's errors and code
// blocks carry (spec §3: "file_tag identifies the origin... or synthetic
// tag like <preamble>").
const PreambleFile = "<preamble>"

var (
	preambleOnce sync.Once
	preambleAST  *ast.TokenList
	preambleErr  error
)

// Preamble parses the embedded preamble source on first use and memoizes
// the result behind a sync.Once (spec §9: "guard the memoization with a
// one-time initializer"), so every fresh interpreter instance runs the
// same already-parsed AST instead of re-parsing the source each time.
func Preamble() (*ast.TokenList, error) {
	preambleOnce.Do(func() {
		clean, err := preprocess.Run(PreambleFile, preambleSource)
		if err != nil {
			preambleErr = err
			return
		}
		c := token.New(PreambleFile, clean)
		preambleAST, preambleErr = parser.Parse(c)
	})
	return preambleAST, preambleErr
}

// Install registers the native builtin layer and runs the memoized
// preamble against in, the way a fresh VM in the teacher's main.go loads
// `third.go`'s kernel before handing control to user source.
func Install(ctx context.Context, in *interp.Interpreter) error {
	for _, n := range Natives() {
		in.RegisterNative(n)
	}
	list, err := Preamble()
	if err != nil {
		return err
	}
	return in.RunList(ctx, PreambleFile, list)
}
