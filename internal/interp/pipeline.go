package interp

import (
	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/parser"
	"github.com/jcorbin/sof/internal/preprocess"
	"github.com/jcorbin/sof/internal/token"
)

// parseSource runs the full front end (spec §4.1-§4.3) over src, tagged
// as file for error reporting.
func parseSource(file, src string) (*ast.TokenList, error) {
	clean, err := preprocess.Run(file, src)
	if err != nil {
		return nil, err
	}
	return parseTokens(file, clean)
}

// parseTokens tokenizes and parses already-clean source, skipping the
// preprocessor pass -- what the CLI's `-P` flag (spec §6) asks for.
func parseTokens(file, src string) (*ast.TokenList, error) {
	c := token.New(file, src)
	return parser.Parse(c)
}
