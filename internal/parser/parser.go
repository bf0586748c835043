// Package parser consumes a token cursor and produces SOF's AST (spec
// §4.3): a single pass, classifying each token by regex and balancing
// nested `{ ... }` code blocks.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jcorbin/sof/internal/ast"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
	"github.com/jcorbin/sof/internal/token"
)

var (
	intPattern       = regexp.MustCompile(`^(?:0[bB][01]+|0[oO][0-7]+|0[dD][0-9]+|0[xX][0-9a-fA-F]+|[0-9]+)$`)
	floatPattern     = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?[eE][+-]?[0-9]+$|^[0-9]+\.[0-9]+$`)
	identPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	primitiveTokens  = map[string]bool{
		"dup": true, "pop": true, "swap": true,
		"+": true, "-": true, "*": true, "/": true, "%": true,
		"<": true, ">": true, "<=": true, ">=": true, "=": true, "/=": true,
		"and": true, "or": true, "xor": true, "not": true,
		"cat": true,
		"convert:int": true, "convert:float": true, "convert:string": true, "convert:bool": true,
		"def": true, "globaldef": true,
		".": true, ",": true, ":": true, ":=": true,
		"return": true, "if": true, "ifelse": true, "while": true,
		"function": true, "constructor": true, "curry": true,
		"describe": true, "describe:full": true, "describe:type": true,
		"writeln": true, "write": true, "assert": true,
		"quote": true,
	}
	returnNPattern = regexp.MustCompile(`^return:[0-9]+$`)
)

// Parse consumes every token cursor produces and returns the root
// TokenList node, or a syntax error citing the offending offset.
func Parse(c *token.Cursor) (*ast.TokenList, error) {
	p := &parser{c: c}
	root, err := p.parseList(false)
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct{ c *token.Cursor }

// parseList drains tokens into a child list. When inBlock is true, it
// stops at (and consumes) a matching "}"; at top level it drains to EOF
// and an unmatched "}" is a syntax error.
func (p *parser) parseList(inBlock bool) (*ast.TokenList, error) {
	startLoc := location.Loc{File: p.c.File(), Index: p.c.Pos()}
	var children []ast.Node

	for {
		if !p.c.HasNext() {
			if inBlock {
				return nil, langerr.Syntaxf(startLoc, "unbalanced '{': missing closing '}'")
			}
			return ast.NewTokenList(startLoc, children), nil
		}

		tok, err := p.c.Next()
		if err != nil {
			return nil, err
		}
		loc := location.Loc{File: p.c.File(), Index: tok.Start}

		switch tok.Text {
		case "quote":
			name, err := p.expectIdentAfterQuote()
			if err != nil {
				return nil, err
			}
			children = append(children, ast.NewLiteral(loc, ast.IdentValue(name)))
			continue

		case "{":
			blockStart := tok.Start
			body, err := p.parseList(true)
			if err != nil {
				return nil, err
			}
			blockEnd := p.c.Pos()
			children = append(children, ast.NewBlock(loc, body, blockStart, blockEnd))
			continue

		case "}":
			if !inBlock {
				return nil, langerr.Syntaxf(loc, "unbalanced '}': no matching '{'")
			}
			return ast.NewTokenList(startLoc, children), nil
		}

		node, err := p.classify(loc, tok.Text)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
}

// expectIdentAfterQuote consumes the token immediately following a
// `quote` primitive, which must be an identifier; returns its text.
func (p *parser) expectIdentAfterQuote() (string, error) {
	if !p.c.HasNext() {
		return "", langerr.Syntaxf(location.Loc{File: p.c.File(), Index: p.c.Pos()}, "quote: expected an identifier, found end of input")
	}
	tok, err := p.c.Next()
	if err != nil {
		return "", err
	}
	if !identPattern.MatchString(tok.Text) || primitiveTokens[tok.Text] || tok.Text == "true" || tok.Text == "false" {
		return "", langerr.Syntaxf(location.Loc{File: p.c.File(), Index: tok.Start}, "quote: expected an identifier, found %q", tok.Text)
	}
	return tok.Text, nil
}

// classify turns one already-segmented token's text into the right node
// kind, per spec §4.3 step 3.
func (p *parser) classify(loc location.Loc, text string) (ast.Node, error) {
	switch {
	case text == "true":
		return ast.NewLiteral(loc, true), nil
	case text == "false":
		return ast.NewLiteral(loc, false), nil

	case strings.HasPrefix(text, `"`):
		s, err := unquote(text)
		if err != nil {
			return nil, langerr.Syntaxf(loc, "%v", err)
		}
		return ast.NewLiteral(loc, s), nil

	case floatPattern.MatchString(text):
		f, err := strconv.ParseFloat(normalizeFloat(text), 64)
		if err != nil {
			return nil, langerr.Syntaxf(loc, "invalid float literal %q", text)
		}
		return ast.NewLiteral(loc, f), nil

	case intPattern.MatchString(text):
		n, err := parseInt(text)
		if err != nil {
			if le, ok := err.(*langerr.Error); ok {
				return nil, le.At(loc)
			}
			return nil, langerr.Syntaxf(loc, "%v", err)
		}
		return ast.NewLiteral(loc, n), nil

	case primitiveTokens[text] || returnNPattern.MatchString(text):
		return ast.NewPrimitive(loc, text), nil

	case identPattern.MatchString(text):
		return ast.NewAtom(loc, text), nil

	default:
		return nil, langerr.Syntaxf(loc, "unrecognized token %q", text)
	}
}

// normalizeFloat is a no-op placeholder kept symmetric with parseInt: Go's
// strconv.ParseFloat already accepts the literal forms our float pattern
// matches directly.
func normalizeFloat(text string) string { return text }

// parseInt parses an integer literal in any of the documented bases,
// raising a math error (not silently wrapping) when the magnitude
// exceeds 64-bit signed range (spec §3 invariant).
func parseInt(text string) (int64, error) {
	base := 10
	digits := text
	switch {
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base, digits = 2, text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		base, digits = 8, text[2:]
	case strings.HasPrefix(text, "0d") || strings.HasPrefix(text, "0D"):
		base, digits = 10, text[2:]
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base, digits = 16, text[2:]
	}
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, langerr.Mathf("integer literal %q out of 64-bit signed range", text)
	}
	return n, nil
}

// unquote decodes a double-quoted, backslash-escaped string literal's
// text (including the surrounding quotes) into its value.
func unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", stringLitError("malformed string literal")
	}
	body := text[1 : len(text)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", stringLitError("dangling escape in string literal")
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			return "", stringLitError("invalid escape \\" + string(body[i]))
		}
	}
	return sb.String(), nil
}

type stringLitError string

func (e stringLitError) Error() string { return string(e) }
