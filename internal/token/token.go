// Package token implements SOF's lazy tokenizer (spec §4.2): a single
// master regex scans cleaned source into (text, start_index) pairs, with
// a push/pop state stack so a caller can carve out nested regions without
// losing its place.
package token

import (
	"regexp"

	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
)

// Token is a single lexeme and the byte offset it started at.
type Token struct {
	Text  string
	Start int
}

// masterPattern matches any single valid SOF token. Alternatives are
// ordered so that longer/more specific forms win over shorter ones
// (floats before ints, two-char operators before one-char prefixes).
var masterPattern = regexp.MustCompile(
	`^(?:` +
		`0[bB][01]+` + // binary integer
		`|0[oO][0-7]+` + // octal integer
		`|0[dD][0-9]+` + // explicit decimal integer
		`|0[xX][0-9a-fA-F]+` + // hex integer
		`|[0-9]+\.[0-9]+(?:[eE][+-]?[0-9]+)?` + // float
		`|[0-9]+[eE][+-]?[0-9]+` + // float without fraction digits
		`|[0-9]+` + // decimal integer
		`|"(?:\\.|[^"\\])*"` + // string literal
		`|true|false` + // boolean literal
		`|return:[0-9]+` + // return:n primitive, tried before the bare identifier form
		`|convert:(?:int|float|string|bool)` + // convert: primitives, ditto
		`|describe:(?:full|type)` + // describe: primitives, ditto
		`|[A-Za-z_][A-Za-z0-9_]*` + // identifier (also matches keywords)
		`|<=|>=|/=|:=` + // two-char operators
		`|[-+*/%<>=.,:{}]` + // single-char primitive tokens
		`)`,
)

// whitespacePattern matches the run of inter-token whitespace the cursor
// must skip before attempting to match masterPattern.
var whitespacePattern = regexp.MustCompile(`^[ \t\r\n]+`)

// errNotFound signals that the remaining region is empty or all
// whitespace: "no more tokens", not a syntax error.
var errNotFound = tokenError("no more tokens")

type tokenError string

func (e tokenError) Error() string { return string(e) }

// IsNotFound reports whether err is the benign "no more tokens" signal
// next() returns at the natural end of a region, as opposed to a syntax
// error over unmatchable garbage.
func IsNotFound(err error) bool {
	_, ok := err.(tokenError)
	return ok
}

// region bounds the slice of code the cursor is currently allowed to scan.
type region struct{ start, end int }

// state is a plain, pointer-free record of everything push_state/pop_state
// needs to restore: the current scan offset and the active region. Spec §9
// calls for tokenizer state to be a serializable plain value; this is it.
type state struct {
	pos    int
	region region
}

// Cursor is a restartable scanning position over code. The zero Cursor is
// not usable; construct one with New.
type Cursor struct {
	file   string
	code   string
	pos    int
	region region
	stack  []state
}

// New returns a cursor scanning all of code, tagged with file for location
// reporting.
func New(file, code string) *Cursor {
	return &Cursor{file: file, code: code, region: region{0, len(code)}}
}

// HasNext reports whether a further call to Next would yield a token,
// without advancing the cursor. Pure: callable repeatedly.
func (c *Cursor) HasNext() bool {
	_, _, err := c.peek()
	return err == nil
}

// Next returns the next token and advances past it. If the remaining
// region holds no matchable content before its end, Next fails with the
// benign not-found signal (see IsNotFound); if it holds unmatchable
// garbage, Next fails with a syntax error.
func (c *Cursor) Next() (Token, error) {
	text, start, err := c.peek()
	if err != nil {
		return Token{}, err
	}
	c.pos = start + len(text)
	return Token{Text: text, Start: start}, nil
}

func (c *Cursor) peek() (text string, start int, err error) {
	pos := c.skipWhitespace(c.pos)
	if pos >= c.region.end {
		return "", 0, errNotFound
	}
	window := c.code[pos:c.region.end]
	m := masterPattern.FindString(window)
	if m == "" {
		return "", 0, langerr.Syntaxf(location.Loc{File: c.file, Index: pos}, "unrecognized input %q", excerpt(window))
	}
	return m, pos, nil
}

func (c *Cursor) skipWhitespace(pos int) int {
	if pos >= c.region.end {
		return pos
	}
	if m := whitespacePattern.FindString(c.code[pos:c.region.end]); m != "" {
		pos += len(m)
	}
	return pos
}

func excerpt(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// CurrentPosition returns the 1-based line and 0-based column of the
// cursor's current scan offset, derived by scanning for newlines.
func (c *Cursor) CurrentPosition() (line, col int) {
	return location.LineCol(c.code, c.pos)
}

// PushState saves the cursor's current offset and active region so a
// nested region (a code block body) can be scanned, then restored with
// PopState.
func (c *Cursor) PushState() {
	c.stack = append(c.stack, state{pos: c.pos, region: c.region})
}

// PopState restores the most recently pushed state, discarding whatever
// scanning happened since the matching PushState.
func (c *Cursor) PopState() {
	n := len(c.stack) - 1
	s := c.stack[n]
	c.stack = c.stack[:n]
	c.pos, c.region = s.pos, s.region
}

// EnterRegion narrows scanning to [start, end) without disturbing the
// saved-state stack.
func (c *Cursor) EnterRegion(start, end int) {
	c.pos, c.region = start, region{start, end}
}

// Pos returns the cursor's current scan offset.
func (c *Cursor) Pos() int { return c.pos }

// WithCodeAppended returns a new cursor scanning a code buffer extended by
// extra, preserving the old cursor's position -- this supports
// interactive/incremental execution (spec §4.2) without mutating the
// original cursor mid-parse.
func (c *Cursor) WithCodeAppended(extra string) *Cursor {
	next := &Cursor{
		file:   c.file,
		code:   c.code + extra,
		pos:    c.pos,
		region: region{c.region.start, c.region.end + len(extra)},
	}
	next.stack = append(next.stack, c.stack...)
	return next
}

// File returns the cursor's file tag.
func (c *Cursor) File() string { return c.file }

// Code returns the full source the cursor scans over.
func (c *Cursor) Code() string { return c.code }
