// Package preprocess implements SOF's source-cleaning pass (spec §4.1): it
// turns raw source text into the canonical form the tokenizer's single
// master regex can safely scan, by folding line continuations and
// stripping comments while leaving string literals untouched.
package preprocess

import (
	"strings"

	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
)

// Run cleans src, returning the canonical form or a syntax error citing
// the offending offset. Run is pure and idempotent on already-clean
// input: Run(Run(s)) == Run(s) for any s that Run accepts.
func Run(file, src string) (string, error) {
	src, err := joinContinuations(src)
	if err != nil {
		return "", err
	}
	return stripComments(file, src)
}

// joinContinuations removes a backslash immediately followed by a newline,
// joining the two lines (spec §4.1 rule 1).
func joinContinuations(src string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '\\' && i+1 < len(src) && src[i+1] == '\n' {
			i++ // drop backslash and the newline it protects
			continue
		}
		sb.WriteByte(src[i])
	}
	return sb.String(), nil
}

// stripComments replaces block comments (#* ... *#) and line comments
// (# to end of line) with whitespace, while recognizing double-quoted
// string literals so a '#' inside one is not mistaken for a comment.
func stripComments(file, src string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(src))

	for i := 0; i < len(src); {
		switch {
		case src[i] == '"':
			start := i
			j, err := scanString(src, i)
			if err != nil {
				return "", langerr.Syntaxf(location.Loc{File: file, Index: start}, "%v", err)
			}
			sb.WriteString(src[i:j])
			i = j

		case i+1 < len(src) && src[i] == '#' && src[i+1] == '*':
			start := i
			j := strings.Index(src[i+2:], "*#")
			if j < 0 {
				return "", langerr.Syntaxf(location.Loc{File: file, Index: start}, "unterminated block comment")
			}
			end := i + 2 + j + 2
			sb.WriteByte(' ')
			for _, r := range src[start:end] {
				if r == '\n' {
					sb.WriteByte('\n')
				}
			}
			i = end

		case src[i] == '#':
			j := strings.IndexByte(src[i:], '\n')
			if j < 0 {
				sb.WriteByte(' ')
				i = len(src)
			} else {
				sb.WriteByte(' ')
				i += j // leave the newline itself intact
			}

		default:
			sb.WriteByte(src[i])
			i++
		}
	}

	return sb.String(), nil
}

// scanString returns the index just past a double-quoted, backslash-
// escaped string literal starting at i (src[i] == '"'), or an error if it
// is unterminated.
func scanString(src string, i int) (int, error) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '"':
			return j + 1, nil
		}
		j++
	}
	return 0, errUnterminatedString
}

var errUnterminatedString = stringError("unterminated string literal")

type stringError string

func (e stringError) Error() string { return string(e) }
