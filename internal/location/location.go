// Package location tracks where in SOF source text a token, node or error
// originated: a file tag paired with a byte offset, with line/column
// derived on demand by scanning for newlines.
package location

import "fmt"

// Loc is a source location: the file (or synthetic tag, e.g. "<literal>")
// the text came from, plus a byte offset into that source's text.
type Loc struct {
	File  string
	Index int
}

// None is the zero Loc, used where no location is available yet.
var None = Loc{}

// IsZero reports whether the location carries no information at all.
func (loc Loc) IsZero() bool { return loc.File == "" && loc.Index == 0 }

func (loc Loc) String() string { return fmt.Sprintf("%v:%v", loc.File, loc.Index) }

// LineCol derives a 1-based line number and 0-based column for the byte
// offset index by scanning src for newlines up to it (an index past the
// end is clamped to len(src)). src must be the exact text index was
// measured against.
func LineCol(src string, index int) (line, col int) {
	line = 1
	lineStart := 0
	if index > len(src) {
		index = len(src)
	}
	for i := 0; i < index; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, index - lineStart
}

// ExcerptLine returns the full line of src containing index, plus the
// 0-based column within that line, for caret-marked error rendering.
func ExcerptLine(src string, index int) (line string, col int) {
	if index > len(src) {
		index = len(src)
	}
	start := index
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := index
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[start:end], index - start
}

// Described renders loc with a 1-based line and 0-based column resolved
// against src, e.g. "main.sof:3:12". Used when rendering a complete error.
func Described(loc Loc, src string) string {
	ln, col := LineCol(src, loc.Index)
	return fmt.Sprintf("%v:%v:%v", loc.File, ln, col)
}
