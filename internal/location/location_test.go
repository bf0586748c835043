package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/sof/internal/location"
)

func TestLineCol(t *testing.T) {
	src := "one\ntwo\nthree"
	for _, tc := range []struct {
		name       string
		index      int
		line, col int
	}{
		{"start", 0, 1, 0},
		{"mid first line", 2, 1, 2},
		{"start of second line", 4, 2, 0},
		{"mid third line", 10, 3, 2},
		{"past end clamps", 1000, 3, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			line, col := location.LineCol(src, tc.index)
			assert.Equal(t, tc.line, line)
			assert.Equal(t, tc.col, col)
		})
	}
}

func TestExcerptLine(t *testing.T) {
	src := "abc\ndefg\nhi"
	line, col := location.ExcerptLine(src, 6)
	assert.Equal(t, "defg", line)
	assert.Equal(t, 2, col)
}

func TestDescribed(t *testing.T) {
	src := "1 2 +\nbogus"
	loc := location.Loc{File: "prog.sof", Index: 6}
	assert.Equal(t, "prog.sof:2:0", location.Described(loc, src))
}

func TestIsZero(t *testing.T) {
	assert.True(t, location.None.IsZero())
	assert.False(t, location.Loc{File: "x"}.IsZero())
}
