package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/preprocess"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"line continuation", "1 2 +\\\n3 *", "1 2 +3 *"},
		{"line comment", "1 2 + # add them\n3", "1 2 +  \n3"},
		{"line comment to eof", "1 2 + # trailing", "1 2 +  "},
		{"block comment single line", "1 #* skip *# 2", "1   2"},
		{"block comment spans lines preserves newlines", "1 #* a\nb\nc *# 2", "1  \n\n 2"},
		{"hash inside string is not a comment", `"a # b" writeln`, `"a # b" writeln`},
		{"escaped quote inside string", `"a \" # b" writeln`, `"a \" # b" writeln`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := preprocess.Run("<test>", tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	srcs := []string{
		"1 2 + # comment\n3 4 *",
		"#* block *#\n\"str # not a comment\"",
		"a\\\nb\\\nc",
	}
	for _, src := range srcs {
		once, err := preprocess.Run("<test>", src)
		require.NoError(t, err)
		twice, err := preprocess.Run("<test>", once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := preprocess.Run("<test>", "1 #* unterminated")
	require.Error(t, err)

	_, err = preprocess.Run("<test>", `"unterminated string`)
	require.Error(t, err)
}
