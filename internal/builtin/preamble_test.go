package builtin_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/builtin"
	"github.com/jcorbin/sof/internal/interp"
)

func runWithPreamble(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	require.NoError(t, builtin.Install(context.Background(), in))
	require.NoError(t, in.RunSource(context.Background(), "test.sof", src))
	return out.String()
}

func TestPreambleParseIsMemoized(t *testing.T) {
	a, err := builtin.Preamble()
	require.NoError(t, err)
	b, err := builtin.Preamble()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestPreambleSquareAndCube(t *testing.T) {
	assert.Equal(t, "25\n", runWithPreamble(t, "5 square . writeln"))
	assert.Equal(t, "27\n", runWithPreamble(t, "3 cube . writeln"))
}

func TestPreambleIncDec(t *testing.T) {
	assert.Equal(t, "6\n", runWithPreamble(t, "5 inc . writeln"))
	assert.Equal(t, "4\n", runWithPreamble(t, "5 dec . writeln"))
}

func TestPreambleAbsOfNegative(t *testing.T) {
	assert.Equal(t, "3\n", runWithPreamble(t, "0 3 - abs . writeln"))
}

func TestPreambleAbsOfNonNegative(t *testing.T) {
	assert.Equal(t, "3\n", runWithPreamble(t, "3 abs . writeln"))
}

func TestPreambleMaxMin(t *testing.T) {
	assert.Equal(t, "5\n", runWithPreamble(t, "3 5 max . writeln"))
	assert.Equal(t, "3\n", runWithPreamble(t, "3 5 min . writeln"))
}

func TestPreambleNe(t *testing.T) {
	assert.Equal(t, "false\n", runWithPreamble(t, "3 3 ne . writeln"))
	assert.Equal(t, "true\n", runWithPreamble(t, "3 4 ne . writeln"))
}

func TestNativeDispatchDoesNotNeedDot(t *testing.T) {
	// natives dispatch like primitive tokens, by name, immediately --
	// unlike preamble Functions, no trailing "." is needed.
	assert.Equal(t, "4\n", runWithPreamble(t, "16 sqrt writeln"))
	assert.Equal(t, "1024\n", runWithPreamble(t, "2 10 pow writeln"))
	assert.Equal(t, "5\n", runWithPreamble(t, `"hello" strlen writeln`))
	assert.Equal(t, "ABC\n", runWithPreamble(t, `"abc" upper writeln`))
	assert.Equal(t, "abc\n", runWithPreamble(t, `"ABC" lower writeln`))
}

func TestInstallIsPerInterpreter(t *testing.T) {
	// Install must run the preamble fresh against each new Interpreter
	// instance (spec §9), not just once globally: two independently
	// constructed interpreters each get their own `square` binding.
	var out1, out2 bytes.Buffer
	in1 := interp.New(interp.WithOutput(&out1))
	in2 := interp.New(interp.WithOutput(&out2))
	require.NoError(t, builtin.Install(context.Background(), in1))
	require.NoError(t, builtin.Install(context.Background(), in2))
	require.NoError(t, in1.RunSource(context.Background(), "test.sof", "4 square . writeln"))
	require.NoError(t, in2.RunSource(context.Background(), "test.sof", "6 square . writeln"))
	assert.Equal(t, "16\n", out1.String())
	assert.Equal(t, "36\n", out2.String())
}
