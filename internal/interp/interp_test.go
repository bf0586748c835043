package interp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/interp"
	"github.com/jcorbin/sof/internal/value"
)

func runSOF(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", src)
	require.NoError(t, err)
	return out.String()
}

func TestScenarioAddition(t *testing.T) {
	assert.Equal(t, "3\n", runSOF(t, "1 2 + writeln"))
}

func TestScenarioStringConcat(t *testing.T) {
	assert.Equal(t, "hello, world\n", runSOF(t, `"hello, " "world" cat writeln`))
}

func TestScenarioFunctionCall(t *testing.T) {
	assert.Equal(t, "25\n", runSOF(t, "{ dup * } 1 function square def  5 square . writeln"))
}

func TestScenarioWhileLoop(t *testing.T) {
	want := "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n"
	assert.Equal(t, want, runSOF(t, "0 { dup 10 < } { dup writeln 1 + } while pop"))
}

func TestScenarioIfElse(t *testing.T) {
	assert.Equal(t, "yes\n", runSOF(t, `true { "yes" writeln } { "no" writeln } ifelse`))
}

func TestScenarioCurry(t *testing.T) {
	assert.Equal(t, "9\n", runSOF(t, "{ dup * } 1 function sq def  3 sq curry . writeln"))
}

func TestAtomOfUnboundNamePushesIdentifier(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "notyetdefined describe writeln")
	require.NoError(t, err)
	assert.Equal(t, "notyetdefined\n", out.String())
}

func TestAtomOfBoundNameNeverAutoInvokes(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "{ 1 } 0 function f def  f describe writeln")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "function")
}

func TestWithOutputsTeesToEveryWriter(t *testing.T) {
	var a, b bytes.Buffer
	in := interp.New(interp.WithOutputs(&a, &b))
	err := in.RunSource(context.Background(), "test.sof", `"hi" writeln`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", a.String())
	assert.Equal(t, "hi\n", b.String())
}

func TestDescribeTypeRendersOnlyTheVariantTag(t *testing.T) {
	assert.Equal(t, "Integer\n", runSOF(t, "42 describe:type writeln"))
}

func TestDescribeFullRendersNestedStructure(t *testing.T) {
	assert.Equal(t, `String("hi", len=2)`+"\n", runSOF(t, `"hi" describe:full writeln`))
}

func TestUndefinedNameViaDotErrors(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "quote nope .")
	require.Error(t, err)
}

func TestReturnUnwindsOneFrame(t *testing.T) {
	assert.Equal(t, "7\n", runSOF(t, "{ 7 return 99 } 0 function f def  f . writeln"))
}

func TestReturnPastGlobalIsStackError(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "1 return")
	require.Error(t, err)
}

func TestScopeDiscipline(t *testing.T) {
	in := interp.New()
	err := in.RunSource(context.Background(), "test.sof", "{ 1 } 0 function f def")
	require.NoError(t, err)
	depthBefore := in.Chain().Depth()
	err = in.RunSource(context.Background(), "test.sof", "f .")
	require.NoError(t, err)
	assert.Equal(t, depthBefore, in.Chain().Depth())
	assert.Equal(t, 1, in.Depth())
}

func TestCurryArithmeticMatchesDirectCall(t *testing.T) {
	assert.Equal(t, "9\n", runSOF(t, "{ dup * } 1 function sq def  3 sq . writeln"))
	assert.Equal(t, "9\n", runSOF(t, "{ dup * } 1 function sq2 def  3 sq2 curry . writeln"))
}

func TestObjectFieldWriteThenRead(t *testing.T) {
	assert.Equal(t, "5\n", runSOF(t,
		"{ } 0 constructor mk def  mk . quote obj def  obj 5 quote x :=  obj quote x : writeln"))
}

func TestAssertFailureRaisesAssertError(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "false assert")
	require.Error(t, err)
	assert.Equal(t, 1, in.AssertCount())
}

func TestDivisionByZeroIsMathError(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "1 0 /")
	require.Error(t, err)
}

func TestStackUnderflowIsStackError(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	err := in.RunSource(context.Background(), "test.sof", "pop")
	require.Error(t, err)
}

func TestNativeBuiltinDispatch(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	in.RegisterNative(interp.Native{
		Name:     "double",
		ArgCount: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			n := args[0].(value.Integer)
			return value.Integer(n * 2), nil
		},
	})
	err := in.RunSource(context.Background(), "test.sof", "21 double writeln")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}
