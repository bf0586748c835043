package langerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
)

func TestIncompleteThenComplete(t *testing.T) {
	err := langerr.Namef("undefined name %q", "foo")
	require.False(t, err.Complete)

	complete := err.At(location.Loc{File: "a.sof", Index: 4})
	assert.True(t, complete.Complete)
	assert.Equal(t, "a.sof:4: name: undefined name \"foo\"", complete.Error())

	// completing twice keeps the first (innermost) location
	again := complete.At(location.Loc{File: "b.sof", Index: 99})
	assert.Equal(t, complete.Loc, again.Loc)
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind langerr.Kind
		want string
	}{
		{langerr.Syntax, "syntax"},
		{langerr.Type, "type"},
		{langerr.Name, "name"},
		{langerr.Stack, "stack"},
		{langerr.Math, "math"},
		{langerr.Assert, "assert"},
		{langerr.IO, "io"},
		{langerr.Generic, "generic"},
	} {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestIs(t *testing.T) {
	var err error = langerr.Mathf("divide by zero")
	assert.True(t, errorsIs(err, langerr.Mathf("other message")))
	assert.False(t, errorsIs(err, langerr.Namef("other message")))
}

func errorsIs(err, target error) bool {
	type isser interface{ Is(error) bool }
	if is, ok := err.(isser); ok {
		return is.Is(target)
	}
	return false
}
