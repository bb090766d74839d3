package jnode

import (
	"testing"

	"github.com/jnodes/jnodes/config"
	"github.com/stretchr/testify/require"
)

func TestTruthyJavaScriptStyle(t *testing.T) {
	require.False(t, Truthy(NullNode(), false))
	require.False(t, Truthy(NewObject(), false))
	require.False(t, Truthy(NewArray(), false))
	require.False(t, Truthy(FromInt64(0), false))
	require.False(t, Truthy(FromString(""), false))
	require.False(t, Truthy(FromBool(false), false))

	obj := NewObject()
	Set(obj, "a", FromInt64(1))
	require.True(t, Truthy(obj, false))

	arr := NewArray()
	Append(arr, NullNode())
	require.True(t, Truthy(arr, false))

	require.True(t, Truthy(FromInt64(1), false))
	require.True(t, Truthy(FromString("x"), false))
	require.True(t, Truthy(FromBool(true), false))
}

func TestTruthyStrictStrings(t *testing.T) {
	require.True(t, Truthy(FromString("true"), true))
	require.False(t, Truthy(FromString("false"), true))
	require.False(t, Truthy(FromString("not a bool"), true))
	require.True(t, Truthy(FromString("x"), false))
}

func TestTruthyWithConfigReadsDialect(t *testing.T) {
	require.True(t, TruthyWithConfig(FromString("x"), config.Default()))

	strict := config.New(config.WithStrictTruthiness())
	require.False(t, TruthyWithConfig(FromString("x"), strict))
	require.True(t, TruthyWithConfig(FromString("true"), strict))
}
