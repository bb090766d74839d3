package jsonptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoot(t *testing.T) {
	toks, err := Parse("")
	require.NoError(t, err)
	require.Nil(t, toks)
}

func TestParseSimple(t *testing.T) {
	toks, err := Parse("/a/b/0")
	require.NoError(t, err)
	require.Equal(t, []Token{"a", "b", "0"}, toks)
}

func TestParseUnescapesTildeAndSlash(t *testing.T) {
	toks, err := Parse("/a~1b/c~0d")
	require.NoError(t, err)
	require.Equal(t, []Token{"a/b", "c~d"}, toks)
}

func TestParseRejectsMissingLeadingSlash(t *testing.T) {
	_, err := Parse("a/b")
	require.Error(t, err)
}

func TestEscapeOrdersTildeBeforeSlash(t *testing.T) {
	require.Equal(t, "a~0b", Escape("a~b"))
	require.Equal(t, "a~1b", Escape("a/b"))
	require.Equal(t, "a~0~1", Escape("a~/"))
}

func TestEscapeRoundTripsThroughFormat(t *testing.T) {
	toks := []Token{"a/b", "c~d", "-"}
	require.Equal(t, "/a~1b/c~0d/-", Format(toks))

	back, err := Parse(Format(toks))
	require.NoError(t, err)
	require.Equal(t, toks, back)
}

func TestFormatEmptyIsRoot(t *testing.T) {
	require.Equal(t, "", Format(nil))
}

func TestIsArrayAppend(t *testing.T) {
	require.True(t, IsArrayAppend("-"))
	require.False(t, IsArrayAppend("0"))
}
