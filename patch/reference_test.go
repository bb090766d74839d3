package patch

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	"github.com/jnodes/jnodes/jnode"
	"github.com/stretchr/testify/require"
)

// marshalOps renders ops as a raw RFC 6902 JSON Patch document, the same
// shape mergeop/jsonpatch.go hands to jsonpatch.DecodePatch.
func marshalOps(t *testing.T, ops []Operation) []byte {
	arr := jnode.NewArray()
	for _, op := range ops {
		o := jnode.NewObject()
		jnode.Set(o, "op", jnode.FromString(op.Op))
		jnode.Set(o, "path", jnode.FromString(op.Path))
		if op.From != "" {
			jnode.Set(o, "from", jnode.FromString(op.From))
		}
		if op.Value != nil {
			jnode.Set(o, "value", op.Value)
		}
		jnode.Append(arr, o)
	}
	text, err := jnode.ToString(arr)
	require.NoError(t, err)
	return []byte(text)
}

// crossCheck runs ops through both the native Apply and
// github.com/evanphx/json-patch, asserting they agree. It is the oracle
// pattern spec.md §4.E's design note calls for: the library's generic
// byte-level errors aren't usable for this package's distinguished error
// taxonomy, so it is exercised only here, as ground truth on the happy
// path.
func crossCheck(t *testing.T, docText string, ops []Operation) {
	doc := mustParse(t, docText)
	ours, err := Apply(doc, ops)
	require.NoError(t, err)

	patch, err := jsonpatch.DecodePatch(marshalOps(t, ops))
	require.NoError(t, err)
	theirsBytes, err := patch.Apply([]byte(docText))
	require.NoError(t, err)
	theirs, err := jnode.Parse(string(theirsBytes))
	require.NoError(t, err)

	oursUnwrapped := jnode.Unwrap(ours, true)
	theirsUnwrapped := jnode.Unwrap(theirs, true)
	require.True(t, cmp.Equal(oursUnwrapped, theirsUnwrapped),
		cmp.Diff(oursUnwrapped, theirsUnwrapped))
}

func TestReferenceAddMatchesLibrary(t *testing.T) {
	crossCheck(t, `{"a":1}`, []Operation{
		{Op: "add", Path: "/b", Value: jnode.FromInt64(2)},
	})
}

func TestReferenceReplaceMatchesLibrary(t *testing.T) {
	crossCheck(t, `{"a":[1,2,3]}`, []Operation{
		{Op: "replace", Path: "/a/1", Value: jnode.FromInt64(99)},
	})
}

func TestReferenceRemoveMatchesLibrary(t *testing.T) {
	crossCheck(t, `{"a":1,"b":2}`, []Operation{
		{Op: "remove", Path: "/a"},
	})
}

func TestReferenceMoveMatchesLibrary(t *testing.T) {
	crossCheck(t, `{"a":{"x":1},"b":{}}`, []Operation{
		{Op: "move", From: "/a/x", Path: "/b/x"},
	})
}

func TestReferenceCopyMatchesLibrary(t *testing.T) {
	crossCheck(t, `{"a":{"x":1},"b":{}}`, []Operation{
		{Op: "copy", From: "/a", Path: "/b/copied"},
	})
}
