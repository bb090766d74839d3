package patch

import (
	"errors"
	"testing"

	"github.com/jnodes/jnodes/jnode"
	"github.com/jnodes/jnodes/jsonerr"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *jnode.Node {
	n, err := jnode.Parse(text)
	require.NoError(t, err)
	return n
}

func TestApplyAddObjectKey(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	out, err := Apply(doc, []Operation{
		{Op: "add", Path: "/b", Value: jnode.FromInt64(2)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":1,"b":2}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyAddArrayInsertBefore(t *testing.T) {
	doc := mustParse(t, `{"a":[1,3]}`)
	out, err := Apply(doc, []Operation{
		{Op: "add", Path: "/a/1", Value: jnode.FromInt64(2)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":[1,2,3]}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyAddArrayAppendDash(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2]}`)
	out, err := Apply(doc, []Operation{
		{Op: "add", Path: "/a/-", Value: jnode.FromInt64(3)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":[1,2,3]}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyAddOutOfBoundsFails(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2]}`)
	_, err := Apply(doc, []Operation{
		{Op: "add", Path: "/a/9", Value: jnode.FromInt64(3)},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.IndexOutOfBounds))
}

func TestApplyRemoveObjectKey(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	out, err := Apply(doc, []Operation{{Op: "remove", Path: "/a"}})
	require.NoError(t, err)
	want := mustParse(t, `{"b":2}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyRemoveMissingTargetFails(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{{Op: "remove", Path: "/missing"}})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.TargetMissing))
}

func TestApplyReplaceObjectKeyInPlace(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	out, err := Apply(doc, []Operation{
		{Op: "replace", Path: "/a", Value: jnode.FromInt64(9)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":9,"b":2}`)
	require.True(t, jnode.DeepEqual(out, want))

	keys := make([]string, 0, 2)
	for _, e := range jnode.Entries(out) {
		keys = append(keys, e.Key)
	}
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestApplyReplaceArrayElementDoesNotShift(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2,3]}`)
	out, err := Apply(doc, []Operation{
		{Op: "replace", Path: "/a/1", Value: jnode.FromInt64(99)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":[1,99,3]}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyReplaceMissingTargetFails(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{
		{Op: "replace", Path: "/missing", Value: jnode.FromInt64(1)},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.TargetMissing))
}

func TestApplyMoveRelocatesValue(t *testing.T) {
	doc := mustParse(t, `{"a":{"x":1},"b":{}}`)
	out, err := Apply(doc, []Operation{
		{Op: "move", From: "/a/x", Path: "/b/x"},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":{},"b":{"x":1}}`)
	require.True(t, jnode.DeepEqual(out, want))
}

func TestApplyMoveIntoOwnDescendantFails(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":1}}`)
	_, err := Apply(doc, []Operation{
		{Op: "move", From: "/a", Path: "/a/b"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.IllegalMove))
}

func TestApplyCopyDuplicatesValueIndependently(t *testing.T) {
	doc := mustParse(t, `{"a":{"x":1},"b":{}}`)
	out, err := Apply(doc, []Operation{
		{Op: "copy", From: "/a", Path: "/b/copied"},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"a":{"x":1},"b":{"copied":{"x":1}}}`)
	require.True(t, jnode.DeepEqual(out, want))

	// mutating the copy must not alias the original
	copied, _ := jnode.Get(out, "b")
	copiedA, _ := jnode.Get(copied, "copied")
	jnode.Set(copiedA, "x", jnode.FromInt64(2))
	a, _ := jnode.Get(out, "a")
	ax, _ := jnode.Get(a, "x")
	n, _ := jnode.AsNumber(ax)
	require.Equal(t, "1", n)
}

func TestApplyTestPasses(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	out, err := Apply(doc, []Operation{
		{Op: "test", Path: "/a", Value: jnode.FromInt64(1)},
	})
	require.NoError(t, err)
	require.True(t, jnode.DeepEqual(out, doc))
}

func TestApplyTestFailsOnMismatch(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{
		{Op: "test", Path: "/a", Value: jnode.FromInt64(2)},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.TestFailed))
}

func TestApplyTestFailsOnMissingTarget(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{
		{Op: "test", Path: "/missing", Value: jnode.FromInt64(2)},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.TestFailed))
}

func TestApplyUnknownOpFails(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{{Op: "bogus", Path: "/a"}})
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonerr.UnknownOp))
}

func TestApplyAtomicityLeavesOriginalDocUntouched(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := Apply(doc, []Operation{
		{Op: "add", Path: "/b", Value: jnode.FromInt64(2)},
		{Op: "remove", Path: "/missing"},
	})
	require.Error(t, err)

	want := mustParse(t, `{"a":1}`)
	require.True(t, jnode.DeepEqual(doc, want))
}

func TestApplyReplaceRootReplacesWholeDocument(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	out, err := Apply(doc, []Operation{
		{Op: "replace", Path: "", Value: mustParse(t, `{"b":2}`)},
	})
	require.NoError(t, err)
	want := mustParse(t, `{"b":2}`)
	require.True(t, jnode.DeepEqual(out, want))
}
