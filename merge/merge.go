// Package merge implements the path-addressed deep-merge engine of
// spec.md §4.C: walk a dotted/bracketed path into root, creating missing
// intermediate objects, auto-promoting an existing scalar binding to an
// array on collision, and appending to an existing array binding.
// Grounded on the teacher's mergeop "build a replacement then bind it via
// the patch function" shape (mergeop/insert.go) and on jnode.Get's linear
// field scan for segment lookup.
package merge

import (
	"github.com/jnodes/jnodes/jnode"
	"github.com/jnodes/jnodes/jpath"
	"github.com/jnodes/jnodes/xlog"
)

// Into merges value into root at path and returns root. If value is
// null/absent, or root is null, root is returned unchanged. Object
// iteration order is preserved at every step: new bindings are always
// appended, existing bindings never change position.
func Into(root, value *jnode.Node, path string) *jnode.Node {
	if value == nil || value.IsNull() || root == nil || root.IsNull() {
		return root
	}

	segs, _ := jpath.Tokenize(path)
	keys := make([]string, len(segs))
	for i, s := range segs {
		keys[i] = segmentKey(s)
	}

	if len(keys) == 0 {
		if root.IsObject() && value.IsObject() {
			unionInto(root, value)
		}
		return root
	}

	walk(root, value, keys)
	return root
}

func walk(object, value *jnode.Node, keys []string) {
	for i, seg := range keys {
		last := i == len(keys)-1
		remaining := keys[i+1:]

		child, ok := jnode.Get(object, seg)
		if !ok {
			wrapped := wrapRemaining(value, remaining)
			if !wrapped.IsNull() {
				xlog.Mergef("merge: bind new %q", seg)
				jnode.Set(object, seg, wrapped)
			}
			return
		}

		switch {
		case child.IsObject():
			if last {
				if value.IsObject() {
					xlog.Mergef("merge: shallow union at %q", seg)
					unionInto(child, value)
				} else {
					xlog.Mergef("merge: overwrite object %q with scalar", seg)
					jnode.Set(object, seg, value)
				}
				return
			}
			object = child
		case child.IsArray():
			xlog.Mergef("merge: append into array %q", seg)
			jnode.Append(child, wrapRemaining(value, remaining))
			return
		default:
			wrapped := wrapRemaining(value, remaining)
			if last && jnode.DeepEqual(child, wrapped) {
				xlog.Mergef("merge: identical re-assignment at %q, no promotion", seg)
				jnode.Set(object, seg, wrapped)
				return
			}
			xlog.Mergef("merge: promote scalar %q to array", seg)
			arr := jnode.NewArray()
			jnode.Append(arr, child)
			jnode.Append(arr, wrapped)
			jnode.Set(object, seg, arr)
			return
		}
	}
}

// wrapRemaining pops segments from the back of remaining, each pop
// wrapping the running value in {segment: value}.
func wrapRemaining(value *jnode.Node, remaining []string) *jnode.Node {
	result := value
	for i := len(remaining) - 1; i >= 0; i-- {
		obj := jnode.NewObject()
		jnode.Set(obj, remaining[i], result)
		result = obj
	}
	return result
}

func unionInto(object, value *jnode.Node) {
	for _, e := range jnode.Entries(value) {
		jnode.Set(object, e.Key, e.Value)
	}
}

// segmentKey reduces a tokenized path segment to the plain member-name
// text used as an object key, stripping the surrounding quotes (and their
// escapes) from a bracketed selector such as ['foo.bar'].
func segmentKey(seg jpath.Segment) string {
	if seg.Kind == jpath.Name {
		return seg.Text
	}
	t := seg.Text
	if len(t) >= 2 && (t[0] == '\'' || t[0] == '"') && t[len(t)-1] == t[0] {
		return unescapeQuoted(t[1:len(t)-1], t[0])
	}
	return t
}

func unescapeQuoted(s string, quote byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == quote || s[i+1] == '\\') {
			out = append(out, s[i+1])
			i++
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
