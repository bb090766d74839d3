package resolve

import (
	"sync"

	"github.com/jnodes/jnodes/jnode"
)

// secondaryEntry is the lazy-materialize-then-memoize sum type spec.md
// §4.D's secondary-document registration describes: either a pre-wrapped
// scalar (returned directly, never touched as a JSONPath context) or a
// lazily built document (parsed/wrapped on first reference, then cached).
// Grounded on the teacher's EvalOptions/ExpandEnv lazy env-threading
// pattern — environment values are read on demand rather than eagerly
// converted when registered.
type secondaryEntry struct {
	mu      sync.Mutex
	scalar  *jnode.Node
	doc     *jnode.Node
	builder func() (*jnode.Node, error)
}

func newScalarEntry(v *jnode.Node) *secondaryEntry {
	return &secondaryEntry{scalar: v}
}

func newLazyEntry(builder func() (*jnode.Node, error)) *secondaryEntry {
	return &secondaryEntry{builder: builder}
}

// materialize returns the entry's document, building and memoizing it on
// first call if it was registered lazily. A pre-wrapped scalar entry has
// no document and returns (nil, false).
func (e *secondaryEntry) materialize() (*jnode.Node, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scalar != nil {
		return nil, false, nil
	}
	if e.doc != nil {
		return e.doc, true, nil
	}
	doc, err := e.builder()
	if err != nil {
		return nil, false, err
	}
	e.doc = doc
	e.builder = nil
	return doc, true, nil
}

// classify turns an arbitrary registered value into a secondaryEntry:
// primitive scalars are wrapped directly; an already-wrapped scalar
// *jnode.Node passes through unchanged; everything else (maps, slices,
// structs, or a non-scalar *jnode.Node) becomes a lazy JSONPath-context
// builder, parsed on first touch.
func classify(v any) *secondaryEntry {
	switch x := v.(type) {
	case *jnode.Node:
		if x != nil && !x.IsArray() && !x.IsObject() {
			return newScalarEntry(x)
		}
		return newLazyEntry(func() (*jnode.Node, error) { return x, nil })
	case string:
		return newScalarEntry(jnode.FromString(x))
	case bool:
		return newScalarEntry(jnode.FromBool(x))
	case int:
		return newScalarEntry(jnode.FromInt64(int64(x)))
	case int64:
		return newScalarEntry(jnode.FromInt64(x))
	case float64:
		return newScalarEntry(jnode.FromFloat64(x))
	case nil:
		return newScalarEntry(jnode.NullNode())
	default:
		return newLazyEntry(func() (*jnode.Node, error) { return jnode.Wrap(x) })
	}
}
