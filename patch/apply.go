package patch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jnodes/jnodes/jnode"
	"github.com/jnodes/jnodes/jsonerr"
	"github.com/jnodes/jnodes/xlog"
)

// Apply applies ops to doc atomically: it mutates a clone, never the
// argument, and returns either the fully-patched result or an error
// naming the failing operation's index and cause — doc itself is left
// untouched either way.
func Apply(doc *jnode.Node, ops []Operation) (*jnode.Node, error) {
	result := jnode.Clone(doc)
	for i, op := range ops {
		xlog.Opf("patch: op %d %s %s", i, op.Op, op.Path)
		var err error
		result, err = applyOne(result, op)
		if err != nil {
			xlog.L().Warn("patch op failed",
				zap.Int("index", i), zap.String("op", op.Op), zap.String("path", op.Path), zap.Error(err))
			return nil, fmt.Errorf("patch: op %d (%s %s): %w", i, op.Op, op.Path, err)
		}
	}
	return result, nil
}

func applyOne(doc *jnode.Node, op Operation) (*jnode.Node, error) {
	switch op.Op {
	case "add":
		return add(doc, op.Path, op.Value)
	case "remove":
		newDoc, _, err := remove(doc, op.Path)
		return newDoc, err
	case "replace":
		return replace(doc, op.Path, op.Value)
	case "move":
		return move(doc, op.From, op.Path)
	case "copy":
		return copyOp(doc, op.From, op.Path)
	case "test":
		return test(doc, op.Path, op.Value)
	default:
		return nil, jsonerr.UnknownOp
	}
}

// get reads the value addressed by path without mutating doc.
func get(doc *jnode.Node, path string) (*jnode.Node, error) {
	parent, last, err := locate(doc, path)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return doc, nil
	}
	switch jnode.KindOf(parent) {
	case jnode.Object:
		v, ok := jnode.Get(parent, last)
		if !ok {
			return nil, jsonerr.TargetMissing
		}
		return v, nil
	case jnode.Array:
		idx, err := arrayReadIndex(last, jnode.Size(parent))
		if err != nil {
			return nil, err
		}
		v, _ := jnode.Index(parent, idx)
		return v, nil
	default:
		return nil, jsonerr.TypeMismatch
	}
}

// add creates or replaces the target. Replacing the root replaces doc
// entirely, per spec.md §4.E's "add" row.
func add(doc *jnode.Node, path string, value *jnode.Node) (*jnode.Node, error) {
	parent, last, err := locate(doc, path)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return jnode.Clone(value), nil
	}
	switch jnode.KindOf(parent) {
	case jnode.Object:
		jnode.Set(parent, last, value)
		return doc, nil
	case jnode.Array:
		idx, err := arrayInsertIndex(last, jnode.Size(parent))
		if err != nil {
			return nil, err
		}
		jnode.Insert(parent, idx, value)
		return doc, nil
	default:
		return nil, jsonerr.TypeMismatch
	}
}

// remove detaches the addressed value from doc and returns it alongside
// the (possibly new) document root.
func remove(doc *jnode.Node, path string) (*jnode.Node, *jnode.Node, error) {
	parent, last, err := locate(doc, path)
	if err != nil {
		return nil, nil, err
	}
	if parent == nil {
		return jnode.NullNode(), doc, nil
	}
	switch jnode.KindOf(parent) {
	case jnode.Object:
		v, ok := jnode.Get(parent, last)
		if !ok {
			return nil, nil, jsonerr.TargetMissing
		}
		jnode.RemoveKey(parent, last)
		return doc, v, nil
	case jnode.Array:
		idx, err := arrayReadIndex(last, jnode.Size(parent))
		if err != nil {
			return nil, nil, err
		}
		v, _ := jnode.Index(parent, idx)
		jnode.RemoveAt(parent, idx)
		return doc, v, nil
	default:
		return nil, nil, jsonerr.TypeMismatch
	}
}

// replace overwrites the target in place (no shift for arrays, unlike
// add); the target must already exist.
func replace(doc *jnode.Node, path string, value *jnode.Node) (*jnode.Node, error) {
	parent, last, err := locate(doc, path)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return jnode.Clone(value), nil
	}
	switch jnode.KindOf(parent) {
	case jnode.Object:
		if !jnode.Has(parent, last) {
			return nil, jsonerr.TargetMissing
		}
		jnode.Set(parent, last, value)
		return doc, nil
	case jnode.Array:
		idx, err := arrayReadIndex(last, jnode.Size(parent))
		if err != nil {
			return nil, err
		}
		jnode.SetIndex(parent, idx, value)
		return doc, nil
	default:
		return nil, jsonerr.TypeMismatch
	}
}

// move removes the value at from and adds it at path. from must not be
// a proper prefix of path (moving a value into its own descendant).
func move(doc *jnode.Node, from, path string) (*jnode.Node, error) {
	if isProperPrefix(from, path) {
		xlog.Patchf("patch: illegal move from %q into %q", from, path)
		return nil, jsonerr.IllegalMove
	}
	doc, removed, err := remove(doc, from)
	if err != nil {
		return nil, err
	}
	return add(doc, path, removed)
}

// copyOp deep-clones the value at from and adds the clone at path.
func copyOp(doc *jnode.Node, from, path string) (*jnode.Node, error) {
	v, err := get(doc, from)
	if err != nil {
		return nil, err
	}
	return add(doc, path, jnode.Clone(v))
}

// test succeeds (returning doc unchanged) iff the value at path is
// deeply equal to value; any other outcome — missing target or
// mismatch — is reported uniformly as jsonerr.TestFailed.
func test(doc *jnode.Node, path string, value *jnode.Node) (*jnode.Node, error) {
	v, err := get(doc, path)
	if err != nil {
		return nil, jsonerr.TestFailed
	}
	if !jnode.DeepEqual(v, value) {
		return nil, jsonerr.TestFailed
	}
	return doc, nil
}
