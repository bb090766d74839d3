// Package patch implements the JSON Patch (RFC 6902) applier of
// spec.md §4.E natively over *jnode.Node, atomically (clone-then-mutate,
// publish only on full success). Grounded on the teacher's
// mergeop/jsonpatch.go shape of delegating to github.com/evanphx/json-patch
// for the heavy lifting — here that library is instead exercised as a
// cross-check oracle in reference_test.go, because the five distinguished
// error kinds (jsonerr.TargetMissing, IndexOutOfBounds, TestFailed,
// IllegalMove, UnknownOp) and operation-index-tagged messages spec.md §7
// requires need to be under this package's own control.
package patch

import "github.com/jnodes/jnodes/jnode"

// Operation is one entry of a JSON Patch document: op is one of
// "add"/"remove"/"replace"/"move"/"copy"/"test"; Path and From are JSON
// Pointers (RFC 6901); Value is used by add/replace/test.
type Operation struct {
	Op    string
	Path  string
	From  string
	Value *jnode.Node
}
