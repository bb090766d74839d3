// Package adapter defines the polymorphic Document Model Adapter contract
// of spec.md §4.A: a single capability interface over a JSON
// representation, parameterized by the backend's own node type so that
// jnode (an object-graph tree), gabsnode (github.com/Jeffail/gabs/v2), and
// textnode (github.com/tidwall/gjson + sjson over raw text) can all
// satisfy it without any one of them dictating the others' internals.
//
// merge, patch, and resolve consume jnode's concrete operations directly
// (for performance and because jnode is this module's primary backend).
// Most operations they call have a same-named counterpart here; the
// exceptions are jnode.SetIndex (patch's array replace) and
// jnode.DeepEqual (merge and patch), which this interface does not
// include. The conformance suite in conformance.go checks each backend
// against this interface.
package adapter

import "math/big"

// Kind mirrors jnode.Kind without importing it, so this package stays a
// leaf with no dependency on any backend.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Entry is one ordered (key, value) pair of an Object.
type Entry[N any] struct {
	Key   string
	Value N
}

// Adapter is the sole authority a backend exposes over its representation.
// Classification, construction, access, mutation, extraction, and
// serialization together form the complete surface spec.md §4.A requires.
type Adapter[N any] interface {
	// Classification
	KindOf(n N) Kind
	IsString(n N) bool
	IsNumber(n N) bool
	IsBool(n N) bool
	IsNull(n N) bool
	IsArray(n N) bool
	IsObject(n N) bool

	// Construction
	NullNode() N
	Wrap(scalar any) (N, error)
	Parse(text string) (N, error)
	Clone(n N) N
	NewObject() N
	NewArray() N

	// Access
	Size(n N) int
	IsEmpty(n N) bool
	Get(obj N, key string) (N, bool)
	Has(obj N, key string) bool
	Entries(obj N) []Entry[N]
	Elements(arr N) []N
	Index(arr N, i int) (N, bool)

	// Mutation
	Set(obj N, key string, val N)
	Append(arr N, val N)
	Insert(arr N, i int, val N)
	RemoveKey(obj N, key string)
	RemoveAt(arr N, i int)

	// Extraction
	AsString(n N) (string, bool)
	AsNumber(n N) (string, bool)
	AsBigFloat(n N) (*big.Float, bool)
	AsBool(n N) (bool, bool)
	Unwrap(n N, reduceBigDecimals bool) any

	// Serialization
	ToString(n N) (string, error)
}
