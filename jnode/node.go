// Package jnode is the primary, dependency-free Document Model Adapter
// backend: an object-graph tree over a tagged Node value, grounded on the
// teacher's go-tony/ir.Node (parallel Fields/Values slices for objects,
// constructor functions per kind, CloneTo-style deep copy) but simplified
// to spec.md's Node: a strict tree with no parent back-references, no tag
// or comment metadata, and numbers kept as raw decimal text for
// arbitrary-precision fidelity until an explicit narrowing call.
package jnode

// Kind tags a Node's JSON value category. A Node's Kind is stable for its
// lifetime; mutation replaces the value stored at a container slot, never
// rewrites a Node's Kind in place.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "<unknown kind>"
	}
}

// Node is an in-memory JSON value: a tagged union over {Null, Bool, Number,
// String, Array, Object}. Objects are represented as parallel keys/vals
// slices (mirroring the teacher's Fields/Values pairing) so that iteration
// order always equals insertion order without a separate ordering index.
type Node struct {
	kind Kind

	b   bool
	num string // raw decimal text; arbitrary precision until narrowed
	str string

	arr []*Node

	keys []string
	vals []*Node
}

// KindOf returns n's Kind, or Null if n is nil (an absent value reads as
// null, matching the resolver's and merge engine's "value is null/absent"
// checks).
func KindOf(n *Node) Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

func (n *Node) Kind() Kind { return KindOf(n) }

// IsNode reports whether x is a non-nil *Node; the adapter's classification
// surface accepts `any` at its boundary (e.g. from Wrap) but every other
// operation in this package works on *Node directly.
func IsNode(x any) bool {
	_, ok := x.(*Node)
	return ok
}

func (n *Node) IsNull() bool   { return KindOf(n) == Null }
func (n *Node) IsBool() bool   { return KindOf(n) == Bool }
func (n *Node) IsNumber() bool { return KindOf(n) == Number }
func (n *Node) IsString() bool { return KindOf(n) == String }
func (n *Node) IsArray() bool  { return KindOf(n) == Array }
func (n *Node) IsObject() bool { return KindOf(n) == Object }

// NullNode returns a fresh null-kinded Node.
func NullNode() *Node { return &Node{kind: Null} }

// FromBool wraps a bool.
func FromBool(v bool) *Node { return &Node{kind: Bool, b: v} }

// FromString wraps a string.
func FromString(v string) *Node { return &Node{kind: String, str: v} }

// FromInt64 wraps an int64 as a Number, rendered as decimal text.
func FromInt64(v int64) *Node { return &Node{kind: Number, num: formatInt64(v)} }

// FromFloat64 wraps a float64 as a Number, rendered per the numeric-string
// rule (no fractional part if whole, no scientific notation, trailing
// zeros stripped otherwise).
func FromFloat64(v float64) *Node { return &Node{kind: Number, num: formatFloat64(v)} }

// FromNumberText wraps a pre-rendered decimal number string verbatim,
// preserving exactly the input text (used by Parse to keep arbitrary
// precision fidelity for numbers wider than float64).
func FromNumberText(text string) *Node { return &Node{kind: Number, num: text} }

// NewObject returns a fresh, empty Object node.
func NewObject() *Node { return &Node{kind: Object} }

// NewArray returns a fresh, empty Array node.
func NewArray() *Node { return &Node{kind: Array} }

// Wrap converts a native Go scalar/slice/map into a Node tree. It is the
// adapter's generic construction entry point, complementing the
// kind-specific FromXxx constructors.
func Wrap(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return NullNode(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case float64:
		return FromFloat64(x), nil
	case []any:
		arr := NewArray()
		for _, e := range x {
			en, err := Wrap(e)
			if err != nil {
				return nil, err
			}
			arr.arr = append(arr.arr, en)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		for k, e := range x {
			en, err := Wrap(e)
			if err != nil {
				return nil, err
			}
			Set(obj, k, en)
		}
		return obj, nil
	default:
		return nil, errUnwrappable(v)
	}
}

// Clone returns a deep, independent copy of n (nil-safe: cloning nil
// returns nil). Structural sharing is not used on purpose: every Node
// owns its own Array/keys/vals slices after Clone, matching the
// "Detached Nodes are owned by the caller" lifecycle rule.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, b: n.b, num: n.num, str: n.str}
	if n.arr != nil {
		c.arr = make([]*Node, len(n.arr))
		for i, e := range n.arr {
			c.arr[i] = Clone(e)
		}
	}
	if n.keys != nil {
		c.keys = append([]string(nil), n.keys...)
		c.vals = make([]*Node, len(n.vals))
		for i, v := range n.vals {
			c.vals[i] = Clone(v)
		}
	}
	return c
}
