package jnode

import (
	"math/big"

	"github.com/jnodes/jnodes/adapter"
)

// Adapter implements adapter.Adapter[*Node] over this package's functions,
// so jnode can be used anywhere the polymorphic contract is wanted (e.g.
// code that also needs to run against gabsnode or textnode) while merge,
// patch, and resolve keep calling the package-level functions directly.
type Adapter struct{}

var _ adapter.Adapter[*Node] = Adapter{}

func (Adapter) KindOf(n *Node) adapter.Kind { return adapter.Kind(KindOf(n)) }
func (Adapter) IsString(n *Node) bool       { return n.IsString() }
func (Adapter) IsNumber(n *Node) bool       { return n.IsNumber() }
func (Adapter) IsBool(n *Node) bool         { return n.IsBool() }
func (Adapter) IsNull(n *Node) bool         { return n.IsNull() }
func (Adapter) IsArray(n *Node) bool        { return n.IsArray() }
func (Adapter) IsObject(n *Node) bool       { return n.IsObject() }

func (Adapter) NullNode() *Node            { return NullNode() }
func (Adapter) Wrap(v any) (*Node, error)  { return Wrap(v) }
func (Adapter) Parse(text string) (*Node, error) { return Parse(text) }
func (Adapter) Clone(n *Node) *Node        { return Clone(n) }
func (Adapter) NewObject() *Node           { return NewObject() }
func (Adapter) NewArray() *Node            { return NewArray() }

func (Adapter) Size(n *Node) int      { return Size(n) }
func (Adapter) IsEmpty(n *Node) bool  { return IsEmpty(n) }
func (Adapter) Get(obj *Node, key string) (*Node, bool) { return Get(obj, key) }
func (Adapter) Has(obj *Node, key string) bool          { return Has(obj, key) }
func (Adapter) Entries(obj *Node) []adapter.Entry[*Node] {
	es := Entries(obj)
	out := make([]adapter.Entry[*Node], len(es))
	for i, e := range es {
		out[i] = adapter.Entry[*Node]{Key: e.Key, Value: e.Value}
	}
	return out
}
func (Adapter) Elements(arr *Node) []*Node          { return Elements(arr) }
func (Adapter) Index(arr *Node, i int) (*Node, bool) { return Index(arr, i) }

func (Adapter) Set(obj *Node, key string, val *Node) { Set(obj, key, val) }
func (Adapter) Append(arr *Node, val *Node)          { Append(arr, val) }
func (Adapter) Insert(arr *Node, i int, val *Node)   { Insert(arr, i, val) }
func (Adapter) RemoveKey(obj *Node, key string)      { RemoveKey(obj, key) }
func (Adapter) RemoveAt(arr *Node, i int)            { RemoveAt(arr, i) }

func (Adapter) AsString(n *Node) (string, bool)          { return AsString(n) }
func (Adapter) AsNumber(n *Node) (string, bool)          { return AsNumber(n) }
func (Adapter) AsBigFloat(n *Node) (*big.Float, bool)    { return AsBigFloat(n) }
func (Adapter) AsBool(n *Node) (bool, bool)              { return AsBool(n) }
func (Adapter) Unwrap(n *Node, reduceBigDecimals bool) any { return Unwrap(n, reduceBigDecimals) }

func (Adapter) ToString(n *Node) (string, error) { return ToString(n) }
