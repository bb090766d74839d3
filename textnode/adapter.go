// Package textnode is the string-mutation-library Document Model Adapter
// backend of SPEC_FULL.md §3/§4.A: it keeps every node as the raw JSON
// text of its subtree and performs every access/mutation by running a
// path expression against that text with github.com/tidwall/gjson (reads)
// and github.com/tidwall/sjson (writes), rather than building an
// in-memory tree the way jnode does. Grounded on the gjson/sjson usage in
// dhawalhost-nqjson/benchmark/{get,set}_bench_test.go and
// other_examples/deckhouse-virtualization__json.go (GetBytes/ParseBytes/
// SetBytes/SetRawBytes/DeleteBytes).
//
// Because nothing is narrowed until AsString/AsNumber/AsBigFloat/Unwrap
// are called, this backend — unlike gabsnode — keeps jnode's
// arbitrary-precision guarantee for free: the decimal text sjson/gjson
// pass around is whatever the source document wrote. Object key order is
// also preserved, via gjson.Result.ForEach's source-order iteration
// rather than its order-losing Map().
package textnode

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jnodes/jnodes/adapter"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Node is a subtree's raw JSON text. It is mutated in place by Set,
// Append, Insert, RemoveKey and RemoveAt. Unlike jnode, Get, Entries,
// Elements and Index return detached copies of a child's text, so
// mutating a returned child does not change its parent.
type Node struct {
	raw []byte
}

func newNode(raw []byte) *Node { return &Node{raw: raw} }

func (n *Node) result() gjson.Result { return gjson.ParseBytes(n.raw) }

// Adapter implements adapter.Adapter[*Node].
type Adapter struct{}

var _ adapter.Adapter[*Node] = Adapter{}

func (Adapter) KindOf(n *Node) adapter.Kind {
	if n == nil {
		return adapter.Null
	}
	res := n.result()
	switch res.Type {
	case gjson.Null:
		return adapter.Null
	case gjson.True, gjson.False:
		return adapter.Bool
	case gjson.Number:
		return adapter.Number
	case gjson.String:
		return adapter.String
	}
	if res.IsArray() {
		return adapter.Array
	}
	if res.IsObject() {
		return adapter.Object
	}
	return adapter.Null
}

func (a Adapter) IsString(n *Node) bool { return a.KindOf(n) == adapter.String }
func (a Adapter) IsNumber(n *Node) bool { return a.KindOf(n) == adapter.Number }
func (a Adapter) IsBool(n *Node) bool   { return a.KindOf(n) == adapter.Bool }
func (a Adapter) IsNull(n *Node) bool   { return a.KindOf(n) == adapter.Null }
func (a Adapter) IsArray(n *Node) bool  { return a.KindOf(n) == adapter.Array }
func (a Adapter) IsObject(n *Node) bool { return a.KindOf(n) == adapter.Object }

func (Adapter) NullNode() *Node { return newNode([]byte("null")) }

func (Adapter) Wrap(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return newNode([]byte("null")), nil
	case json.Number:
		return newNode([]byte(string(x))), nil
	case string:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		return newNode(raw), nil
	case bool, int, int64, float64:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		return newNode(raw), nil
	default:
		return nil, fmt.Errorf("textnode: cannot wrap value of type %T", v)
	}
}

func (Adapter) Parse(text string) (*Node, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("textnode: invalid JSON text")
	}
	return newNode([]byte(text)), nil
}

func (Adapter) Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	cp := make([]byte, len(n.raw))
	copy(cp, n.raw)
	return newNode(cp)
}

func (Adapter) NewObject() *Node { return newNode([]byte("{}")) }
func (Adapter) NewArray() *Node  { return newNode([]byte("[]")) }

func (a Adapter) Size(n *Node) int {
	switch a.KindOf(n) {
	case adapter.Array:
		return len(n.result().Array())
	case adapter.Object:
		count := 0
		n.result().ForEach(func(_, _ gjson.Result) bool { count++; return true })
		return count
	default:
		return 0
	}
}

func (a Adapter) IsEmpty(n *Node) bool { return a.Size(n) == 0 }

func (a Adapter) Get(obj *Node, key string) (*Node, bool) {
	if !a.IsObject(obj) {
		return nil, false
	}
	res := obj.result().Get(gjson.Escape(key))
	if !res.Exists() {
		return nil, false
	}
	return newNode([]byte(res.Raw)), true
}

func (a Adapter) Has(obj *Node, key string) bool {
	if !a.IsObject(obj) {
		return false
	}
	return obj.result().Get(gjson.Escape(key)).Exists()
}

// Entries walks obj's keys in source order via gjson's ForEach, unlike
// gjson.Result.Map() which loses order behind a Go map.
func (a Adapter) Entries(obj *Node) []adapter.Entry[*Node] {
	if !a.IsObject(obj) {
		return nil
	}
	var out []adapter.Entry[*Node]
	obj.result().ForEach(func(key, value gjson.Result) bool {
		out = append(out, adapter.Entry[*Node]{Key: key.String(), Value: newNode([]byte(value.Raw))})
		return true
	})
	return out
}

func (a Adapter) Elements(arr *Node) []*Node {
	if !a.IsArray(arr) {
		return nil
	}
	els := arr.result().Array()
	out := make([]*Node, len(els))
	for i, e := range els {
		out[i] = newNode([]byte(e.Raw))
	}
	return out
}

func (a Adapter) Index(arr *Node, i int) (*Node, bool) {
	els := a.Elements(arr)
	if i < 0 || i >= len(els) {
		return nil, false
	}
	return els[i], true
}

func (Adapter) Set(obj *Node, key string, val *Node) {
	if obj == nil || val == nil {
		return
	}
	out, err := sjson.SetRawBytes(obj.raw, gjson.Escape(key), val.raw)
	if err != nil {
		return
	}
	obj.raw = out
}

// Append adds val to the end of arr via sjson's "-1" append path.
func (Adapter) Append(arr *Node, val *Node) {
	if arr == nil || val == nil {
		return
	}
	out, err := sjson.SetRawBytes(arr.raw, "-1", val.raw)
	if err != nil {
		return
	}
	arr.raw = out
}

// Insert splices val into arr before index i, shifting later elements —
// sjson's own Set only overwrites-or-extends by index, so the shift is
// done by rebuilding the array's raw text from its current elements.
func (a Adapter) Insert(arr *Node, i int, val *Node) {
	if !a.IsArray(arr) || val == nil {
		return
	}
	els := arr.result().Array()
	if i < 0 || i > len(els) {
		return
	}
	parts := make([]string, 0, len(els)+1)
	for _, e := range els[:i] {
		parts = append(parts, e.Raw)
	}
	parts = append(parts, string(val.raw))
	for _, e := range els[i:] {
		parts = append(parts, e.Raw)
	}
	arr.raw = []byte("[" + strings.Join(parts, ",") + "]")
}

func (Adapter) RemoveKey(obj *Node, key string) {
	if obj == nil {
		return
	}
	out, err := sjson.DeleteBytes(obj.raw, gjson.Escape(key))
	if err != nil {
		return
	}
	obj.raw = out
}

func (a Adapter) RemoveAt(arr *Node, i int) {
	if !a.IsArray(arr) {
		return
	}
	els := arr.result().Array()
	if i < 0 || i >= len(els) {
		return
	}
	parts := make([]string, 0, len(els)-1)
	for j, e := range els {
		if j == i {
			continue
		}
		parts = append(parts, e.Raw)
	}
	arr.raw = []byte("[" + strings.Join(parts, ",") + "]")
}

func (a Adapter) AsString(n *Node) (string, bool) {
	switch a.KindOf(n) {
	case adapter.String:
		return n.result().String(), true
	case adapter.Bool:
		if n.result().Bool() {
			return "true", true
		}
		return "false", true
	case adapter.Number:
		return renderNumberText(n.result().Raw), true
	default:
		return "", false
	}
}

func (a Adapter) AsNumber(n *Node) (string, bool) {
	if a.KindOf(n) != adapter.Number {
		return "", false
	}
	return n.result().Raw, true
}

func (a Adapter) AsBigFloat(n *Node) (*big.Float, bool) {
	if a.KindOf(n) != adapter.Number {
		return nil, false
	}
	raw := n.result().Raw
	f, ok := new(big.Float).SetPrec(uint(len(raw))*4 + 64).SetString(raw)
	if !ok {
		return nil, false
	}
	return f, true
}

func (a Adapter) AsBool(n *Node) (bool, bool) {
	if a.KindOf(n) != adapter.Bool {
		return false, false
	}
	return n.result().Bool(), true
}

func (a Adapter) Unwrap(n *Node, reduceBigDecimals bool) any {
	return unwrap(n.result(), reduceBigDecimals)
}

func unwrap(res gjson.Result, reduceBigDecimals bool) any {
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.String:
		return res.String()
	case gjson.Number:
		if !reduceBigDecimals {
			return res.Raw
		}
		if i, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
			return i
		}
		return res.Float()
	}
	if res.IsArray() {
		els := res.Array()
		out := make([]any, len(els))
		for i, e := range els {
			out[i] = unwrap(e, reduceBigDecimals)
		}
		return out
	}
	if res.IsObject() {
		out := map[string]any{}
		res.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = unwrap(value, reduceBigDecimals)
			return true
		})
		return out
	}
	return nil
}

func (Adapter) ToString(n *Node) (string, error) {
	if n == nil {
		return "null", nil
	}
	return string(n.raw), nil
}

// renderNumberText applies the numeric-string rule: scientific notation is
// expanded to plain decimal, a whole number loses its fractional part, and
// a decimal loses its trailing zeros.
func renderNumberText(raw string) string {
	s := raw
	if strings.ContainsAny(s, "eE") {
		f, ok := new(big.Float).SetString(s)
		if !ok {
			return raw
		}
		s = f.Text('f', -1)
	}
	if strings.IndexByte(s, '.') != -1 {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
