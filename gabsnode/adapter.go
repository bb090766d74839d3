// Package gabsnode is the object-graph-library Document Model Adapter
// backend of SPEC_FULL.md §3/§4.A: it wraps github.com/Jeffail/gabs/v2's
// *gabs.Container (itself a thin wrapper over encoding/json's default
// map[string]interface{}/[]interface{}/float64 unmarshal) behind the same
// adapter.Adapter[N] contract jnode satisfies, so callers that only need
// "a JSON document" rather than jnode's specific arbitrary-precision and
// order-preservation guarantees can use an established ecosystem library
// instead. Grounded on the gabs usage in
// dhawalhost-nqjson/benchmark/bench_test.go (ParseJSON/Path/S/Set/
// Children/ArrayAppend/Delete/Bytes).
//
// Known limitation: gabs stores objects as a plain Go map, so Entries
// does not preserve insertion order, and ParseJSON narrows numbers to
// float64 immediately — this backend cannot honor jnode's order- and
// precision-preservation invariants. It exists to prove the Adapter
// contract is genuinely backend-agnostic, not as a second primary store;
// merge/patch/resolve are wired to jnode.
package gabsnode

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/jnodes/jnodes/adapter"
)

// Adapter implements adapter.Adapter[*gabs.Container].
type Adapter struct{}

var _ adapter.Adapter[*gabs.Container] = Adapter{}

func (Adapter) KindOf(n *gabs.Container) adapter.Kind {
	if n == nil {
		return adapter.Null
	}
	switch n.Data().(type) {
	case nil:
		return adapter.Null
	case bool:
		return adapter.Bool
	case float64, json.Number, int, int64:
		return adapter.Number
	case string:
		return adapter.String
	case []interface{}:
		return adapter.Array
	case map[string]interface{}:
		return adapter.Object
	default:
		return adapter.Null
	}
}

func (a Adapter) IsString(n *gabs.Container) bool { return a.KindOf(n) == adapter.String }
func (a Adapter) IsNumber(n *gabs.Container) bool { return a.KindOf(n) == adapter.Number }
func (a Adapter) IsBool(n *gabs.Container) bool   { return a.KindOf(n) == adapter.Bool }
func (a Adapter) IsNull(n *gabs.Container) bool   { return a.KindOf(n) == adapter.Null }
func (a Adapter) IsArray(n *gabs.Container) bool  { return a.KindOf(n) == adapter.Array }
func (a Adapter) IsObject(n *gabs.Container) bool { return a.KindOf(n) == adapter.Object }

func (Adapter) NullNode() *gabs.Container {
	c := gabs.New()
	c.Set(nil)
	return c
}

func (Adapter) Wrap(v any) (*gabs.Container, error) {
	c := gabs.New()
	switch v.(type) {
	case nil, bool, string, int, int64, float64, []interface{}, map[string]interface{}:
		if _, err := c.Set(v); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("gabsnode: cannot wrap value of type %T", v)
	}
}

func (Adapter) Parse(text string) (*gabs.Container, error) {
	return gabs.ParseJSON([]byte(text))
}

func (Adapter) Clone(n *gabs.Container) *gabs.Container {
	if n == nil {
		return nil
	}
	data, err := json.Marshal(n.Data())
	if err != nil {
		return gabs.New()
	}
	c, err := gabs.ParseJSON(data)
	if err != nil {
		return gabs.New()
	}
	return c
}

func (Adapter) NewObject() *gabs.Container { return gabs.New() }

func (Adapter) NewArray() *gabs.Container {
	c := gabs.New()
	c.Set([]interface{}{})
	return c
}

func (a Adapter) Size(n *gabs.Container) int {
	switch a.KindOf(n) {
	case adapter.Array:
		return len(n.Data().([]interface{}))
	case adapter.Object:
		return len(n.Data().(map[string]interface{}))
	default:
		return 0
	}
}

func (a Adapter) IsEmpty(n *gabs.Container) bool { return a.Size(n) == 0 }

func (a Adapter) Get(obj *gabs.Container, key string) (*gabs.Container, bool) {
	if !a.IsObject(obj) || !obj.Exists(key) {
		return nil, false
	}
	return obj.S(key), true
}

func (a Adapter) Has(obj *gabs.Container, key string) bool {
	return a.IsObject(obj) && obj.Exists(key)
}

// Entries returns obj's entries sorted by key: gabs's underlying
// map[string]interface{} has no stable iteration order, so this backend
// cannot honor insertion-order preservation (see package doc).
func (a Adapter) Entries(obj *gabs.Container) []adapter.Entry[*gabs.Container] {
	if !a.IsObject(obj) {
		return nil
	}
	m := obj.ChildrenMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]adapter.Entry[*gabs.Container], len(keys))
	for i, k := range keys {
		out[i] = adapter.Entry[*gabs.Container]{Key: k, Value: m[k]}
	}
	return out
}

func (a Adapter) Elements(arr *gabs.Container) []*gabs.Container {
	if !a.IsArray(arr) {
		return nil
	}
	return arr.Children()
}

func (a Adapter) Index(arr *gabs.Container, i int) (*gabs.Container, bool) {
	els := a.Elements(arr)
	if i < 0 || i >= len(els) {
		return nil, false
	}
	return els[i], true
}

func (Adapter) Set(obj *gabs.Container, key string, val *gabs.Container) {
	if obj == nil || val == nil {
		return
	}
	obj.Set(val.Data(), key)
}

func (Adapter) Append(arr *gabs.Container, val *gabs.Container) {
	if arr == nil || val == nil {
		return
	}
	arr.ArrayAppend(val.Data())
}

func (a Adapter) Insert(arr *gabs.Container, i int, val *gabs.Container) {
	if !a.IsArray(arr) || val == nil {
		return
	}
	cur := arr.Data().([]interface{})
	if i < 0 || i > len(cur) {
		return
	}
	next := make([]interface{}, 0, len(cur)+1)
	next = append(next, cur[:i]...)
	next = append(next, val.Data())
	next = append(next, cur[i:]...)
	arr.Set(next)
}

func (Adapter) RemoveKey(obj *gabs.Container, key string) {
	if obj == nil {
		return
	}
	obj.Delete(key)
}

func (a Adapter) RemoveAt(arr *gabs.Container, i int) {
	if !a.IsArray(arr) {
		return
	}
	cur := arr.Data().([]interface{})
	if i < 0 || i >= len(cur) {
		return
	}
	next := make([]interface{}, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	arr.Set(next)
}

func (a Adapter) AsString(n *gabs.Container) (string, bool) {
	switch a.KindOf(n) {
	case adapter.String:
		return n.Data().(string), true
	case adapter.Bool:
		if n.Data().(bool) {
			return "true", true
		}
		return "false", true
	case adapter.Number:
		return formatNumber(n.Data()), true
	default:
		return "", false
	}
}

func (a Adapter) AsNumber(n *gabs.Container) (string, bool) {
	if a.KindOf(n) != adapter.Number {
		return "", false
	}
	return formatNumber(n.Data()), true
}

// AsBigFloat is lossy for this backend: gabs narrows every number to
// float64 at parse time, so precision beyond float64 is already gone by
// the time this call runs.
func (a Adapter) AsBigFloat(n *gabs.Container) (*big.Float, bool) {
	if a.KindOf(n) != adapter.Number {
		return nil, false
	}
	switch v := n.Data().(type) {
	case float64:
		return big.NewFloat(v), true
	case int:
		return new(big.Float).SetInt64(int64(v)), true
	case int64:
		return new(big.Float).SetInt64(v), true
	case json.Number:
		f, ok := new(big.Float).SetString(string(v))
		return f, ok
	default:
		return nil, false
	}
}

func (a Adapter) AsBool(n *gabs.Container) (bool, bool) {
	if a.KindOf(n) != adapter.Bool {
		return false, false
	}
	return n.Data().(bool), true
}

func (Adapter) Unwrap(n *gabs.Container, _ bool) any {
	if n == nil {
		return nil
	}
	return n.Data()
}

func (Adapter) ToString(n *gabs.Container) (string, error) {
	if n == nil {
		return "null", nil
	}
	return n.String(), nil
}

func formatNumber(v any) string {
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) && !strings.ContainsAny(strconv.FormatFloat(x, 'f', -1, 64), "eE") {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
