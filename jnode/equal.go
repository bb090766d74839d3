package jnode

// DeepEqual implements the deep-equality rule spec.md §4.E requires for
// the JSON Patch "test" operation (and reused by merge's idempotence
// check): same Kind; for Arrays, same length and pairwise equal elements
// in order; for Objects, same key set and equal values per key
// (order-insensitive); for Numbers, numerical equality under arbitrary
// precision; for Strings/Bools/Null, value equality.
func DeepEqual(a, b *Node) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case String:
		return a.str == b.str
	case Number:
		fa, aok := AsBigFloat(a)
		fb, bok := AsBigFloat(b)
		if !aok || !bok {
			return a.num == b.num
		}
		return fa.Cmp(fb) == 0
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !DeepEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			bv, ok := Get(b, k)
			if !ok || !DeepEqual(a.vals[i], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
