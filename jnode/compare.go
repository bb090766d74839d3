package jnode

import (
	"cmp"
	"strings"

	"github.com/jnodes/jnodes/config"
)

// Compare returns a total-ish ordering over Nodes, grounded on the
// teacher's ir.Compare (rank the Kind, then compare within-kind) but
// adapted to spec.md §4.F's shallower rule: arrays compare by length,
// objects by size, never by recursing into elements/entries. When the two
// nodes are of incomparable kinds, Compare returns 0 ("equal") rather than
// an error — deliberately, to keep sorts over mixed-kind arrays stable;
// jnode never surfaces a TypeMismatch for this case.
func Compare(a, b *Node) int {
	ka, kb := KindOf(a), KindOf(b)
	if ka == Null && kb == Null {
		return 0
	}
	if ka == Null {
		return -1
	}
	if kb == Null {
		return 1
	}
	if ka != kb {
		// Incomparable kinds: stable "equal".
		return 0
	}
	switch ka {
	case Number:
		return compareNumbers(a, b)
	case String:
		return strings.Compare(a.str, b.str)
	case Bool:
		return cmp.Compare(boolRank(a.b), boolRank(b.b))
	case Array:
		return cmp.Compare(len(a.arr), len(b.arr))
	case Object:
		return cmp.Compare(len(a.keys), len(b.keys))
	default:
		return 0
	}
}

// CompareWithConfig compares a and b as cfg.Comparator's forced kind
// instead of inferring the comparator from the nodes' own Kind;
// config.Auto (the default) falls back to Compare's own kind-inferring
// behavior.
func CompareWithConfig(a, b *Node, cfg config.Options) int {
	switch cfg.Comparator {
	case config.StringComparator:
		sa, _ := AsString(a)
		sb, _ := AsString(b)
		return strings.Compare(sa, sb)
	case config.NumberComparator:
		fa, okA := AsBigFloat(a)
		fb, okB := AsBigFloat(b)
		if !okA || !okB {
			return 0
		}
		return fa.Cmp(fb)
	case config.BoolComparator:
		ba, _ := AsBool(a)
		bb, _ := AsBool(b)
		return cmp.Compare(boolRank(ba), boolRank(bb))
	default:
		return Compare(a, b)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareNumbers compares via big.Float so the comparator honors
// arbitrary-precision semantics instead of lossy float64 comparison; falls
// back to "equal" if either operand's decimal text fails to parse (should
// not happen for well-formed Number nodes).
func compareNumbers(a, b *Node) int {
	fa, ok := AsBigFloat(a)
	if !ok {
		return 0
	}
	fb, ok := AsBigFloat(b)
	if !ok {
		return 0
	}
	return fa.Cmp(fb)
}
