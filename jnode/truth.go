package jnode

import (
	"strings"

	"github.com/jnodes/jnodes/config"
)

// Truthy evaluates n under the spec's JS-style truthiness rules (default),
// grounded on the teacher's ir.Truth. When strict is true, strings are
// evaluated with Boolean.parseBoolean semantics ("strict" mode: true only
// for "true", compared case-insensitively) instead of
// non-empty-string-is-truthy.
func Truthy(n *Node, strict bool) bool {
	switch KindOf(n) {
	case Object:
		return len(n.keys) != 0
	case Array:
		return len(n.arr) != 0
	case Bool:
		return n.b
	case Number:
		f, ok := AsBigFloat(n)
		if !ok {
			return n.num != ""
		}
		return f.Sign() != 0
	case String:
		if strict {
			return strings.EqualFold(n.str, "true")
		}
		return n.str != ""
	case Null:
		return false
	default:
		return false
	}
}

// TruthyWithConfig evaluates n's truthiness under cfg's dialect: strings
// follow JavaScript's non-empty-string-is-truthy rule when
// cfg.JavascriptTruthiness is set (the default), or Boolean.parseBoolean
// "strict" semantics otherwise.
func TruthyWithConfig(n *Node, cfg config.Options) bool {
	return Truthy(n, !cfg.JavascriptTruthiness)
}
