package jnode

import (
	"fmt"
	"math/big"
	"strconv"
)

func errUnwrappable(v any) error {
	return fmt.Errorf("jnode: cannot wrap value of type %T", v)
}

// AsString renders n as the numeric-string rule requires when n is a
// Number (no fractional part if whole, no scientific notation, trailing
// zeros stripped otherwise) or boolean ("true"/"false"), and returns n's
// own text for a String node. Any other kind reports ok=false.
func AsString(n *Node) (string, bool) {
	switch KindOf(n) {
	case String:
		return n.str, true
	case Number:
		return renderNumberText(n.num), true
	case Bool:
		if n.b {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// renderNumberText applies the numeric-string rule to n's raw decimal
// text, handling the case where the text itself is in scientific notation
// (as produced by some JSON encoders) by first narrowing through
// big.Float and re-rendering in plain decimal form.
func renderNumberText(raw string) string {
	if looksScientific(raw) {
		if f, ok := new(big.Float).SetString(raw); ok {
			return normalizeDecimalText(f.Text('f', -1))
		}
	}
	return normalizeDecimalText(raw)
}

func looksScientific(s string) bool {
	for _, c := range s {
		if c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

// AsNumber returns n's raw decimal text for a Number node.
func AsNumber(n *Node) (string, bool) {
	if KindOf(n) != Number {
		return "", false
	}
	return n.num, true
}

// AsBigFloat narrows a Number node to a *big.Float at full precision of
// its decimal text. This is the "explicit narrowing call" the spec allows;
// it is never performed implicitly.
func AsBigFloat(n *Node) (*big.Float, bool) {
	if KindOf(n) != Number {
		return nil, false
	}
	// About 3.33 bits per decimal digit; 4 per character plus headroom keeps
	// distinct decimal texts distinct.
	prec := uint(len(n.num))*4 + 64
	f, ok := new(big.Float).SetPrec(prec).SetString(n.num)
	if !ok {
		return nil, false
	}
	return f, true
}

// AsBool returns n's boolean value.
func AsBool(n *Node) (bool, bool) {
	if KindOf(n) != Bool {
		return false, false
	}
	return n.b, true
}

// Unwrap converts n to a native Go value: nil, bool, string, float64/int64
// (Number, narrowed only when reduceBigDecimals is set — otherwise Number
// unwraps to json.Number-compatible string text), []any, or map[string]any.
func Unwrap(n *Node, reduceBigDecimals bool) any {
	switch KindOf(n) {
	case Null:
		return nil
	case Bool:
		return n.b
	case String:
		return n.str
	case Number:
		if !reduceBigDecimals {
			return n.num
		}
		if i, err := strconv.ParseInt(n.num, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(n.num, 64)
		return f
	case Array:
		out := make([]any, len(n.arr))
		for i, e := range n.arr {
			out[i] = Unwrap(e, reduceBigDecimals)
		}
		return out
	case Object:
		out := make(map[string]any, len(n.keys))
		for i, k := range n.keys {
			out[k] = Unwrap(n.vals[i], reduceBigDecimals)
		}
		return out
	default:
		return nil
	}
}
