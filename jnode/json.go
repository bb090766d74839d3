package jnode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes text into a Node tree. It token-walks the input with a
// stdlib json.Decoder (UseNumber) rather than unmarshaling into
// map[string]any, because the latter loses object key order — and this
// package's core invariant is that Object iteration order equals
// insertion order. Numbers keep their original decimal text verbatim,
// satisfying the arbitrary-precision-until-narrowed rule.
func Parse(text string) (*Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("jnode: parse: %w", err)
	}
	return n, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				Set(obj, key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				Append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case nil:
		return NullNode(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case json.Number:
		return FromNumberText(string(v)), nil
	default:
		return nil, fmt.Errorf("unexpected token %#v", tok)
	}
}

// ToString renders n as canonical JSON text: objects keep insertion order,
// numbers keep their raw decimal text, strings are escaped via the stdlib
// encoder so control characters and unicode are handled identically to
// every other JSON producer in the ecosystem.
func ToString(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := writeNode(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNode(buf *bytes.Buffer, n *Node) error {
	switch KindOf(n) {
	case Null:
		buf.WriteString("null")
	case Bool:
		if n.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		if n.num == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(n.num)
		}
	case String:
		return writeJSONString(buf, n.str)
	case Array:
		buf.WriteByte('[')
		for i, e := range n.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNode(buf, n.vals[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jnode: cannot serialize kind %v", KindOf(n))
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
