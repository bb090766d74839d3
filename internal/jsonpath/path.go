// Package jsonpath evaluates a jayway-style, "$"-rooted JSONPath against
// a *jnode.Node tree: dot fields, bracket index, bracket wildcard, and
// recursive descent "..". It is internal because only the Parameter
// Resolver needs JSONPath evaluation — everything else in this module
// walks jnode.Node directly through the adapter operations. Grounded on
// the teacher's ir/path.go (ParsePath/GetPath/ListPath), generalized from
// its single-quoted-field/index/wildcard/subtree linked-list grammar to
// operate over jnode.Node instead of the teacher's ir.Node.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jnodes/jnodes/jnode"
)

// Path is one node of a linked-list JSONPath AST, mirroring the
// teacher's ir.Path shape.
type Path struct {
	Field    *string
	Index    *int
	IndexAll bool
	Subtree  bool
	Next     *Path
}

// ParsePath parses a "$"-rooted JSONPath string.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("jsonpath: path %q must start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if len(rest) > 0 && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("jsonpath: unterminated '['")
		}
		body := frag[1 : i+1]
		if len(body) > 0 && (body[0] == '\'' || body[0] == '"') {
			field, err := parseQuotedBody(body)
			if err != nil {
				return err
			}
			parent.Field = &field
		} else {
			index, all, err := parseIndex(body)
			if err != nil {
				return err
			}
			parent.IndexAll = all
			if !all {
				parent.Index = &index
			}
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("jsonpath: expected '.' or '[' at %q", frag)
	}
}

func parseIndex(s string) (index int, all bool, err error) {
	if s == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("jsonpath: bad index %q: %w", s, err)
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("jsonpath: expected field name")
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

func parseQuotedBody(body string) (string, error) {
	quote := body[0]
	if len(body) < 2 || body[len(body)-1] != quote {
		return "", fmt.Errorf("jsonpath: unterminated quoted selector %q", body)
	}
	inner := body[1 : len(body)-1]
	var b strings.Builder
	escaped := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// Get evaluates a single-result path against root: wildcards and
// recursive descent are rejected, since those always denote a set.
func Get(root *jnode.Node, path string) (*jnode.Node, bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, false, err
	}
	return get(root, p)
}

func get(n *jnode.Node, p *Path) (*jnode.Node, bool, error) {
	for p != nil {
		if p.IndexAll {
			return nil, false, fmt.Errorf("jsonpath: wildcard not allowed in Get")
		}
		if p.Subtree {
			return nil, false, fmt.Errorf("jsonpath: recursive descent not allowed in Get")
		}
		switch {
		case p.Index != nil:
			if !n.IsArray() {
				return nil, false, fmt.Errorf("jsonpath: expected array, got %v", jnode.KindOf(n))
			}
			v, ok := jnode.Index(n, *p.Index)
			if !ok {
				return nil, false, nil
			}
			n, p = v, p.Next
		case p.Field != nil:
			if !n.IsObject() {
				return nil, false, fmt.Errorf("jsonpath: expected object, got %v", jnode.KindOf(n))
			}
			v, ok := jnode.Get(n, *p.Field)
			if !ok {
				return nil, false, nil
			}
			n, p = v, p.Next
		default:
			p = p.Next
		}
	}
	return n, true, nil
}

// IsDefinite reports whether path can match at most one node (no
// wildcard or recursive-descent segment) the way Jayway JsonPath
// distinguishes a "definite" path (read as a single value) from an
// indefinite one (always read as a list), even though this is parsed
// once and discarded rather than cached.
func IsDefinite(path string) (bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return false, err
	}
	for n := p; n != nil; n = n.Next {
		if n.IndexAll || n.Subtree {
			return false, nil
		}
	}
	return true, nil
}

// List evaluates path against root, returning every matching node.
// Unlike Get, wildcards and recursive descent are fully supported.
func List(root *jnode.Node, path string) ([]*jnode.Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return list(nil, root, p)
}

func list(dst []*jnode.Node, n *jnode.Node, p *Path) ([]*jnode.Node, error) {
	if p == nil {
		return append(dst, n), nil
	}
	if p.Subtree {
		var err error
		dst, err = visit(dst, n, p.Next)
		if err != nil {
			return nil, err
		}
		return dst, nil
	}
	switch jnode.KindOf(n) {
	case jnode.Object:
		if p.IndexAll || p.Index != nil {
			return dst, nil
		}
		if p.Field == nil {
			return append(dst, n), nil
		}
		v, ok := jnode.Get(n, *p.Field)
		if !ok {
			return dst, nil
		}
		return list(dst, v, p.Next)
	case jnode.Array:
		if p.Field != nil {
			return dst, nil
		}
		if p.Index != nil {
			v, ok := jnode.Index(n, *p.Index)
			if !ok {
				return dst, nil
			}
			return list(dst, v, p.Next)
		}
		if !p.IndexAll {
			return append(dst, n), nil
		}
		var err error
		for _, e := range jnode.Elements(n) {
			dst, err = list(dst, e, p.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	default:
		if p.Field != nil || p.Index != nil || p.IndexAll {
			return dst, nil
		}
		return append(dst, n), nil
	}
}

// visit walks every node in the tree rooted at n (itself included),
// applying the remainder of the path at each one — the "recursive
// descent" half of "..".
func visit(dst []*jnode.Node, n *jnode.Node, rest *Path) ([]*jnode.Node, error) {
	var err error
	dst, err = list(dst, n, rest)
	if err != nil {
		return nil, err
	}
	switch jnode.KindOf(n) {
	case jnode.Object:
		for _, e := range jnode.Entries(n) {
			dst, err = visit(dst, e.Value, rest)
			if err != nil {
				return nil, err
			}
		}
	case jnode.Array:
		for _, e := range jnode.Elements(n) {
			dst, err = visit(dst, e, rest)
			if err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}
