package patch

import (
	"strconv"

	"github.com/jnodes/jnodes/jnode"
	"github.com/jnodes/jnodes/jsonerr"
	"github.com/jnodes/jnodes/jsonptr"
)

// locate walks path's tokens but the last one, returning the container
// that should hold the final token (parent == nil means path addresses
// the document root itself).
func locate(doc *jnode.Node, path string) (parent *jnode.Node, last string, err error) {
	toks, err := jsonptr.Parse(path)
	if err != nil {
		return nil, "", jsonerr.PathSyntaxError
	}
	if len(toks) == 0 {
		return nil, "", nil
	}
	cur := doc
	for _, t := range toks[:len(toks)-1] {
		cur, err = step(cur, t)
		if err != nil {
			return nil, "", err
		}
	}
	return cur, toks[len(toks)-1], nil
}

func step(cur *jnode.Node, token string) (*jnode.Node, error) {
	switch jnode.KindOf(cur) {
	case jnode.Object:
		v, ok := jnode.Get(cur, token)
		if !ok {
			return nil, jsonerr.TargetMissing
		}
		return v, nil
	case jnode.Array:
		idx, err := arrayReadIndex(token, jnode.Size(cur))
		if err != nil {
			return nil, err
		}
		v, _ := jnode.Index(cur, idx)
		return v, nil
	default:
		return nil, jsonerr.TypeMismatch
	}
}

// arrayReadIndex resolves a reference token to an existing element's
// index: 0 <= i < size. "-" is not valid here (it only denotes an
// insertion point).
func arrayReadIndex(token string, size int) (int, error) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 || i >= size {
		return 0, jsonerr.IndexOutOfBounds
	}
	return i, nil
}

// arrayInsertIndex resolves a reference token to an insertion point:
// 0 <= i <= size, or size itself if token is "-".
func arrayInsertIndex(token string, size int) (int, error) {
	if jsonptr.IsArrayAppend(token) {
		return size, nil
	}
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 || i > size {
		return 0, jsonerr.IndexOutOfBounds
	}
	return i, nil
}

// isProperPrefix reports whether from's tokens are a strict prefix of
// path's tokens — the "move into its own descendant" check.
func isProperPrefix(from, path string) bool {
	fromToks, err1 := jsonptr.Parse(from)
	pathToks, err2 := jsonptr.Parse(path)
	if err1 != nil || err2 != nil || len(fromToks) >= len(pathToks) {
		return false
	}
	for i, t := range fromToks {
		if pathToks[i] != t {
			return false
		}
	}
	return true
}
