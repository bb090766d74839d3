// Package resolve implements the Parameter Resolver of spec.md §4.D: a
// six-step rule order turning a name string into a value, dispatching
// across a primary document and any number of registered secondary
// documents. Grounded on the teacher's eval.ExpandEnv env-threading
// shape for the overall "look up a name against a context" contract,
// and on internal/jsonpath (itself grounded on ir/path.go) for the
// primary/secondary document JSONPath evaluation.
package resolve

import (
	"fmt"
	"strings"

	"github.com/jnodes/jnodes/config"
	"github.com/jnodes/jnodes/internal/jsonpath"
	"github.com/jnodes/jnodes/jnode"
	"github.com/jnodes/jnodes/jsonerr"
	"github.com/jnodes/jnodes/xlog"
)

// Option mutates a Resolver at construction time.
type Option func(*Resolver)

// WithUnwrap makes Resolve's step 6 unwrap a Node result to a native Go
// value (honoring cfg.ReduceBigDecimals for numeric narrowing) instead
// of returning the *jnode.Node itself.
func WithUnwrap() Option {
	return func(r *Resolver) { r.unwrap = true }
}

// Resolver implements spec.md §4.D's resolve(name) -> value contract.
type Resolver struct {
	primary     *jnode.Node
	secondaries map[string]*secondaryEntry
	cfg         config.Options
	unwrap      bool
}

// New builds a Resolver over primary (the "$"-rooted document) using cfg
// for the reduce-big-decimals unwrap behavior.
func New(primary *jnode.Node, cfg config.Options, opts ...Option) *Resolver {
	r := &Resolver{
		primary:     primary,
		secondaries: make(map[string]*secondaryEntry),
		cfg:         cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds name as a secondary document's root key: primitive
// scalars are wrapped directly, everything else becomes a lazily
// materialized JSONPath context, per spec.md §4.D's secondary
// registration rule. name may be "$"- or "#"-rooted (e.g. "$env" or
// "#config"), matching whichever prefix callers will reference it by;
// a name with no prefix at all defaults to "$"-rooted for convenience.
func (r *Resolver) Register(name string, value any) {
	key := name
	if key == "" || (key[0] != '$' && key[0] != '#') {
		key = "$" + key
	}
	r.secondaries[key] = classify(value)
}

// Resolve evaluates name through the six-step rule order.
func (r *Resolver) Resolve(name string) (any, error) {
	// 1. Blank name -> return as-is.
	if strings.TrimSpace(name) == "" {
		return name, nil
	}

	// 2. Name does not begin with "$" or "#".
	if name[0] != '$' && name[0] != '#' {
		if strings.HasPrefix(name, `\$`) || strings.HasPrefix(name, `\#`) {
			return name[1:], nil
		}
		return name, nil
	}

	// 3. Short "#" macro, case-insensitive, length <= 5.
	if name[0] == '#' && len(name) <= 5 {
		if v, ok := shortMacro(strings.ToLower(name)); ok {
			xlog.Resolvef("resolve: macro %s", name)
			return r.finish(v)
		}
	}

	// 4. Regex-backreference guard: "$$" or "$<digit>".
	if len(name) >= 2 && name[1] == '$' {
		return name, nil
	}
	if len(name) >= 2 && name[1] >= '0' && name[1] <= '9' {
		return name, nil
	}

	// 5. Dispatch on root_key, the prefix up to the first "." or "[".
	rootKey := rootKeyOf(name)

	if entry, ok := r.secondaries[rootKey]; ok {
		doc, hasDoc, err := entry.materialize()
		if err != nil {
			return nil, wrapResolverError(err)
		}
		if !hasDoc {
			return r.finish(entry.scalar)
		}
		suffix := "$" + name[len(rootKey):]
		return r.evalPath(doc, suffix)
	}

	if rootKey != "$" {
		return name, nil
	}

	return r.evalPath(r.primary, name)
}

// evalPath reads path out of doc, dispatching to a single-result or a
// list-result JSONPath evaluation depending on whether path is
// definite, the same read()-vs-read(List.class) split Jayway JsonPath
// makes on the wildcard/".." segments.
func (r *Resolver) evalPath(doc *jnode.Node, path string) (any, error) {
	definite, err := jsonpath.IsDefinite(path)
	if err != nil {
		return nil, wrapResolverError(err)
	}
	if !definite {
		xlog.Resolvef("resolve: indefinite path %s", path)
		matches, err := jsonpath.List(doc, path)
		if err != nil {
			return nil, wrapResolverError(err)
		}
		result := jnode.NewArray()
		for _, m := range matches {
			jnode.Append(result, m)
		}
		return r.finish(result)
	}
	v, found, err := jsonpath.Get(doc, path)
	if err != nil {
		return nil, wrapResolverError(err)
	}
	if !found {
		return r.finish(jnode.NullNode())
	}
	return r.finish(v)
}

// wrapResolverError wraps a materialization or JSONPath evaluation
// failure surfaced during step 5 so callers can errors.Is against
// jsonerr.ResolverError regardless of the underlying cause.
func wrapResolverError(err error) error {
	return fmt.Errorf("resolve: %w: %v", jsonerr.ResolverError, err)
}

// finish applies step 6's optional unwrap.
func (r *Resolver) finish(v *jnode.Node) (any, error) {
	if r.unwrap {
		return jnode.Unwrap(v, r.cfg.ReduceBigDecimals), nil
	}
	return v, nil
}

func rootKeyOf(name string) string {
	i := strings.IndexAny(name, ".[")
	if i == -1 {
		return name
	}
	return name[:i]
}
