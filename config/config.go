// Package config holds the configuration surface shared across the module:
// the resolver's reduce-to-native-numerics flag, the truthiness dialect, and
// the per-call comparator kind override. It follows the same small
// functional-options-over-a-struct shape as the teacher's mergeop.OpContext.
package config

// ComparatorType selects which kind a comparator call should treat its
// operands as, instead of inferring it from the node's own kind.
type ComparatorType int

const (
	// Auto infers the comparator kind from the node itself (the default).
	Auto ComparatorType = iota
	StringComparator
	NumberComparator
	BoolComparator
)

// Options is the configuration surface of spec §6: the resolver's unwrap
// behavior, the truthiness dialect, and the default comparator kind.
type Options struct {
	// ReduceBigDecimals, when set, makes the resolver's unwrap step narrow
	// high-precision numerics to native float64/int64 before returning them.
	ReduceBigDecimals bool

	// JavascriptTruthiness selects JS-style truthiness (default) over
	// Boolean.parseBoolean-style "strict" truthiness for strings.
	JavascriptTruthiness bool

	// Comparator is the default comparator kind used when a call site
	// does not name one explicitly.
	Comparator ComparatorType
}

// Option mutates an Options value during construction.
type Option func(*Options)

// Default returns the configuration surface's default values:
// javascript truthiness on, reduce-big-decimals off, comparator Auto.
func Default() Options {
	return Options{JavascriptTruthiness: true}
}

// New builds an Options starting from Default and applying opts in order.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReduceBigDecimals turns on narrowing of high-precision numerics at
// resolver unwrap time.
func WithReduceBigDecimals() Option {
	return func(o *Options) { o.ReduceBigDecimals = true }
}

// WithStrictTruthiness switches string truthiness to Boolean.parseBoolean
// semantics instead of JavaScript's non-empty-string-is-truthy rule.
func WithStrictTruthiness() Option {
	return func(o *Options) { o.JavascriptTruthiness = false }
}

// WithComparator forces a comparator kind instead of Auto.
func WithComparator(t ComparatorType) Option {
	return func(o *Options) { o.Comparator = t }
}

// Clone returns a shallow copy; Options has no reference fields so this is
// just value-copy, kept for symmetry with callers that held a *Options.
func (o Options) Clone() Options {
	return o
}
