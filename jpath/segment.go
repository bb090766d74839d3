// Package jpath tokenizes the dotted/bracketed path language of spec.md
// §4.B into an ordered sequence of segments, consumable from the front (by
// the deep merge engine) or the back (by wrap_remaining-style leaf
// construction). It is grounded on the teacher's go-tony/ir/kpath bracket-
// and-quote balance scanning, generalized to drop kind-encoding: a segment
// here is either a bare member name or the raw text of a bracketed
// selector (quotes included), handed whole to the downstream JSONPath
// engine rather than parsed into an index/wildcard here.
package jpath

// Kind distinguishes a plain dotted member name from a bracketed selector.
type Kind int

const (
	// Name is a bare "."-separated member name.
	Name Kind = iota
	// Selector is the raw text between a "[" and its matching "]",
	// including any quotes — left for the downstream JSONPath engine to
	// interpret.
	Selector
)

// Segment is one token of a tokenized path.
type Segment struct {
	Kind Kind
	Text string
}
