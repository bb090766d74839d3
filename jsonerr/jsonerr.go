// Package jsonerr defines the sentinel error kinds returned by resolve and
// patch. Call sites wrap one of these with fmt.Errorf("...: %w", ...)
// so callers can still errors.Is against the kind.
package jsonerr

import "errors"

var (
	// PathSyntaxError marks an invalid JSON Pointer or path reference.
	PathSyntaxError = errors.New("path syntax error")

	// TargetMissing marks a remove/replace/test/move-from addressing a
	// location that does not exist.
	TargetMissing = errors.New("target missing")

	// IndexOutOfBounds marks an array index outside the operation's
	// allowed range.
	IndexOutOfBounds = errors.New("index out of bounds")

	// TypeMismatch marks traversal through a non-container, or a
	// type-dependent comparison on an incomparable value. The comparator
	// suppresses this internally to "equal"; it is never observed by
	// callers of jnode.Compare.
	TypeMismatch = errors.New("type mismatch")

	// TestFailed marks a JSON Patch "test" operation whose value did not
	// match.
	TestFailed = errors.New("test failed")

	// IllegalMove marks a "move" operation whose "from" is a proper
	// prefix of "path".
	IllegalMove = errors.New("illegal move")

	// UnknownOp marks an unrecognized patch operation name.
	UnknownOp = errors.New("unknown op")

	// ResolverError marks a malformed JSONPath expression or a failed
	// secondary-document materialization.
	ResolverError = errors.New("resolver error")
)
