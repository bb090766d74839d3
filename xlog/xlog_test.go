package xlog

import "testing"

// These switches are gated by environment variables read once, on the
// first call into this package, so the tests here only confirm the gated helpers are
// safe to call and read back a consistent logger, not that the env
// vars actually flip them (that would require re-executing the test
// binary with a different environment).

func TestSwitchesAndLoggersAreUsable(t *testing.T) {
	_ = Merge()
	_ = Patch()
	_ = Resolve()
	_ = Op()

	if L() == nil {
		t.Fatal("L() returned nil logger")
	}
	if S() == nil {
		t.Fatal("S() returned nil sugared logger")
	}
}

func TestScopedHelpersDoNotPanicWhenDisabled(t *testing.T) {
	Opf("op %d", 1)
	Mergef("merge %q", "a")
	Patchf("patch %q", "b")
	Resolvef("resolve %q", "c")
}
