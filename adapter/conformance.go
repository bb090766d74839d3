package adapter

// T is the subset of *testing.T the conformance suite needs, so this
// file can be imported from another package's _test.go without pulling
// in "testing" as a non-test dependency of this package's own build.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// RunConformance exercises the classification / construction / access /
// mutation / extraction / serialization matrix identically against any
// Adapter[N], so jnode, gabsnode and textnode can all be checked against
// the same table instead of three hand-written near-duplicates.
func RunConformance[N any](t T, a Adapter[N]) {
	t.Helper()
	runClassification(t, a)
	runConstruction(t, a)
	runAccess(t, a)
	runMutation(t, a)
	runExtraction(t, a)
	runSerialization(t, a)
}

func runClassification[N any](t T, a Adapter[N]) {
	t.Helper()
	doc, err := a.Parse(`{"s":"x","n":1,"b":true,"z":null,"arr":[1,2],"o":{"k":1}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		key  string
		kind Kind
	}{
		{"s", String}, {"n", Number}, {"b", Bool}, {"z", Null}, {"arr", Array}, {"o", Object},
	}
	for _, c := range cases {
		v, ok := a.Get(doc, c.key)
		if !ok {
			t.Errorf("Get(%q): missing", c.key)
			continue
		}
		if got := a.KindOf(v); got != c.kind {
			t.Errorf("KindOf(%q) = %v, want %v", c.key, got, c.kind)
		}
	}
}

func runConstruction[N any](t T, a Adapter[N]) {
	t.Helper()
	if !a.IsNull(a.NullNode()) {
		t.Errorf("NullNode() is not classified Null")
	}
	if !a.IsObject(a.NewObject()) {
		t.Errorf("NewObject() is not classified Object")
	}
	if !a.IsArray(a.NewArray()) {
		t.Errorf("NewArray() is not classified Array")
	}
	orig, err := a.Parse(`{"a":1}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	clone := a.Clone(orig)
	v, _ := a.Wrap(int64(9))
	a.Set(clone, "a", v)
	origA, _ := a.Get(orig, "a")
	s, _ := a.AsNumber(origA)
	if s != "1" {
		t.Errorf("Clone aliased the source: original a = %q, want %q", s, "1")
	}
}

func runAccess[N any](t T, a Adapter[N]) {
	t.Helper()
	obj, err := a.Parse(`{"a":1,"b":2}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Size(obj) != 2 {
		t.Errorf("Size(obj) = %d, want 2", a.Size(obj))
	}
	if a.IsEmpty(obj) {
		t.Errorf("IsEmpty(obj) = true, want false")
	}
	if !a.Has(obj, "a") {
		t.Errorf("Has(obj, %q) = false, want true", "a")
	}
	if a.Has(obj, "missing") {
		t.Errorf("Has(obj, %q) = true, want false", "missing")
	}
	if _, ok := a.Get(obj, "missing"); ok {
		t.Errorf("Get(obj, %q) ok = true, want false", "missing")
	}
	if len(a.Entries(obj)) != 2 {
		t.Errorf("len(Entries(obj)) = %d, want 2", len(a.Entries(obj)))
	}

	arr, err := a.Parse(`[10,20,30]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Size(arr) != 3 {
		t.Errorf("Size(arr) = %d, want 3", a.Size(arr))
	}
	if len(a.Elements(arr)) != 3 {
		t.Errorf("len(Elements(arr)) = %d, want 3", len(a.Elements(arr)))
	}
	mid, ok := a.Index(arr, 1)
	if !ok {
		t.Errorf("Index(arr, 1) ok = false, want true")
	} else if s, _ := a.AsNumber(mid); s != "20" {
		t.Errorf("Index(arr, 1) = %q, want %q", s, "20")
	}
	if _, ok := a.Index(arr, 9); ok {
		t.Errorf("Index(arr, 9) ok = true, want false")
	}
}

func runMutation[N any](t T, a Adapter[N]) {
	t.Helper()
	obj, err := a.Parse(`{"a":1}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v2, _ := a.Wrap(int64(2))
	a.Set(obj, "b", v2)
	if !a.Has(obj, "b") {
		t.Errorf("Set did not add key %q", "b")
	}
	a.RemoveKey(obj, "a")
	if a.Has(obj, "a") {
		t.Errorf("RemoveKey did not remove key %q", "a")
	}

	arr, err := a.Parse(`[1,3]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v2b, _ := a.Wrap(int64(2))
	a.Insert(arr, 1, v2b)
	if a.Size(arr) != 3 {
		t.Errorf("Insert: Size(arr) = %d, want 3", a.Size(arr))
	}
	if mid, ok := a.Index(arr, 1); !ok {
		t.Errorf("Insert: Index(arr, 1) missing")
	} else if s, _ := a.AsNumber(mid); s != "2" {
		t.Errorf("Insert: Index(arr, 1) = %q, want %q", s, "2")
	}

	v4, _ := a.Wrap(int64(4))
	a.Append(arr, v4)
	if a.Size(arr) != 4 {
		t.Errorf("Append: Size(arr) = %d, want 4", a.Size(arr))
	}
	last, _ := a.Index(arr, 3)
	if s, _ := a.AsNumber(last); s != "4" {
		t.Errorf("Append: last element = %q, want %q", s, "4")
	}

	a.RemoveAt(arr, 0)
	if a.Size(arr) != 3 {
		t.Errorf("RemoveAt: Size(arr) = %d, want 3", a.Size(arr))
	}
	first, _ := a.Index(arr, 0)
	if s, _ := a.AsNumber(first); s != "2" {
		t.Errorf("RemoveAt: first element = %q, want %q", s, "2")
	}
}

// runExtraction is the numeric-string rule conformance requirement of
// SPEC_FULL.md §8: whole numbers render without a fractional part or
// scientific notation, decimals strip trailing zeros, booleans render as
// "true"/"false".
func runExtraction[N any](t T, a Adapter[N]) {
	t.Helper()
	doc, err := a.Parse(`{"whole":3,"frac":2.5,"t":true,"f":false,"s":"hi"}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		key  string
		want string
	}{
		{"whole", "3"}, {"frac", "2.5"}, {"t", "true"}, {"f", "false"}, {"s", "hi"},
	}
	for _, c := range cases {
		v, ok := a.Get(doc, c.key)
		if !ok {
			t.Errorf("Get(%q): missing", c.key)
			continue
		}
		got, ok := a.AsString(v)
		if !ok {
			t.Errorf("AsString(%q): ok = false", c.key)
			continue
		}
		if got != c.want {
			t.Errorf("AsString(%q) = %q, want %q", c.key, got, c.want)
		}
	}

	whole, _ := a.Get(doc, "whole")
	if _, ok := a.AsBigFloat(whole); !ok {
		t.Errorf("AsBigFloat(whole) ok = false, want true")
	}
	s, _ := a.Get(doc, "s")
	if _, ok := a.AsBigFloat(s); ok {
		t.Errorf("AsBigFloat(s) ok = true, want false")
	}
	tv, _ := a.Get(doc, "t")
	if b, ok := a.AsBool(tv); !ok || !b {
		t.Errorf("AsBool(t) = (%v, %v), want (true, true)", b, ok)
	}
}

func runSerialization[N any](t T, a Adapter[N]) {
	t.Helper()
	doc, err := a.Parse(`{"a":1}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text, err := a.ToString(doc)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	reparsed, err := a.Parse(text)
	if err != nil {
		t.Fatalf("ToString output does not reparse: %v", err)
	}
	v, ok := a.Get(reparsed, "a")
	if !ok {
		t.Errorf("round-tripped document lost key %q", "a")
	}
	if s, _ := a.AsNumber(v); s != "1" {
		t.Errorf("round-tripped value = %q, want %q", s, "1")
	}
}
