package pathfilter

import "testing"

func TestParseExtensions(t *testing.T) {
	filter := ParseExtensions("ts, .Go ,*.MD,,")

	if len(filter) != 3 {
		t.Fatalf("expected 3 extensions, got %d", len(filter))
	}

	for _, ext := range []string{"ts", "go", "md"} {
		if _, ok := filter[ext]; !ok {
			t.Errorf("expected extension %q in filter", ext)
		}
	}
}

func TestParseExtensions_Empty(t *testing.T) {
	if filter := ParseExtensions(""); filter != nil {
		t.Errorf("empty input should yield nil filter, got %v", filter)
	}
	if filter := ParseExtensions(" , ,."); filter != nil {
		t.Errorf("blank-only input should yield nil filter, got %v", filter)
	}
}

func TestExtensionFilter_Included(t *testing.T) {
	filter := ParseExtensions("ts")

	cases := map[string]bool{
		"app.ts":       true,
		"app.TS":       true,
		"vector.d.ts":  true,
		"app.js":       false,
		"Makefile":     false,
		"trailingdot.": false,
	}

	for name, want := range cases {
		if got := filter.Included(name); got != want {
			t.Errorf("Included(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestExtensionFilter_NoFilterAcceptsEverything(t *testing.T) {
	var filter ExtensionFilter

	for _, name := range []string{"a.ts", "b.exe", "Makefile", ""} {
		if !filter.Included(name) {
			t.Errorf("nil filter should accept %q", name)
		}
	}
}
