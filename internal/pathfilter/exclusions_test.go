package pathfilter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExclusionSet_DirectoryEntry(t *testing.T) {
	set := NewExclusionSet()
	set.Add("build/")

	if !set.Excluded("build") {
		t.Error("directory entry should match the directory itself")
	}
	if !set.Excluded("build/output.txt") {
		t.Error("directory entry should match descendants")
	}
	if !set.Excluded("build/nested/deep.txt") {
		t.Error("directory entry should match deep descendants")
	}
	if set.Excluded("builder/output.txt") {
		t.Error("sibling sharing a prefix must not match")
	}
	if set.Excluded("buildy") {
		t.Error("prefix-only name must not match")
	}
}

func TestExclusionSet_ExactEntry(t *testing.T) {
	set := NewExclusionSet()
	set.Add("src/lib")

	if !set.Excluded("src/lib") {
		t.Error("exact entry should match its own path")
	}
	if set.Excluded("src/library") {
		t.Error("exact entry must not match as a substring")
	}
	if set.Excluded("src/lib/file.go") {
		t.Error("exact entry must not cover descendants")
	}
}

func TestExclusionSet_SeparatorAgnostic(t *testing.T) {
	set := NewExclusionSet()
	set.Add(`build\`)

	if !set.Excluded("build/output.txt") {
		t.Error("backslash directory entry should match slash paths")
	}
	if !set.Excluded(`build\output.txt`) {
		t.Error("matching should accept backslash candidate paths")
	}
}

func TestExclusionSet_BuiltIn(t *testing.T) {
	set := NewExclusionSet()

	if !set.Excluded(ExclusionFileName) {
		t.Error("exclusion list file should exclude itself by default")
	}
	if set.Excluded("sub/" + ExclusionFileName) {
		t.Error("built-in entry is root-level only")
	}
}

func TestLoadExclusions_MissingFile(t *testing.T) {
	set := LoadExclusions(t.TempDir(), nil)

	if set.Len() != 1 {
		t.Errorf("expected only the built-in entry, got %d entries", set.Len())
	}
	if !set.Excluded(ExclusionFileName) {
		t.Error("built-in self exclusion missing")
	}
}

func TestLoadExclusions_ParsesLines(t *testing.T) {
	root := t.TempDir()
	content := "build/\n\n  docs/readme.md  \nnode_modules\\\n"
	if err := os.WriteFile(filepath.Join(root, ExclusionFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write exclusion list: %v", err)
	}

	set := LoadExclusions(root, nil)

	cases := map[string]bool{
		"build/main.o":          true,
		"docs/readme.md":        true,
		"docs/other.md":         false,
		"node_modules/lib/x.js": true,
		ExclusionFileName:       true,
	}

	for path, want := range cases {
		if got := set.Excluded(path); got != want {
			t.Errorf("Excluded(%q) = %v, want %v", path, got, want)
		}
	}
}
