package pathfilter

import (
	"os"
	"path/filepath"
	"strings"

	"treeaudit/internal/logging"
)

// ExclusionFileName is the fixed name of the exclusion list expected
// directly under the run root. The file always excludes itself.
const ExclusionFileName = "exclusions.txt"

// ExclusionSet answers whether a relative path is excluded from a run.
// Exact entries match one path; directory entries (lines that ended in a
// separator) match the directory itself and everything beneath it.
// The set is built once at startup and never mutated afterwards.
type ExclusionSet struct {
	exact map[string]struct{}
	dirs  map[string]struct{}
}

// NewExclusionSet returns the built-in default set, containing only the
// exclusion list's own file name.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{
		exact: map[string]struct{}{ExclusionFileName: {}},
		dirs:  map[string]struct{}{},
	}
}

// Add normalizes one exclusion line and records it. A trailing separator
// marks a directory entry. Blank lines are ignored.
func (s *ExclusionSet) Add(line string) {
	isDir := strings.HasSuffix(line, "/") || strings.HasSuffix(line, `\`)
	p := Normalize(line)
	if p == "" {
		return
	}

	if isDir {
		s.dirs[p] = struct{}{}
	} else {
		s.exact[p] = struct{}{}
	}
}

// Excluded reports whether relPath matches the set. Matching is
// separator-agnostic and exact-segment: a directory entry "src/lib" covers
// "src/lib" and "src/lib/x" but never "src/library".
func (s *ExclusionSet) Excluded(relPath string) bool {
	p := Normalize(relPath)
	if _, ok := s.exact[p]; ok {
		return true
	}

	for d := range s.dirs {
		if p == d || strings.HasPrefix(p, d+"/") {
			return true
		}
	}

	return false
}

// Len returns the number of recorded entries, built-in ones included.
func (s *ExclusionSet) Len() int {
	return len(s.exact) + len(s.dirs)
}

// LoadExclusions reads the exclusion list at root/ExclusionFileName. Each
// non-blank line, trimmed, becomes one entry. A missing file yields the
// built-in default set; an unreadable one is logged and likewise degrades
// to the defaults rather than failing the run.
func LoadExclusions(root string, logger logging.Logger) *ExclusionSet {
	if logger == nil {
		logger = logging.Nop()
	}

	set := NewExclusionSet()
	path := filepath.Join(root, ExclusionFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("exclusion list %s unreadable, falling back to defaults: %v", path, err)
		}
		return set
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set.Add(line)
	}

	return set
}
