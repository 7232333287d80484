// Package pathfilter holds the pure decision logic of a run: path
// normalization, the exclusion list, the extension allow-list, and the
// "does this subtree contain anything worth showing" probe.
package pathfilter

import "strings"

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// Normalize rewrites a path to canonical form: it splits on forward and
// backward separators alike, drops empty segments, and rejoins with "/".
// The result carries no leading, trailing, or doubled separators, so
// Normalize(Normalize(p)) == Normalize(p).
func Normalize(path string) string {
	return strings.Join(strings.FieldsFunc(path, isSeparator), "/")
}
