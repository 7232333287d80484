package pathfilter

import "strings"

// ExtensionFilter is an optional allow-list of file extensions, stored
// lower-cased and without dots. A nil or empty filter accepts every file.
type ExtensionFilter map[string]struct{}

// ParseExtensions builds a filter from a comma-separated list.
//
// Accepted forms per element: "txt", ".txt", "*.txt", any case. Empty
// elements are skipped. An input with no usable elements yields nil,
// meaning no filtering.
func ParseExtensions(list string) ExtensionFilter {
	var filter ExtensionFilter

	for _, ext := range strings.Split(list, ",") {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		if filter == nil {
			filter = ExtensionFilter{}
		}
		filter[ext] = struct{}{}
	}

	return filter
}

// Included reports whether fileName passes the filter. With no filter
// configured every file passes. The extension is the text after the last
// dot (empty when there is none), compared case-insensitively.
func (f ExtensionFilter) Included(fileName string) bool {
	if len(f) == 0 {
		return true
	}

	ext := ""
	if i := strings.LastIndexByte(fileName, '.'); i >= 0 {
		ext = strings.ToLower(fileName[i+1:])
	}

	_, ok := f[ext]
	return ok
}
