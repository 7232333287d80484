package pathfilter

import (
	"fmt"
	"os"
	"path/filepath"
)

// HasIncludedFile reports whether the subtree rooted at dir contains at
// least one file passing the extension filter, short-circuiting on the
// first match. With no filter configured it is true for every directory,
// empty ones included, without touching the filesystem.
//
// The probe consults only the extension filter, never the exclusion list:
// a file the walker will later drop as excluded still keeps its parent
// directory alive here.
//
// When no match is found, the returned error carries the first directory
// that could not be listed, so callers can report what the probe could
// not see; a found match always returns (true, nil).
func HasIncludedFile(dir string, filter ExtensionFilter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("scan %s: %w", dir, err)
	}

	// Files first: the cheap answer before any recursion.
	for _, entry := range entries {
		if !entry.IsDir() && filter.Included(entry.Name()) {
			return true, nil
		}
	}

	var firstErr error
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		ok, err := HasIncludedFile(filepath.Join(dir, entry.Name()), filter)
		if ok {
			return true, nil
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return false, firstErr
}
