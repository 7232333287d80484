package walker

import (
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"treeaudit/internal/checksum"
	"treeaudit/internal/logging"
	"treeaudit/internal/progress"
)

// AttachChecksums fills the Checksum field of every file entry in result,
// reading files concurrently with at most workers goroutines. It runs only
// after the walk has fully completed, so the emission order of the entries
// is untouched; each goroutine writes to a distinct entry index.
//
// Unreadable files are logged, recorded on the result, and left without a
// checksum. Never fatal.
func AttachChecksums(root string, result *Result, workers int, bar *progress.Bar, logger logging.Logger) {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Nop()
	}

	var g errgroup.Group
	g.SetLimit(workers)

	var mu sync.Mutex // guards result.Errors

	for i := range result.Entries {
		entry := &result.Entries[i]
		if entry.Kind != KindFile {
			continue
		}

		g.Go(func() error {
			path := filepath.Join(root, filepath.FromSlash(entry.RelPath))
			sum, err := checksum.File(path)
			if err != nil {
				logger.Warnf("checksum failed for %s: %v", entry.RelPath, err)
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("checksum %s: %w", entry.RelPath, err))
				mu.Unlock()
			} else {
				entry.Checksum = sum
			}

			bar.Step(entry.RelPath)
			return nil
		})
	}

	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()
}

// FileCount returns the number of file entries in the result, the step
// total for a checksum progress bar.
func (r *Result) FileCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == KindFile {
			n++
		}
	}
	return n
}
