// Package walker drives the depth-first traversal that turns a rooted
// directory tree into the ordered entry sequence a report is built from.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"treeaudit/internal/logging"
	"treeaudit/internal/pathfilter"
)

// ErrNotDirectory is returned when the configured root exists but is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options configures one run.
type Options struct {
	// Exclusions is the exclusion set consulted for every candidate path.
	// Nil means only the built-in defaults.
	Exclusions *pathfilter.ExclusionSet
	// Extensions restricts which files are emitted. Nil accepts all files.
	Extensions pathfilter.ExtensionFilter
	// InitialStatus seeds the status column of every emitted entry.
	// Empty means DefaultStatus.
	InitialStatus string
	// Logger receives the non-fatal warnings produced mid-walk.
	Logger logging.Logger
}

func (o *Options) applyDefaults() {
	if o.Exclusions == nil {
		o.Exclusions = pathfilter.NewExclusionSet()
	}
	if o.InitialStatus == "" {
		o.InitialStatus = DefaultStatus
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
}

// Result is the outcome of one walk: the full ordered entry sequence plus
// any contained errors (unreadable subtrees, failed checksums). Errors
// here never aborted the run.
type Result struct {
	Entries []Entry
	Errors  []error
}

// Walk traverses the tree rooted at root and returns every entry that
// passes the exclusion and extension rules, in pre-order.
//
// Sibling order is whatever the filesystem's directory listing returns;
// no sorting is applied and no particular order is guaranteed. Exclusion
// always wins over inclusion: an excluded directory is never descended
// into, whatever it contains. Directory subtrees with no file passing the
// extension filter are omitted entirely, including their header row.
//
// A missing or unreadable root is the only fatal condition. A directory
// that cannot be listed mid-walk is logged, recorded on the result, and
// skipped; its siblings and already-emitted ancestors are unaffected.
func Walk(root string, opts Options) (*Result, error) {
	opts.applyDefaults()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q: %w", root, ErrNotDirectory)
	}

	// The root must be listable; anything deeper degrades to a recorded
	// warning, but a root that cannot be read fails the whole run.
	children, err := listDir(root)
	if err != nil {
		return nil, fmt.Errorf("root %q: %w", root, err)
	}

	result := &Result{Entries: []Entry{}}

	// Checked once up front so a filtered-out tree produces no rows at
	// all rather than a lone header.
	ok, probeErr := pathfilter.HasIncludedFile(root, opts.Extensions)
	if probeErr != nil {
		opts.Logger.Warnf("cannot fully scan %s: %v", root, probeErr)
		result.Errors = append(result.Errors, probeErr)
	}
	if !ok {
		return result, nil
	}

	walkChildren(root, "", 0, children, opts, result)
	return result, nil
}

func walkDir(dir, rel string, level int, opts Options, result *Result) {
	children, err := listDir(dir)
	if err != nil {
		opts.Logger.Warnf("skipping unreadable directory %s: %v", dir, err)
		result.Errors = append(result.Errors, fmt.Errorf("list %s: %w", dir, err))
		return
	}

	walkChildren(dir, rel, level, children, opts, result)
}

func walkChildren(dir, rel string, level int, children []fs.DirEntry, opts Options, result *Result) {
	for _, child := range children {
		childRel := child.Name()
		if rel != "" {
			childRel = rel + "/" + child.Name()
		}
		childRel = pathfilter.Normalize(childRel)

		if opts.Exclusions.Excluded(childRel) {
			continue
		}

		if child.IsDir() {
			childPath := filepath.Join(dir, child.Name())
			ok, probeErr := pathfilter.HasIncludedFile(childPath, opts.Extensions)
			if probeErr != nil {
				opts.Logger.Warnf("cannot fully scan %s: %v", childPath, probeErr)
				result.Errors = append(result.Errors, probeErr)
			}
			if !ok {
				continue
			}

			result.Entries = append(result.Entries, Entry{
				Level:   level,
				Kind:    KindDirectory,
				Name:    child.Name(),
				RelPath: childRel + "/",
				Status:  opts.InitialStatus,
			})
			walkDir(childPath, childRel, level+1, opts, result)
			continue
		}

		if !opts.Extensions.Included(child.Name()) {
			continue
		}

		result.Entries = append(result.Entries, Entry{
			Level:   level,
			Kind:    KindFile,
			Name:    child.Name(),
			RelPath: childRel,
			Status:  opts.InitialStatus,
		})
	}
}

// listDir lists dir without the alphabetical sort os.ReadDir would apply,
// preserving the raw directory order the environment provides.
func listDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}
