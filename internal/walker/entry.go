package walker

import "strings"

// Kind distinguishes directory rows from file rows in the report.
type Kind string

const (
	KindDirectory Kind = "Directory"
	KindFile      Kind = "File"
)

// DefaultStatus is the initial value of every emitted entry's status
// column when no other label is configured.
const DefaultStatus = "Pending"

// indentMarker is repeated once per level when rendering an entry name.
const indentMarker = "  "

// Entry is one emitted row of the listing. Entries are appended in
// pre-order (parent immediately before its children, siblings in the raw
// filesystem listing order) and never mutated afterwards by the walker;
// only the report consumer may update Status, and the checksum pass fills
// Checksum on file entries.
type Entry struct {
	// Level is the depth below the root; the root's direct children sit
	// at level 0.
	Level int
	// Kind tells directories and files apart.
	Kind Kind
	// Name is the raw segment name, without any path.
	Name string
	// RelPath is the forward-slash path from the root. Directories carry
	// a trailing slash, files never do.
	RelPath string
	// Status is the triage state of the row, initialized to a fixed
	// starting value.
	Status string
	// Checksum is the hex content hash of a file entry, empty unless the
	// checksum pass ran. Always empty for directories.
	Checksum string
}

// IsDir reports whether the entry describes a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IndentedName returns the name prefixed by an indentation marker
// proportional to the entry's depth, for human-readable rendering.
func (e Entry) IndentedName() string {
	return strings.Repeat(indentMarker, e.Level) + e.Name
}
