package report

import (
	"fmt"
	"io"
	"strings"

	"treeaudit/internal/walker"
)

// WriteTree renders entries as an indented plain-text listing, one line
// per entry in emission order.
func WriteTree(w io.Writer, entries []walker.Entry) error {
	for _, entry := range entries {
		marker := "[FILE]"
		if entry.IsDir() {
			marker = "[DIR] "
		}

		indent := strings.Repeat("  ", entry.Level)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, marker, entry.Name); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}
