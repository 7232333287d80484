// Package report renders the ordered entry sequence of a walk. The
// writers are stateless consumers: they never re-order or mutate entries.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"treeaudit/internal/walker"
)

// SheetName is the worksheet holding the listing.
const SheetName = "Audit"

// statusCol is the Status column; it sits at a fixed position because the
// optional checksum column is appended after it.
const statusCol = "F"

var baseHeader = []string{"No", "Level", "Kind", "Name", "Path", "Status"}

// WorkbookOptions controls the spreadsheet rendering.
type WorkbookOptions struct {
	// StatusLabels populate the per-row status dropdown. Rows arrive
	// already seeded with the first label.
	StatusLabels []string
	// Checksums adds the checksum column.
	Checksums bool
}

// WriteWorkbook writes entries to an xlsx workbook at path: a bold frozen
// header row, one data row per entry in emission order, an auto-filter
// spanning header and data, and a status dropdown restricted to the
// configured labels.
func WriteWorkbook(path string, entries []walker.Entry, opts WorkbookOptions) error {
	header := baseHeader
	if opts.Checksums {
		header = append(append([]string{}, baseHeader...), "Checksum")
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f, header, lastCol); err != nil {
		return err
	}
	if err := writeRows(f, entries, opts, lastCol); err != nil {
		return err
	}

	filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(entries)+1)
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return fmt.Errorf("failed to add auto-filter: %w", err)
	}

	if len(entries) > 0 && len(opts.StatusLabels) > 0 {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", statusCol, statusCol, len(entries)+1)
		if err := dv.SetDropList(opts.StatusLabels); err != nil {
			return fmt.Errorf("failed to build status dropdown: %w", err)
		}
		if err := f.AddDataValidation(SheetName, dv); err != nil {
			return fmt.Errorf("failed to add status dropdown: %w", err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	setColumnWidths(f, opts.Checksums)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, header []string, lastCol string) error {
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, entries []walker.Entry, opts WorkbookOptions, lastCol string) error {
	dirStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to build directory style: %w", err)
	}

	for i, entry := range entries {
		row := i + 2
		values := []any{i + 1, entry.Level, string(entry.Kind), entry.IndentedName(), entry.RelPath, entry.Status}
		if opts.Checksums {
			values = append(values, entry.Checksum)
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}

		if entry.IsDir() {
			ref := fmt.Sprintf("A%d", row)
			if err := f.SetCellStyle(SheetName, ref, fmt.Sprintf("%s%d", lastCol, row), dirStyle); err != nil {
				return fmt.Errorf("failed to style directory row %d: %w", row, err)
			}
		}
	}
	return nil
}

func setColumnWidths(f *excelize.File, checksums bool) {
	_ = f.SetColWidth(SheetName, "A", "B", 7)
	_ = f.SetColWidth(SheetName, "C", "C", 11)
	_ = f.SetColWidth(SheetName, "D", "E", 42)
	_ = f.SetColWidth(SheetName, statusCol, statusCol, 14)
	if checksums {
		_ = f.SetColWidth(SheetName, "G", "G", 20)
	}
}
