package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var testLabels = []string{"Pending", "In Progress", "Done"}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.xlsx")

	err := WriteWorkbook(path, sampleEntries(), WorkbookOptions{StatusLabels: testLabels})
	if err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	headerWant := map[string]string{
		"A1": "No", "B1": "Level", "C1": "Kind",
		"D1": "Name", "E1": "Path", "F1": "Status",
	}
	for cell, want := range headerWant {
		got, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("header %s = %q, want %q", cell, got, want)
		}
	}

	rowWant := map[string]string{
		"A2": "1",
		"B2": "0",
		"C2": "Directory",
		"D2": "src",
		"E2": "src/",
		"F2": "Pending",
		"D3": "  main.go", // one indent level
		"E3": "src/main.go",
	}
	for cell, want := range rowWant {
		got, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestWriteWorkbook_ChecksumColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.xlsx")

	entries := sampleEntries()
	entries[1].Checksum = "deadbeefdeadbeef"

	err := WriteWorkbook(path, entries, WorkbookOptions{StatusLabels: testLabels, Checksums: true})
	if err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(SheetName, "G1"); got != "Checksum" {
		t.Errorf("G1 = %q, want Checksum header", got)
	}
	if got, _ := f.GetCellValue(SheetName, "G3"); got != "deadbeefdeadbeef" {
		t.Errorf("G3 = %q, want checksum value", got)
	}
}

func TestWriteWorkbook_StatusDropdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.xlsx")

	err := WriteWorkbook(path, sampleEntries(), WorkbookOptions{StatusLabels: testLabels})
	if err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	dvs, err := f.GetDataValidations(SheetName)
	if err != nil {
		t.Fatalf("GetDataValidations failed: %v", err)
	}
	if len(dvs) != 1 {
		t.Fatalf("expected 1 data validation, got %d", len(dvs))
	}
	if dvs[0].Sqref != "F2:F4" {
		t.Errorf("dropdown range = %q, want F2:F4", dvs[0].Sqref)
	}
}

func TestWriteWorkbook_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.xlsx")

	if err := WriteWorkbook(path, nil, WorkbookOptions{StatusLabels: testLabels}); err != nil {
		t.Fatalf("WriteWorkbook failed on empty entries: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(SheetName, "A1"); got != "No" {
		t.Errorf("header should still be written, got A1 = %q", got)
	}
}
