package accessprofiles

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"accessprofiles/pkg/accessprofiles/parser"
)

// writeFixture builds a workbook following the access-profile template on
// the named sheet and saves it into a temp dir.
func writeFixture(t *testing.T, sheetName string, extraSheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	for _, s := range extraSheets {
		if _, err := f.NewSheet(s); err != nil {
			t.Fatalf("Failed to add sheet %s: %v", s, err)
		}
	}

	f.SetCellValue(sheetName, "A1", "Access Profiles Overview")
	// Category row with merged product headers.
	f.SetCellValue(sheetName, "C2", "UC")
	f.SetCellValue(sheetName, "F2", "Flow")
	f.MergeCell(sheetName, "C2", "E2")
	f.MergeCell(sheetName, "F2", "H2")
	// Heading row.
	f.SetCellValue(sheetName, "C3", "Actions")
	f.SetCellValue(sheetName, "D3", "Menus")
	f.SetCellValue(sheetName, "F3", "Queries")
	// Sub-header row of column titles.
	f.SetCellValue(sheetName, "A4", "Access Profile Name")
	f.SetCellValue(sheetName, "B4", "Filter")
	// Data rows.
	for col, v := range map[string]string{
		"A5": "TEAM - Sales", "B5": "Internal", "C5": "Allow", "D5": "G1",
		"E5": "none", "F5": "-", "G5": "Deny", "H5": "Q1",
	} {
		f.SetCellValue(sheetName, col, v)
	}
	for col, v := range map[string]string{
		"A6": "TEAM - Support", "B6": "Internal", "C6": "Deny", "D6": "G2",
		"E6": "Allow", "F6": "M1", "G6": "none", "H6": "-",
	} {
		f.SetCellValue(sheetName, col, v)
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	path := writeFixture(t, "AccessProfiles TEAM")

	res, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Sheet != "AccessProfiles TEAM" {
		t.Errorf("Expected sheet AccessProfiles TEAM, got %q", res.Sheet)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", res.Warnings)
	}

	profiles := res.Profiles.Profiles()
	want := []string{"TEAM - Sales", "TEAM - Support"}
	if len(profiles) != len(want) {
		t.Fatalf("Expected %d profiles, got %d", len(want), len(profiles))
	}
	for i := range want {
		if profiles[i] != want[i] {
			t.Errorf("Profile %d = %q, expected %q", i, profiles[i], want[i])
		}
	}

	e, ok := res.Profiles.Lookup("TEAM - Sales", "Internal", "Flow", "Queries")
	if !ok {
		t.Fatal("Expected entry for TEAM - Sales/Internal/Flow/Queries")
	}
	if e.Operator != "Deny" || e.Value != "Q1" {
		t.Errorf("Entry = %+v, expected Deny/Q1", e)
	}

	// "none" operators never reach the store.
	if _, ok := res.Profiles.Lookup("TEAM - Sales", "Internal", "UC", "Menus"); ok {
		t.Error("Inactive Menus entry must be dropped")
	}
	if _, ok := res.Profiles.Lookup("TEAM - Support", "Internal", "Flow", "Queries"); ok {
		t.Error("Inactive Queries entry must be dropped")
	}
}

func TestExtractMarkerPrefixStrategy(t *testing.T) {
	path := writeFixture(t, "AccessProfiles TEAM")

	opts := DefaultOptions()
	opts.Layout.Strategy = parser.DataStartMarkerPrefix
	opts.Layout.MarkerPrefix = "TEAM -"

	res, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Layout.DataStart != 4 || res.Layout.NameCol != 0 {
		t.Errorf("Layout = %+v, expected data start 4 at column 0", res.Layout)
	}
	if res.Profiles.NumProfiles() != 2 {
		t.Errorf("Expected 2 profiles, got %d", res.Profiles.NumProfiles())
	}
}

func TestExtractTrailingBlankPair(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "AccessProfiles"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	f.SetCellValue(sheet, "C1", "UC")
	f.SetCellValue(sheet, "F1", "Flow")
	f.SetCellValue(sheet, "C2", "Actions")
	f.SetCellValue(sheet, "D2", "Menus")
	f.SetCellValue(sheet, "F2", "Queries")
	f.SetCellValue(sheet, "A3", "Access Profile Name")
	f.SetCellValue(sheet, "B3", "Filter")
	// The only data row leaves the Queries pair blank, so the stored row
	// ends at column F.
	f.SetCellValue(sheet, "A4", "TEAM - Solo")
	f.SetCellValue(sheet, "B4", "Internal")
	f.SetCellValue(sheet, "C4", "Allow")
	f.SetCellValue(sheet, "D4", "G1")
	f.SetCellValue(sheet, "E4", "none")
	f.SetCellValue(sheet, "F4", "-")

	path := filepath.Join(t.TempDir(), "trailing.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	res, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", res.Warnings)
	}
	if res.Profiles.NumProfiles() != 1 {
		t.Fatalf("Expected the trailing-blank row to survive, got %d profiles", res.Profiles.NumProfiles())
	}
	e, ok := res.Profiles.Lookup("TEAM - Solo", "Internal", "UC", "Actions")
	if !ok {
		t.Fatal("Expected the row's active entry to be stored")
	}
	if e.Operator != "Allow" || e.Value != "G1" {
		t.Errorf("Entry = %+v, expected Allow/G1", e)
	}
}

func TestExtractSheetByMarker(t *testing.T) {
	// Marker matching only kicks in for multi-sheet workbooks.
	path := writeFixture(t, "AccessProfiles TEAM", "Overview", "Changelog")

	res, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Sheet != "AccessProfiles TEAM" {
		t.Errorf("Expected marker match on AccessProfiles TEAM, got %q", res.Sheet)
	}
}

func TestExtractSheetMarkerNotFound(t *testing.T) {
	path := writeFixture(t, "Profiles", "Overview")

	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("Expected ErrSheetNotFound, got %v", err)
	}
	var se *SheetError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SheetError, got %T", err)
	}
	if len(se.Available) != 2 {
		t.Errorf("Expected 2 available sheets in error, got %v", se.Available)
	}
}

func TestExtractSheetByName(t *testing.T) {
	path := writeFixture(t, "Profiles", "Overview")

	opts := DefaultOptions()
	opts.Sheet = "Profiles"
	res, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Sheet != "Profiles" {
		t.Errorf("Expected sheet Profiles, got %q", res.Sheet)
	}

	opts.Sheet = "Missing"
	_, err = Extract(path, opts)
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("Expected ErrSheetNotFound, got %v", err)
	}
	var se *SheetError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SheetError, got %T", err)
	}
	if se.Name != "Missing" {
		t.Errorf("Expected error naming the missing sheet, got %q", se.Name)
	}
}

func TestExtractSingleSheetAnyName(t *testing.T) {
	// A single-sheet workbook is used whatever the sheet is called.
	path := writeFixture(t, "Whatever")

	res, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Sheet != "Whatever" {
		t.Errorf("Expected sheet Whatever, got %q", res.Sheet)
	}
}

func TestParseEmptyResult(t *testing.T) {
	grid := parser.Grid{
		{"", "UC", "", "Flow"},
		{"", "Actions", "", "Queries"},
		{"Name", "Filter"},
		{"P1", "F1", "none", "-", "not in use", "-"},
	}

	_, err := Parse(grid, DefaultOptions())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("Expected ErrEmptyResult, got %v", err)
	}
}

func TestParseStructureNotFound(t *testing.T) {
	grid := parser.Grid{{"just"}, {"noise"}}

	_, err := Parse(grid, DefaultOptions())
	if !errors.Is(err, parser.ErrStructureNotFound) {
		t.Fatalf("Expected ErrStructureNotFound, got %v", err)
	}
}
