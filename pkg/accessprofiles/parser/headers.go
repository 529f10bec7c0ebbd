package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"accessprofiles/pkg/accessprofiles/models"
)

// Keyword anchors for the two header rows of the access-profile template.
// The first header row carries product names spread across merged cells, the
// second carries permission type names.
var (
	categoryKeywords = []string{"Conductor", "storm Contact", "UC", "DataManagement", "Dial", "Flow"}
	headingKeywords  = []string{"Actions", "Announcements", "Menus", "Parameters", "Services"}
)

// ErrStructureNotFound indicates a header row could not be located within
// the scan window.
var ErrStructureNotFound = errors.New("sheet structure not found")

// StructureError reports which header row was missing and the keyword set
// that was expected, to aid diagnosing a changed spreadsheet template.
type StructureError struct {
	// Want names the missing structure: "category", "heading" or "data".
	Want string
	// Keywords is the set of cell values that was searched for.
	Keywords []string
	// Window is the number of rows that were scanned.
	Window int
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("no %s row found within %d rows (expected a cell matching %q)",
		e.Want, e.Window, e.Keywords)
}

func (e *StructureError) Unwrap() error {
	return ErrStructureNotFound
}

// DataStartStrategy selects how the first data row is located once the
// header rows are known. Spreadsheets from different sources follow either
// convention, so both are supported.
type DataStartStrategy string

const (
	// DataStartFixedOffset treats the row after the heading row as a
	// throwaway sub-header and starts data one row later. The sub-header's
	// "name" cell gives the profile-name column.
	DataStartFixedOffset DataStartStrategy = "fixed-offset"
	// DataStartMarkerPrefix scans forward for the first cell carrying a
	// known profile-name prefix and starts data at that row and column.
	DataStartMarkerPrefix DataStartStrategy = "marker-prefix"
)

// LayoutParams controls header discovery.
type LayoutParams struct {
	// ScanWindow bounds how many rows are scanned for each header row.
	ScanWindow int
	// Strategy selects the data-start discovery method.
	Strategy DataStartStrategy
	// MarkerPrefix is the profile-name prefix used by DataStartMarkerPrefix.
	MarkerPrefix string
	// CategoryKeywords overrides the default category row anchors.
	CategoryKeywords []string
	// HeadingKeywords overrides the default heading row anchors.
	HeadingKeywords []string
}

// DefaultLayoutParams returns the discovery parameters matching the standard
// access-profile template.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		ScanWindow:   10,
		Strategy:     DataStartFixedOffset,
		MarkerPrefix: "TEAM -",
	}
}

// Layout describes where the sheet's structure was found.
// All indices are 0-based grid rows and columns.
type Layout struct {
	// CategoryRow is the row carrying product/category labels.
	CategoryRow int
	// HeadingRow is the row carrying permission type labels.
	HeadingRow int
	// DataStart is the first data row.
	DataStart int
	// NameCol is the column holding profile names; the filter sits in the
	// next column and operator/value pairs follow.
	NameCol int
}

// LocateLayout scans the grid top-down for the category and heading rows,
// then resolves the data start per the configured strategy. Scanning is
// bounded by ScanWindow per row kind so malformed input fails fast.
func LocateLayout(grid Grid, params LayoutParams) (Layout, []models.Warning, error) {
	catKeys := params.CategoryKeywords
	if len(catKeys) == 0 {
		catKeys = categoryKeywords
	}
	headKeys := params.HeadingKeywords
	if len(headKeys) == 0 {
		headKeys = headingKeywords
	}
	window := params.ScanWindow
	if window <= 0 {
		window = DefaultLayoutParams().ScanWindow
	}

	catRow := findKeywordRow(grid, 0, window, catKeys)
	if catRow < 0 {
		return Layout{}, nil, &StructureError{Want: "category", Keywords: catKeys, Window: window}
	}
	headRow := findKeywordRow(grid, catRow+1, window, headKeys)
	if headRow < 0 {
		return Layout{}, nil, &StructureError{Want: "heading", Keywords: headKeys, Window: window}
	}

	layout := Layout{CategoryRow: catRow, HeadingRow: headRow}
	var warns []models.Warning

	switch params.Strategy {
	case DataStartMarkerPrefix:
		prefix := params.MarkerPrefix
		if prefix == "" {
			prefix = DefaultLayoutParams().MarkerPrefix
		}
		row, col := findMarkerCell(grid, headRow+1, prefix)
		if row < 0 {
			return Layout{}, nil, &StructureError{
				Want:     "data",
				Keywords: []string{prefix},
				Window:   grid.Rows() - headRow - 1,
			}
		}
		layout.DataStart = row
		layout.NameCol = col
	default:
		// The row after the heading row is a sub-header of column titles;
		// its "name" cell marks the profile-name column.
		subHeader := headRow + 1
		col := findNameColumn(grid, subHeader)
		if col < 0 {
			col = 0
			warns = append(warns, models.Warning{
				Row:     subHeader + 1,
				Message: `no "name" column title in sub-header row, assuming first column`,
			})
		}
		layout.DataStart = headRow + 2
		layout.NameCol = col
	}

	return layout, warns, nil
}

// findKeywordRow returns the first row in [start, start+window) containing a
// cell that exactly matches one of the keywords, or -1.
func findKeywordRow(grid Grid, start, window int, keywords []string) int {
	for row := start; row < start+window && row < grid.Rows(); row++ {
		for col := 0; col < grid.RowLen(row); col++ {
			if slices.Contains(keywords, grid.Cell(row, col)) {
				return row
			}
		}
	}
	return -1
}

// findNameColumn returns the column of the first cell in the row containing
// "name" (case-insensitive), or -1.
func findNameColumn(grid Grid, row int) int {
	for col := 0; col < grid.RowLen(row); col++ {
		if strings.Contains(strings.ToLower(grid.Cell(row, col)), "name") {
			return col
		}
	}
	return -1
}

// findMarkerCell returns the position of the first cell at or below start
// whose value carries the prefix, or (-1, -1).
func findMarkerCell(grid Grid, start int, prefix string) (int, int) {
	for row := start; row < grid.Rows(); row++ {
		for col := 0; col < grid.RowLen(row); col++ {
			if strings.HasPrefix(grid.Cell(row, col), prefix) {
				return row, col
			}
		}
	}
	return -1, -1
}
