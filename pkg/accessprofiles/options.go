// Package accessprofiles extracts structured permission data from the
// storm/Conductor access-profile spreadsheet template: a merged product
// header row, a permission heading row, and data rows pairing an operator
// and value per heading.
package accessprofiles

import (
	"accessprofiles/pkg/accessprofiles/parser"
)

// SheetSelector chooses how the profile sheet is picked from the workbook.
type SheetSelector string

const (
	// SheetByName selects the sheet named Options.Sheet.
	SheetByName SheetSelector = "name"
	// SheetByActive selects the workbook's active sheet.
	SheetByActive SheetSelector = "active"
	// SheetByMarker selects the first sheet whose name contains
	// Options.SheetMarker (case-insensitive).
	SheetByMarker SheetSelector = "marker"
)

// Options configures extraction behavior.
type Options struct {
	// Selector chooses the sheet selection mode. When empty, SheetByName is
	// used if Sheet is set, SheetByActive for single-sheet workbooks, and
	// SheetByMarker otherwise.
	Selector SheetSelector
	// Sheet is the explicit sheet name for SheetByName.
	Sheet string
	// SheetMarker is the name substring for SheetByMarker.
	SheetMarker string
	// Layout controls header row discovery.
	Layout parser.LayoutParams
	// Decode controls data row decoding.
	Decode parser.DecodeParams
}

// DefaultOptions returns options matching the standard template.
func DefaultOptions() Options {
	return Options{
		SheetMarker: "accessprofiles",
		Layout:      parser.DefaultLayoutParams(),
		Decode:      parser.DefaultDecodeParams(),
	}
}

// selectorFor resolves the effective selector for a workbook with the given
// number of sheets.
func (o Options) selectorFor(sheetCount int) SheetSelector {
	if o.Selector != "" {
		return o.Selector
	}
	if o.Sheet != "" {
		return SheetByName
	}
	if sheetCount == 1 {
		return SheetByActive
	}
	return SheetByMarker
}
