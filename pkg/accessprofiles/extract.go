package accessprofiles

import (
	"fmt"
	"strings"

	"accessprofiles/pkg/accessprofiles/models"
	"accessprofiles/pkg/accessprofiles/parser"

	"github.com/xuri/excelize/v2"
)

// Result is the outcome of a successful extraction.
type Result struct {
	// Sheet is the name of the sheet the profiles were read from.
	Sheet string
	// Layout is where the header structure was found.
	Layout parser.Layout
	// Categories are the discovered product groupings in column order.
	Categories []parser.Category
	// Headings are the discovered permission types in column order.
	Headings []parser.Heading
	// Profiles is the decoded store.
	Profiles *models.ProfileSet
	// Warnings lists recoverable problems encountered during the parse.
	Warnings []models.Warning
}

// Extract opens an Excel workbook, selects the access-profile sheet and
// parses it into a ProfileSet.
func Extract(path string, opts Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := selectSheet(f, opts)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	res, err := Parse(parser.Grid(rows), opts)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	res.Sheet = sheet
	return res, nil
}

// Parse runs the extraction pipeline over an already-loaded grid: locate
// the header rows, build the heading-to-category mapping once, then decode
// every data row into the store. The grid is read once, top to bottom.
func Parse(grid parser.Grid, opts Options) (*Result, error) {
	layout, warns, err := parser.LocateLayout(grid, opts.Layout)
	if err != nil {
		return nil, err
	}

	categories := parser.Categories(grid, layout.CategoryRow)
	headings := parser.Headings(grid, layout.HeadingRow)

	cmap, mapWarns := parser.BuildCategoryMap(categories, headings)
	warns = append(warns, mapWarns...)

	decoded, rowWarns := parser.DecodeRows(grid, layout, categories, headings, cmap, opts.Decode)
	warns = append(warns, rowWarns...)

	set := models.NewProfileSet()
	for _, row := range decoded {
		for _, e := range row.Entries {
			set.Insert(row.Name, row.Filter, e.Category, e.Heading, e.Operator, e.Value)
		}
	}
	if set.NumProfiles() == 0 {
		return nil, ErrEmptyResult
	}

	return &Result{
		Layout:     layout,
		Categories: categories,
		Headings:   headings,
		Profiles:   set,
		Warnings:   warns,
	}, nil
}

// selectSheet picks the sheet to parse per the configured selector.
func selectSheet(f *excelize.File, opts Options) (string, error) {
	sheets := f.GetSheetList()
	switch opts.selectorFor(len(sheets)) {
	case SheetByName:
		for _, s := range sheets {
			if s == opts.Sheet {
				return s, nil
			}
		}
		return "", &SheetError{Name: opts.Sheet, Available: sheets}
	case SheetByActive:
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	default:
		marker := strings.ToLower(opts.SheetMarker)
		if marker == "" {
			marker = DefaultOptions().SheetMarker
		}
		for _, s := range sheets {
			if strings.Contains(strings.ToLower(s), marker) {
				return s, nil
			}
		}
		return "", &SheetError{Marker: marker, Available: sheets}
	}
}
