package parser

import (
	"fmt"
	"slices"
	"strings"

	"accessprofiles/pkg/accessprofiles/models"
)

// boundaryHeadings are the section-start labels of the positional decoding
// convention: the category cursor advances whenever one of these headings is
// reached while walking a data row.
var boundaryHeadings = []string{
	"Agent Groups",
	"Call Barring Profiles",
	"Queries",
	"Pacing Profiles",
	"Flow Services",
}

// CategoryStrategy selects how decoded entries are assigned a category.
type CategoryStrategy string

const (
	// CategoryByColumnRange maps each heading to the category whose column
	// range contains the heading's column.
	CategoryByColumnRange CategoryStrategy = "column-range"
	// CategoryByBoundaryHeadings advances a category cursor at the known
	// section-start headings. Simpler and used by older sheet variants, but
	// blind to the actual merged-cell layout.
	CategoryByBoundaryHeadings CategoryStrategy = "boundary-headings"
)

// DecodeParams controls row decoding.
type DecodeParams struct {
	// Strategy selects the category assignment method.
	Strategy CategoryStrategy
	// InactiveOperators are operator values marking an entry as unused;
	// matching entries are dropped. Compared trimmed and lower-cased.
	InactiveOperators []string
	// BoundaryHeadings overrides the default section-start labels for
	// CategoryByBoundaryHeadings.
	BoundaryHeadings []string
	// MaxWarnings caps how many individual row warnings are retained;
	// further malformed rows are only counted.
	MaxWarnings int
}

// DefaultDecodeParams returns the strict decoding defaults.
func DefaultDecodeParams() DecodeParams {
	return DecodeParams{
		Strategy:          CategoryByColumnRange,
		InactiveOperators: []string{"none", "not in use"},
		MaxWarnings:       10,
	}
}

// LenientInactiveOperators returns the defensive sentinel set, which
// additionally drops "n/a" and blank operators.
func LenientInactiveOperators() []string {
	return []string{"none", "not in use", "n/a", ""}
}

// RowEntry is one active permission entry decoded from a data row.
type RowEntry struct {
	Category string
	Heading  string
	Operator string
	Value    string
}

// DecodedRow is one data row's profile identity and active entries.
type DecodedRow struct {
	// Row is the 1-based sheet row the data came from.
	Row     int
	Name    string
	Filter  string
	Entries []RowEntry
}

// DecodeRows decodes data rows from layout.DataStart until the end-of-table
// sentinel: a row whose name cell is empty. Malformed rows are skipped and
// reported as warnings, capped at params.MaxWarnings with the overflow
// summarized as a count.
func DecodeRows(grid Grid, layout Layout, categories []Category, headings []Heading, cmap *CategoryMap, params DecodeParams) ([]DecodedRow, []models.Warning) {
	var (
		decoded []DecodedRow
		warns   []models.Warning
		skipped int
	)
	maxWarnings := params.MaxWarnings
	if maxWarnings <= 0 {
		maxWarnings = DefaultDecodeParams().MaxWarnings
	}

	for row := layout.DataStart; row < grid.Rows(); row++ {
		if grid.Cell(row, layout.NameCol) == "" {
			break
		}
		dr, err := DecodeRow(grid, row, layout, categories, headings, cmap, params)
		if err != nil {
			skipped++
			if skipped <= maxWarnings {
				warns = append(warns, models.Warning{Row: row + 1, Message: err.Error()})
			}
			continue
		}
		decoded = append(decoded, *dr)
	}

	if skipped > maxWarnings {
		warns = append(warns, models.Warning{
			Message: fmt.Sprintf("%d malformed rows skipped in total", skipped),
		})
	}
	return decoded, warns
}

// DecodeRow decodes a single data row: the profile name and filter at the
// name column, then one (operator, value) cell pair per heading. Entries
// whose operator is an inactive sentinel are dropped. The caller is expected
// to have checked the name cell for the end-of-table sentinel.
func DecodeRow(grid Grid, row int, layout Layout, categories []Category, headings []Heading, cmap *CategoryMap, params DecodeParams) (*DecodedRow, error) {
	// GetRows trims trailing empty cells, so a row legitimately ends early
	// when its last heading pairs are blank; Cell reads the missing cells as
	// "". Only a row too short to reach its first operator cell is malformed.
	pairBase := layout.NameCol + 2
	if grid.RowLen(row) < pairBase+2 {
		return nil, fmt.Errorf("row has %d cells, need at least %d to reach the first heading pair",
			grid.RowLen(row), pairBase+2)
	}

	boundaries := params.BoundaryHeadings
	if len(boundaries) == 0 {
		boundaries = boundaryHeadings
	}
	inactive := make([]string, len(params.InactiveOperators))
	for i, op := range params.InactiveOperators {
		inactive[i] = strings.ToLower(strings.TrimSpace(op))
	}

	dr := &DecodedRow{
		Row:    row + 1,
		Name:   grid.Cell(row, layout.NameCol),
		Filter: grid.Cell(row, layout.NameCol+1),
	}

	cursor := 0
	for i, h := range headings {
		var category string
		switch params.Strategy {
		case CategoryByBoundaryHeadings:
			if slices.Contains(boundaries, h.Label) {
				cursor++
			}
			if len(categories) == 0 {
				continue
			}
			category = categories[min(cursor, len(categories)-1)].Label
		default:
			category = cmap.CategoryFor(h)
		}

		operator := grid.Cell(row, pairBase+2*i)
		value := grid.Cell(row, pairBase+2*i+1)
		if slices.Contains(inactive, strings.ToLower(operator)) {
			continue
		}
		dr.Entries = append(dr.Entries, RowEntry{
			Category: category,
			Heading:  h.Label,
			Operator: operator,
			Value:    value,
		})
	}
	return dr, nil
}
