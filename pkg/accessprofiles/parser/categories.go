package parser

import (
	"fmt"

	"accessprofiles/pkg/accessprofiles/models"
)

// Category is one product grouping occupying a contiguous range of columns
// on the category row. The label sits in the top-left cell of a merged
// range, so each category extends from its own column up to the next
// category's column.
type Category struct {
	// Label is the product name (e.g. "UC", "Flow").
	Label string
	// Start is the first column of the category's range.
	Start int
	// End is the column the next category starts at; -1 for the last
	// category, whose range is open-ended.
	End int
}

// contains reports whether the category's column range covers col.
func (c Category) contains(col int) bool {
	return col >= c.Start && (c.End < 0 || col < c.End)
}

// Heading is one permission type. It is labeled on the heading row and
// occupies one operator/value column pair in the data rows.
type Heading struct {
	// Label is the permission type name (e.g. "Actions", "Agent Groups").
	Label string
	// Col is the heading's column on the heading row.
	Col int
}

// Categories extracts the non-empty cells of the category row as labeled
// column ranges, in column order.
func Categories(grid Grid, row int) []Category {
	var cats []Category
	for col := 0; col < grid.RowLen(row); col++ {
		if v := grid.Cell(row, col); v != "" {
			cats = append(cats, Category{Label: v, Start: col, End: -1})
		}
	}
	for i := 0; i+1 < len(cats); i++ {
		cats[i].End = cats[i+1].Start
	}
	return cats
}

// Headings extracts the non-empty cells of the heading row, in column order.
func Headings(grid Grid, row int) []Heading {
	var heads []Heading
	for col := 0; col < grid.RowLen(row); col++ {
		if v := grid.Cell(row, col); v != "" {
			heads = append(heads, Heading{Label: v, Col: col})
		}
	}
	return heads
}

// CategoryMap resolves each heading to the category whose column range
// contains the heading's column. It is built once per sheet and reused for
// every data row. Keyed by column rather than label because the same heading
// label can repeat under several categories.
type CategoryMap struct {
	byCol map[int]string
}

// BuildCategoryMap maps every heading to its containing category. A heading
// whose column falls outside every range is assigned to the first category
// and reported as a warning; with an open-ended last range that only happens
// for columns left of the first category.
func BuildCategoryMap(categories []Category, headings []Heading) (*CategoryMap, []models.Warning) {
	m := &CategoryMap{byCol: make(map[int]string, len(headings))}
	var warns []models.Warning
	for _, h := range headings {
		cat, ok := categoryAt(categories, h.Col)
		if !ok {
			if len(categories) == 0 {
				continue
			}
			cat = categories[0].Label
			warns = append(warns, models.Warning{
				Message: fmt.Sprintf("heading %q at column %d is outside every category range, assigned to %q",
					h.Label, h.Col+1, cat),
			})
		}
		m.byCol[h.Col] = cat
	}
	return m, warns
}

// CategoryFor returns the category label assigned to a heading.
func (m *CategoryMap) CategoryFor(h Heading) string {
	return m.byCol[h.Col]
}

// categoryAt finds the category whose range contains col.
func categoryAt(categories []Category, col int) (string, bool) {
	for _, c := range categories {
		if c.contains(col) {
			return c.Label, true
		}
	}
	return "", false
}
