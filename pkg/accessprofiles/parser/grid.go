// Package parser implements the header discovery, category mapping and row
// decoding that turn a raw sheet grid into access profile records.
package parser

import "strings"

// Grid is a read-only snapshot of a sheet's cell values, as returned by
// excelize.GetRows: rows may be ragged and all values are rendered strings.
// Indices are 0-based; use Cell for bounds-safe access.
type Grid [][]string

// Cell returns the trimmed value at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RowLen returns the number of cells present in a row, 0 when out of range.
func (g Grid) RowLen(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}
