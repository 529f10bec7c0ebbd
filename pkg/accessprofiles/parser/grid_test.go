package parser

import "testing"

func TestGridCell(t *testing.T) {
	g := Grid{
		{"a", " b ", ""},
		{"c"},
		nil,
	}

	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "a"},
		{0, 1, "b"}, // trimmed
		{0, 2, ""},
		{0, 3, ""}, // past row end
		{1, 0, "c"},
		{1, 1, ""},
		{2, 0, ""}, // nil row
		{3, 0, ""}, // past grid end
		{-1, 0, ""},
		{0, -1, ""},
	}

	for _, tt := range tests {
		if got := g.Cell(tt.row, tt.col); got != tt.expected {
			t.Errorf("Cell(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}

	if g.Rows() != 3 {
		t.Errorf("Rows() = %d, expected 3", g.Rows())
	}
	if g.RowLen(0) != 3 || g.RowLen(1) != 1 || g.RowLen(2) != 0 || g.RowLen(5) != 0 {
		t.Error("RowLen must report per-row cell counts and 0 out of range")
	}
}
