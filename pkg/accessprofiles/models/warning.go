package models

import "fmt"

// Warning records a recoverable problem encountered during parsing.
type Warning struct {
	// Row is the 1-based sheet row the warning refers to, or 0 when the
	// warning is not tied to a single row.
	Row int `json:"row,omitempty"`
	// Message describes the problem.
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("row %d: %s", w.Row, w.Message)
	}
	return w.Message
}
