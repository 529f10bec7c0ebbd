package accessprofiles

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSheetNotFound indicates no sheet matched the configured selector.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyResult indicates the parse completed without producing a single
// profile, which signals that the sheet does not follow the expected layout
// even though no structural error was raised.
var ErrEmptyResult = errors.New("no profiles parsed")

// SheetError reports a failed sheet lookup together with the sheet names
// that were available, to aid diagnosing a renamed template.
type SheetError struct {
	// Name is the explicit sheet name that was requested, if any.
	Name string
	// Marker is the name substring that was searched for, if any.
	Marker string
	// Available lists the workbook's sheet names.
	Available []string
}

func (e *SheetError) Error() string {
	avail := strings.Join(e.Available, ", ")
	if e.Name != "" {
		return fmt.Sprintf("sheet %q not found (available sheets: %s)", e.Name, avail)
	}
	return fmt.Sprintf("no sheet name contains %q (available sheets: %s)", e.Marker, avail)
}

func (e *SheetError) Unwrap() error {
	return ErrSheetNotFound
}
