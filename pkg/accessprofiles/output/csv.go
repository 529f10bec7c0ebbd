package output

import (
	"encoding/csv"
	"io"

	"accessprofiles/pkg/accessprofiles/models"
)

// Header is the fixed column order of the tabular export.
var Header = []string{"Name", "Filter", "Product", "Type", "Operator", "Value"}

// WriteCSV writes the flattened records in store order, one line per entry
// under a fixed header. If onProfile is non-nil it is called after each
// profile's records have been written, for progress reporting.
func WriteCSV(w io.Writer, set *models.ProfileSet, onProfile func(done, total int, name string)) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	recs := set.Records()
	total := set.NumProfiles()
	done := 0
	for i, r := range recs {
		if err := cw.Write([]string{r.Profile, r.Filter, r.Category, r.Heading, r.Operator, r.Value}); err != nil {
			return err
		}
		if onProfile != nil && (i+1 == len(recs) || recs[i+1].Profile != r.Profile) {
			done++
			onProfile(done, total, r.Profile)
		}
	}

	cw.Flush()
	return cw.Error()
}
