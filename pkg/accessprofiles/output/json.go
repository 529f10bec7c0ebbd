// Package output serializes extraction results to JSON and CSV.
package output

import (
	"encoding/json"

	"accessprofiles/pkg/accessprofiles/models"
)

// ToJSON serializes the nested profile structure
// (profile -> filter -> category -> heading -> [operator, value]).
// Key order is the first-seen order recorded by the store, so output is
// byte-identical across runs on the same input.
func ToJSON(set *models.ProfileSet, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(set, "", "    ")
	}
	return json.Marshal(set)
}
