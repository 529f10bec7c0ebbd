// Package models defines data structures for access profile extraction.
package models

// Record is one flattened permission entry, suitable for tabular export.
type Record struct {
	// Profile is the access profile name.
	Profile string `json:"profile"`
	// Filter is the contact/rule filter the entry applies under.
	Filter string `json:"filter"`
	// Category is the product grouping the heading belongs to (e.g. "UC").
	Category string `json:"category"`
	// Heading is the permission type within the category (e.g. "Actions").
	Heading string `json:"heading"`
	// Operator is the permission verb (e.g. "Allow", "Deny").
	Operator string `json:"operator"`
	// Value is the operand associated with the operator.
	Value string `json:"value"`
}
