// Package aql resolves buyer sampling plans and renders accept/reject verdicts.
package aql

import "github.com/stitchdesk/garmentqc/internal/domain/quality"

// SampleRow is one range row of a sampling plan. Accept is the highest defect
// count that still passes; Reject is the lowest count that fails.
type SampleRow struct {
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	SampleSize   int    `json:"sample_size"`
	SampleLetter string `json:"sample_letter,omitempty"`
	BatchName    string `json:"batch_name,omitempty"`
	Accept       int    `json:"accept"`
	Reject       int    `json:"reject"`
}

// Contains reports whether the inspected quantity falls in the row's range.
func (r SampleRow) Contains(qty int) bool {
	return r.Min <= qty && qty <= r.Max
}

// SamplePlan is the externally maintained sampling table for one buyer and
// severity category. Rows are kept in table order; ranges are expected
// non-overlapping but that is catalog data the resolver cannot trust.
type SamplePlan struct {
	Buyer          string           `json:"buyer"`
	Category       quality.Severity `json:"category"`
	InspectionType string           `json:"inspection_type,omitempty"`
	Level          string           `json:"level,omitempty"`
	Rows           []SampleRow      `json:"rows"`
}

// Resolution is the outcome of resolving a plan against an inspected quantity.
// A nil Row means the category is not applicable, which is a normal outcome,
// not an error. Overlap marks a data-integrity anomaly: more than one row
// matched and the first in table order was taken.
type Resolution struct {
	Row     *SampleRow `json:"row,omitempty"`
	Overlap bool       `json:"overlap,omitempty"`
}

// Applicable reports whether a sampling row was resolved.
func (r Resolution) Applicable() bool {
	return r.Row != nil
}
