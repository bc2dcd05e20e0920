package aql

import (
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// CategoryResult is the verdict for one severity category. Flagged marks a
// category that recorded defects without an applicable sampling row; it is
// surfaced rather than folded into the final verdict.
type CategoryResult struct {
	Status  quality.Status `json:"status"`
	Count   int            `json:"count"`
	Row     *SampleRow     `json:"row,omitempty"`
	Flagged bool           `json:"flagged,omitempty"`
	Reason  string         `json:"reason"`
}

// Decision is the combined verdict over all severity categories.
type Decision struct {
	PerCategory map[quality.Severity]CategoryResult `json:"per_category"`
	Final       quality.Status                      `json:"final"`
}

// Decide compares aggregated counts against resolved sampling rows. A category
// passes iff its count is at or below the row's accept number; anything above
// accept fails, which also covers malformed tables with a gap between accept
// and reject. Categories without a resolved row are NotApplicable and never
// fail the final verdict on their own: the final verdict fails iff any
// resolved category fails.
func Decide(counts quality.Counts, resolutions map[quality.Severity]Resolution) Decision {
	perCategory := make(map[quality.Severity]CategoryResult, len(quality.Categories))
	final := quality.StatusPass

	for _, cat := range quality.Categories {
		count := counts.For(cat)
		res := resolutions[cat]

		if !res.Applicable() {
			result := CategoryResult{
				Status: quality.StatusNotApplicable,
				Count:  count,
				Reason: "no sampling plan row applies",
			}
			if count > 0 {
				result.Flagged = true
				result.Reason = fmt.Sprintf("%d defect(s) recorded but no sampling plan row applies", count)
			}
			perCategory[cat] = result
			continue
		}

		row := res.Row
		result := CategoryResult{Count: count, Row: row}
		if count <= row.Accept {
			result.Status = quality.StatusPass
			result.Reason = fmt.Sprintf("count %d within accept %d", count, row.Accept)
		} else {
			result.Status = quality.StatusFail
			result.Reason = fmt.Sprintf("count %d exceeds accept %d (reject %d)", count, row.Accept, row.Reject)
			final = quality.StatusFail
		}
		perCategory[cat] = result
	}

	return Decision{PerCategory: perCategory, Final: final}
}
