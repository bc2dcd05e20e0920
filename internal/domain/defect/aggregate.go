package defect

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// Aggregate folds raw entries into per-defect rollups. Entries are grouped by
// defect ID across sessions; callers filter the entry set first if a narrower
// scope is wanted. The input is never mutated and the result is deterministic:
// output is sorted by numeric defect code ascending, non-numeric codes last in
// input order.
//
// Severity counts are credited per position when a location carries positions
// (statuses can legitimately differ piece by piece); otherwise the entry's own
// status takes the remaining quantity. Entries violating the location-quantity
// invariant are rejected before any aggregation happens.
func Aggregate(entries []Entry) ([]Aggregated, error) {
	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("entry %s: %w", entries[i].ID, err)
		}
	}

	byDefect := make(map[string]*Aggregated)
	var order []string
	for _, e := range entries {
		agg, ok := byDefect[e.DefectID]
		if !ok {
			agg = &Aggregated{
				DefectID: e.DefectID,
				Code:     e.Code,
				Name:     e.Name,
			}
			byDefect[e.DefectID] = agg
			order = append(order, e.DefectID)
		}

		agg.TotalQty += e.Quantity
		creditSeverity(&agg.Counts, e)
		agg.Entries = append(agg.Entries, e)
	}

	out := make([]Aggregated, 0, len(order))
	for _, id := range order {
		out = append(out, *byDefect[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, errI := strconv.Atoi(out[i].Code)
		cj, errJ := strconv.Atoi(out[j].Code)
		if errI == nil && errJ == nil {
			return ci < cj
		}
		// numeric codes sort before non-numeric ones
		return errI == nil && errJ != nil
	})

	return out, nil
}

// Totals sums severity counts across aggregated defects.
func Totals(aggs []Aggregated) quality.Counts {
	var c quality.Counts
	for _, a := range aggs {
		c.Minor += a.Counts.Minor
		c.Major += a.Counts.Major
		c.Critical += a.Counts.Critical
	}
	return c
}

func creditSeverity(counts *quality.Counts, e Entry) {
	if e.NoLocation {
		counts.Add(e.Status, e.Quantity)
		return
	}

	positioned := 0
	for _, loc := range e.Locations {
		for _, pos := range loc.Positions {
			counts.Add(pos.Status, 1)
			positioned++
		}
	}
	if remaining := e.Quantity - positioned; remaining > 0 {
		counts.Add(e.Status, remaining)
	}
}
