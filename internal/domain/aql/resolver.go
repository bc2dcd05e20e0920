package aql

import (
	"strings"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// wildcard buyer tags accepted as the fallback plan
func isWildcardBuyer(buyer string) bool {
	switch strings.ToLower(strings.TrimSpace(buyer)) {
	case "*", "default", "all":
		return true
	}
	return false
}

// Resolve selects the sampling row for a buyer, category and inspected
// quantity. Plan selection prefers an exact buyer match and falls back to a
// wildcard plan if one exists. Row selection takes the first row in table
// order whose range contains the quantity; a second matching row flags the
// resolution as overlapping so the caller can surface the catalog anomaly.
func Resolve(plans []SamplePlan, buyer string, category quality.Severity, inspectedQty int) Resolution {
	plan := selectPlan(plans, buyer, category)
	if plan == nil {
		return Resolution{}
	}

	var res Resolution
	for i := range plan.Rows {
		if !plan.Rows[i].Contains(inspectedQty) {
			continue
		}
		if res.Row == nil {
			res.Row = &plan.Rows[i]
			continue
		}
		res.Overlap = true
		break
	}
	return res
}

// ResolveAll resolves every severity category against the same quantity.
func ResolveAll(plans []SamplePlan, buyer string, inspectedQty int) map[quality.Severity]Resolution {
	out := make(map[quality.Severity]Resolution, len(quality.Categories))
	for _, cat := range quality.Categories {
		out[cat] = Resolve(plans, buyer, cat, inspectedQty)
	}
	return out
}

func selectPlan(plans []SamplePlan, buyer string, category quality.Severity) *SamplePlan {
	var fallback *SamplePlan
	for i := range plans {
		if plans[i].Category != category {
			continue
		}
		if strings.EqualFold(plans[i].Buyer, buyer) {
			return &plans[i]
		}
		if fallback == nil && isWildcardBuyer(plans[i].Buyer) {
			fallback = &plans[i]
		}
	}
	return fallback
}
