package defect

import "github.com/stitchdesk/garmentqc/internal/domain/quality"

// CatalogDefect is one row of the externally maintained defect list the
// recording form offers. StatusRulesByBuyer carries buyer-specific severity
// overrides; the recorder treats the catalog as already-resolved input.
type CatalogDefect struct {
	DefectID           string                      `json:"defect_id"`
	Code               string                      `json:"code"`
	Name               string                      `json:"name"`
	Category           string                      `json:"category,omitempty"`
	StatusRulesByBuyer map[string]quality.Severity `json:"status_rules_by_buyer,omitempty"`
}

// DefaultStatus returns the severity the catalog prescribes for a buyer,
// falling back to SeverityNone when no rule exists.
func (c CatalogDefect) DefaultStatus(buyer string) quality.Severity {
	if sev, ok := c.StatusRulesByBuyer[buyer]; ok {
		return sev
	}
	return quality.SeverityNone
}
