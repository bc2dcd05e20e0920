package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeReading canonicalizes a measured value so that "1.50", " 1.5" and
// "1.5" compare equal. Non-numeric values fall back to trimmed string
// comparison.
func normalizeReading(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if d, err := decimal.NewFromString(trimmed); err == nil {
		return d.String()
	}
	return trimmed
}

// sameReadings reports whether two reading sets are equal after
// normalization. A field present in one set and absent in the other counts as
// a change.
func sameReadings(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for field, av := range a {
		bv, ok := b[field]
		if !ok {
			return false
		}
		if normalizeReading(av) != normalizeReading(bv) {
			return false
		}
	}
	return true
}
