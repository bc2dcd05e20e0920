package measurement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// Evaluate judges a raw reading against the spec's tolerance for a size. A
// missing band yields Indeterminate with no band attached: no tolerance entry
// exists for the size, so no judgement is rendered. A non-numeric or empty
// reading is treated as "no reading", never coerced to zero. Bounds are
// inclusive: a reading exactly on nominal-tolNeg or nominal+tolPos passes.
func Evaluate(spec Spec, size, raw string) Result {
	band, ok := spec.ToleranceBySize[size]
	if !ok {
		return Result{Status: quality.StatusIndeterminate}
	}

	value, err := parseReading(raw)
	if err != nil {
		return Result{Status: quality.StatusIndeterminate, Band: &band}
	}

	status := quality.StatusFail
	if value.GreaterThanOrEqual(band.Lower()) && value.LessThanOrEqual(band.Upper()) {
		status = quality.StatusPass
	}
	return Result{Status: status, Band: &band}
}

func parseReading(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, ErrInvalidInput
	}
	return decimal.NewFromString(trimmed)
}
