package measurement

import (
	"github.com/shopspring/decimal"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// Band is the tolerance window around a nominal value for one size.
type Band struct {
	Nominal decimal.Decimal `json:"nominal"`
	TolNeg  decimal.Decimal `json:"tol_neg"`
	TolPos  decimal.Decimal `json:"tol_pos"`
}

// Lower returns the inclusive lower bound.
func (b Band) Lower() decimal.Decimal { return b.Nominal.Sub(b.TolNeg) }

// Upper returns the inclusive upper bound.
func (b Band) Upper() decimal.Decimal { return b.Nominal.Add(b.TolPos) }

// Spec is one measurement point with its per-size tolerance table.
type Spec struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	PointName       string          `json:"point_name"`
	ToleranceBySize map[string]Band `json:"tolerance_by_size"`
}

// Reading is one raw measured value for a piece. DecimalValue carries the
// parseable form; DisplayValue preserves what the inspector keyed in
// (fractional notation and the like).
type Reading struct {
	DecimalValue string `json:"decimal_value"`
	DisplayValue string `json:"display_value,omitempty"`
}

// Record captures the readings for one garment size: spec ID to piece index to
// reading.
type Record struct {
	Size           string                     `json:"size"`
	KValue         string                     `json:"k_value,omitempty"`
	SelectedPieces []int                      `json:"selected_pieces,omitempty"`
	Readings       map[string]map[int]Reading `json:"readings"`
}

// Result is the judgement for one measurement cell. Indeterminate covers both
// a missing tolerance band and a missing or unparseable reading; it is
// distinct from a failing judgement and renders as neutral.
type Result struct {
	Status quality.Status `json:"status"`
	Band   *Band          `json:"band,omitempty"`
}
