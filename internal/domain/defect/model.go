package defect

import (
	"time"

	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

// View identifies which side of the garment a location sits on
type View string

const (
	ViewFront View = "FRONT"
	ViewBack  View = "BACK"
)

// Position records the judgement for one inspected piece within a location.
type Position struct {
	PieceNo int              `json:"piece_no"`
	Status  quality.Severity `json:"status"`
	Comment string           `json:"comment,omitempty"`
}

// Location is one marked spot on the garment. Images are evidence references;
// at least one image per defective unit is required before an entry may be
// saved.
type Location struct {
	LocationNo   int        `json:"location_no"`
	LocationName string     `json:"location_name"`
	View         View       `json:"view"`
	Quantity     int        `json:"quantity"`
	Positions    []Position `json:"positions,omitempty"`
	Images       []string   `json:"images,omitempty"`
}

// Entry is one raw defect occurrence recorded under a session. Entries are
// immutable once written; a correction is a new entry, never an edit.
type Entry struct {
	ID         string           `json:"id"`
	TenantID   string           `json:"tenant_id"`
	SessionID  string           `json:"session_id"`
	DefectID   string           `json:"defect_id"`
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Category   string           `json:"category,omitempty"`
	Status     quality.Severity `json:"status"`
	Quantity   int              `json:"quantity"`
	NoLocation bool             `json:"no_location"`
	QCRef      string           `json:"qc_ref,omitempty"`
	Remark     string           `json:"remark,omitempty"`
	Locations  []Location       `json:"locations,omitempty"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// Aggregated is the derived per-defect rollup. It is recomputed from the entry
// set on demand and never persisted.
type Aggregated struct {
	DefectID string         `json:"defect_id"`
	Code     string         `json:"code"`
	Name     string         `json:"name"`
	TotalQty int            `json:"total_qty"`
	Counts   quality.Counts `json:"counts"`
	Entries  []Entry        `json:"entries"`
}
