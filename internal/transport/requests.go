package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decode unmarshals and validates a JSON request body.
func decode[T any](r *http.Request, dst *T) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

type createOrderRequest struct {
	StyleNo  string `json:"style_no" validate:"required"`
	PONumber string `json:"po_number"`
	Buyer    string `json:"buyer" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type startSessionRequest struct {
	OrderID     string `json:"order_id" validate:"required"`
	Line        string `json:"line"`
	Table       string `json:"table"`
	Color       string `json:"color"`
	InspectorID string `json:"inspector_id" validate:"required"`
}

type recordDefectRequest struct {
	SessionID  string            `json:"session_id" validate:"required"`
	DefectID   string            `json:"defect_id" validate:"required"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Status     quality.Severity  `json:"status" validate:"required,oneof=MINOR MAJOR CRITICAL NONE"`
	Quantity   int               `json:"quantity" validate:"gte=1"`
	NoLocation bool              `json:"no_location"`
	QCRef      string            `json:"qc_ref"`
	Remark     string            `json:"remark"`
	Locations  []defect.Location `json:"locations"`
}

type evaluateInspectionRequest struct {
	OrderID      string   `json:"order_id" validate:"required"`
	SessionIDs   []string `json:"session_ids" validate:"required,min=1"`
	Buyer        string   `json:"buyer"`
	InspectedQty int      `json:"inspected_qty" validate:"gte=0"`
}

type evaluatePointRequest struct {
	SpecID string `json:"spec_id" validate:"required"`
	Size   string `json:"size" validate:"required"`
	Value  string `json:"value"`
}

type evaluateRecordRequest struct {
	Size     string                                 `json:"size" validate:"required"`
	KValue   string                                 `json:"k_value"`
	Readings map[string]map[int]measurement.Reading `json:"readings" validate:"required,min=1"`
}

type appendCheckRequest struct {
	SessionID string            `json:"session_id"`
	Readings  map[string]string `json:"readings" validate:"required,min=1"`
}

type putPlansRequest struct {
	Plans []aql.SamplePlan `json:"plans" validate:"required,min=1"`
}

type putSpecsRequest struct {
	Specs []measurement.Spec `json:"specs" validate:"required,min=1"`
}

type putCatalogRequest struct {
	Defects []defect.CatalogDefect `json:"defects" validate:"required,min=1"`
}
