package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/inspection"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps domain sentinel errors onto HTTP status codes. Unknown
// errors become 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrOrderNotFound),
		errors.Is(err, defect.ErrEntryNotFound),
		errors.Is(err, defect.ErrSessionNotFound),
		errors.Is(err, inspection.ErrOrderNotFound),
		errors.Is(err, measurement.ErrSpecNotFound),
		errors.Is(err, ledger.ErrCheckNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, session.ErrSessionClosed),
		errors.Is(err, defect.ErrSessionClosed),
		errors.Is(err, ledger.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, order.ErrInvalidInput),
		errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, defect.ErrInvalidInput),
		errors.Is(err, defect.ErrLocationRequired),
		errors.Is(err, defect.ErrQuantityMismatch),
		errors.Is(err, defect.ErrImagesMissing),
		errors.Is(err, inspection.ErrInvalidInput),
		errors.Is(err, measurement.ErrInvalidInput),
		errors.Is(err, ledger.ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
