package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/inspection"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
)

func tenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID, ok := TenantFromContext(r.Context())
	if !ok || tenantID == "" {
		http.Error(w, "missing tenant", http.StatusUnauthorized)
		return "", false
	}
	return tenantID, true
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	ord, err := s.services.Orders.Create(r.Context(), tenantID, order.CreateRequest{
		StyleNo:  req.StyleNo,
		PONumber: req.PONumber,
		Buyer:    req.Buyer,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	ord, err := s.services.Orders.Get(r.Context(), tenantID, chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) handleListOrderSessions(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	sessions, err := s.services.Sessions.ListByOrder(r.Context(), tenantID, chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req startSessionRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	sess, err := s.services.Sessions.Start(r.Context(), tenantID, session.StartRequest{
		OrderID:     req.OrderID,
		Line:        req.Line,
		Table:       req.Table,
		Color:       req.Color,
		InspectorID: req.InspectorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	sess, err := s.services.Sessions.Get(r.Context(), tenantID, chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	if err := s.services.Sessions.Close(r.Context(), tenantID, chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordDefect(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req recordDefectRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	entry, err := s.services.Defects.Record(r.Context(), tenantID, defect.RecordRequest{
		SessionID:  req.SessionID,
		DefectID:   req.DefectID,
		Code:       req.Code,
		Name:       req.Name,
		Category:   req.Category,
		Status:     req.Status,
		Quantity:   req.Quantity,
		NoLocation: req.NoLocation,
		QCRef:      req.QCRef,
		Remark:     req.Remark,
		Locations:  req.Locations,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListDefects(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "session_id query parameter required"})
		return
	}
	entries, err := s.services.Defects.ListBySession(r.Context(), tenantID, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleEvaluateInspection(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req evaluateInspectionRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	result, err := s.services.Inspections.Evaluate(r.Context(), tenantID, inspection.Request{
		OrderID:      req.OrderID,
		SessionIDs:   req.SessionIDs,
		Buyer:        req.Buyer,
		InspectedQty: req.InspectedQty,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEvaluatePoint(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req evaluatePointRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	result, err := s.services.Measurements.EvaluatePoint(r.Context(), tenantID, req.SpecID, req.Size, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEvaluateRecord(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req evaluateRecordRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	results, err := s.services.Measurements.EvaluateRecord(r.Context(), tenantID, measurement.Record{
		Size:     req.Size,
		KValue:   req.KValue,
		Readings: req.Readings,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

type appendCheckResponse struct {
	Written    bool   `json:"written"`
	Version    int    `json:"version"`
	CheckLabel string `json:"check_label"`
}

func (s *Server) handleAppendCheck(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	itemIndex, err := strconv.Atoi(chi.URLParam(r, "itemIndex"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item index"})
		return
	}
	var req appendCheckRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	result, err := s.services.Ledger.Append(r.Context(), tenantID, ledger.AppendRequest{
		ItemIndex: itemIndex,
		SessionID: req.SessionID,
		Readings:  req.Readings,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if result.Written {
		status = http.StatusCreated
	}
	writeJSON(w, status, appendCheckResponse{
		Written:    result.Written,
		Version:    result.Version,
		CheckLabel: ledger.Check{Version: result.Version}.CheckLabel(),
	})
}

func (s *Server) handleCheckHistory(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	itemIndex, err := strconv.Atoi(chi.URLParam(r, "itemIndex"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item index"})
		return
	}
	checks, err := s.services.Ledger.History(r.Context(), tenantID, itemIndex)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func (s *Server) handleLatestCheck(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	itemIndex, err := strconv.Atoi(chi.URLParam(r, "itemIndex"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item index"})
		return
	}
	check, err := s.services.Ledger.Latest(r.Context(), tenantID, itemIndex)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (s *Server) handleLatestChecks(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	checks, err := s.services.Ledger.LatestAll(r.Context(), tenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func (s *Server) handleListCatalog(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	defs, err := s.catalogs.Defects.List(r.Context(), tenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, defs)
}

func (s *Server) handlePutCatalog(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req putCatalogRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	for i := range req.Defects {
		if err := s.catalogs.Defects.Put(r.Context(), tenantID, &req.Defects[i]); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutPlans(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req putPlansRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	for i := range req.Plans {
		if err := s.catalogs.Plans.Put(r.Context(), tenantID, &req.Plans[i]); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutSpecs(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	var req putSpecsRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	for i := range req.Specs {
		if err := s.catalogs.Specs.Put(r.Context(), tenantID, &req.Specs[i]); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAudit(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}
	opts := audit.ListOptions{OrderID: r.URL.Query().Get("order_id")}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid limit"})
			return
		}
		opts.Limit = n
	}
	entries, err := s.services.Audit.Recent(r.Context(), tenantID, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
