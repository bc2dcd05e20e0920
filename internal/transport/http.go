// Package transport exposes the inspection domain as a JSON HTTP API.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/inspection"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// Services bundles the domain services the API serves.
type Services struct {
	Orders       *order.Service
	Sessions     *session.Service
	Defects      *defect.Service
	Inspections  *inspection.Service
	Measurements *measurement.Service
	Ledger       *ledger.Service
	Audit        *audit.Service
}

// Catalogs bundles the catalog repositories the seeding endpoints write to.
type Catalogs struct {
	Plans   repository.PlanRepository
	Specs   repository.SpecRepository
	Defects repository.CatalogRepository
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	catalogs Catalogs
	logger   *slog.Logger
}

// NewRouter creates the API router with middleware.
func NewRouter(services Services, catalogs Catalogs, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{services: services, catalogs: catalogs, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Post("/orders", srv.handleCreateOrder)
		r.Get("/orders/{orderID}", srv.handleGetOrder)
		r.Get("/orders/{orderID}/sessions", srv.handleListOrderSessions)

		r.Post("/sessions", srv.handleStartSession)
		r.Get("/sessions/{sessionID}", srv.handleGetSession)
		r.Post("/sessions/{sessionID}/close", srv.handleCloseSession)

		r.Post("/defects", srv.handleRecordDefect)
		r.Get("/defects", srv.handleListDefects)

		r.Post("/inspections/evaluate", srv.handleEvaluateInspection)

		r.Post("/measurements/evaluate", srv.handleEvaluatePoint)
		r.Post("/measurements/records", srv.handleEvaluateRecord)

		r.Post("/items/{itemIndex}/checks", srv.handleAppendCheck)
		r.Get("/items/{itemIndex}/checks", srv.handleCheckHistory)
		r.Get("/items/{itemIndex}/checks/latest", srv.handleLatestCheck)
		r.Get("/checks/latest", srv.handleLatestChecks)

		r.Get("/catalog/defects", srv.handleListCatalog)
		r.Put("/catalog/defects", srv.handlePutCatalog)
		r.Put("/catalog/plans", srv.handlePutPlans)
		r.Put("/catalog/specs", srv.handlePutSpecs)

		r.Get("/audit", srv.handleListAudit)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
