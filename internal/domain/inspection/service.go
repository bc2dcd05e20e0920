// Package inspection orchestrates the decision flow: aggregate recorded
// defects, resolve the buyer's sampling plan, and render the verdict.
package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service runs inspection evaluations.
type Service struct {
	entries  EntryRepository
	orders   OrderRepository
	plans    PlanRepository
	auditLog AuditRepository
	logger   *slog.Logger
}

// NewService creates a new inspection service.
func NewService(
	entries EntryRepository,
	orders OrderRepository,
	plans PlanRepository,
	auditLog AuditRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		entries:  entries,
		orders:   orders,
		plans:    plans,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Request selects the sessions to evaluate. Buyer and InspectedQty default to
// the order's buyer-determination result and order quantity when unset.
type Request struct {
	OrderID      string
	SessionIDs   []string
	Buyer        string
	InspectedQty int
}

// Result is handed back to the rendering layer: the aggregated defect table,
// category totals, resolved sampling rows and the verdict banner.
type Result struct {
	Defects     []defect.Aggregated                 `json:"defects"`
	Counts      quality.Counts                      `json:"counts"`
	Resolutions map[quality.Severity]aql.Resolution `json:"resolutions"`
	Decision    aql.Decision                        `json:"decision"`
}

// Evaluate aggregates the selected sessions' entries and renders the AQL
// verdict. Catalog anomalies (overlapping rows, defects without a plan) are
// surfaced in the result and written to the audit trail, never swallowed.
func (s *Service) Evaluate(ctx context.Context, tenantID string, req Request) (*Result, error) {
	if req.OrderID == "" || len(req.SessionIDs) == 0 {
		return nil, ErrInvalidInput
	}

	ord, err := s.orders.Get(ctx, tenantID, req.OrderID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("loading order: %w", err)
	}

	buyer := req.Buyer
	if buyer == "" {
		buyer = ord.Buyer
	}
	inspectedQty := req.InspectedQty
	if inspectedQty == 0 {
		inspectedQty = ord.Quantity
	}

	entries, err := s.entries.ListBySessions(ctx, tenantID, req.SessionIDs)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	aggregated, err := defect.Aggregate(entries)
	if err != nil {
		return nil, fmt.Errorf("aggregating entries: %w", err)
	}
	counts := defect.Totals(aggregated)

	plans, err := s.plans.ListForBuyer(ctx, tenantID, buyer)
	if err != nil {
		return nil, fmt.Errorf("listing sampling plans: %w", err)
	}

	resolutions := aql.ResolveAll(plans, buyer, inspectedQty)
	decision := aql.Decide(counts, resolutions)
	s.reportAnomalies(ctx, tenantID, ord.ID, buyer, resolutions, decision)

	if s.auditLog != nil {
		_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
			OrderID:   ord.ID,
			EventType: audit.TypeDecisionEvaluated,
			Summary:   fmt.Sprintf("evaluated order %s: %s", ord.ID, decision.Final),
		})
	}

	return &Result{
		Defects:     aggregated,
		Counts:      counts,
		Resolutions: resolutions,
		Decision:    decision,
	}, nil
}

func (s *Service) reportAnomalies(
	ctx context.Context,
	tenantID, orderID, buyer string,
	resolutions map[quality.Severity]aql.Resolution,
	decision aql.Decision,
) {
	for _, cat := range quality.Categories {
		if resolutions[cat].Overlap {
			if s.logger != nil {
				s.logger.Warn("overlapping sampling rows",
					"buyer", buyer, "category", cat, "order", orderID)
			}
			if s.auditLog != nil {
				_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
					OrderID:   orderID,
					EventType: audit.TypeAnomalyDetected,
					Summary:   fmt.Sprintf("overlapping sampling rows for buyer %s, category %s", buyer, cat),
				})
			}
		}
		if decision.PerCategory[cat].Flagged {
			if s.logger != nil {
				s.logger.Warn("defects recorded without sampling plan",
					"buyer", buyer, "category", cat, "order", orderID,
					"count", decision.PerCategory[cat].Count)
			}
			if s.auditLog != nil {
				_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
					OrderID:   orderID,
					EventType: audit.TypeAnomalyDetected,
					Summary:   fmt.Sprintf("%d %s defect(s) recorded with no sampling plan for buyer %s", decision.PerCategory[cat].Count, cat, buyer),
				})
			}
		}
	}
}
