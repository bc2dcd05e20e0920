package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service maintains the append-only history of repeated checks per item.
// Earlier checks are never rewritten: an edit that changes a reading produces
// the next version, and an identical resubmission is a no-op.
type Service struct {
	checks   CheckRepository
	auditLog AuditRepository
	logger   *slog.Logger
}

// NewService creates a new ledger service.
func NewService(checks CheckRepository, auditLog AuditRepository, logger *slog.Logger) *Service {
	return &Service{
		checks:   checks,
		auditLog: auditLog,
		logger:   logger,
	}
}

// AppendRequest describes a new reading snapshot for an item.
type AppendRequest struct {
	ItemIndex int
	SessionID string
	Readings  map[string]string
}

// AppendResult reports whether a new version was written and which version is
// now the latest for the item.
type AppendResult struct {
	Written bool `json:"written"`
	Version int  `json:"version"`
}

// Append writes a new check version iff the readings differ from the latest
// stored check for the item. Change detection compares each reading field by
// value after normalization.
func (s *Service) Append(ctx context.Context, tenantID string, req AppendRequest) (*AppendResult, error) {
	if req.ItemIndex < 1 || len(req.Readings) == 0 {
		return nil, ErrInvalidInput
	}

	version := 1
	latest, err := s.checks.GetLatest(ctx, tenantID, req.ItemIndex)
	switch {
	case err == nil:
		if sameReadings(latest.Readings, req.Readings) {
			return &AppendResult{Written: false, Version: latest.Version}, nil
		}
		version = latest.Version + 1
	case errors.Is(err, repoerr.ErrNotFound):
		// first check for this item
	default:
		return nil, fmt.Errorf("loading latest check: %w", err)
	}

	check := &Check{
		TenantID:   tenantID,
		ItemIndex:  req.ItemIndex,
		Version:    version,
		SessionID:  req.SessionID,
		Readings:   req.Readings,
		RecordedAt: time.Now(),
	}

	if err := s.checks.Append(ctx, tenantID, check); err != nil {
		if errors.Is(err, repoerr.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("appending check: %w", err)
	}

	if s.auditLog != nil {
		_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
			SessionID: optional(req.SessionID),
			EventType: audit.TypeCheckAppended,
			Summary:   fmt.Sprintf("appended %s for %s", check.CheckLabel(), check.ItemLabel()),
		})
	}

	return &AppendResult{Written: true, Version: version}, nil
}

// Latest returns the most recent check for an item, for editing pre-fill.
func (s *Service) Latest(ctx context.Context, tenantID string, itemIndex int) (*Check, error) {
	check, err := s.checks.GetLatest(ctx, tenantID, itemIndex)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrCheckNotFound
		}
		return nil, fmt.Errorf("getting latest check: %w", err)
	}
	return check, nil
}

// History returns the full ordered check history for an item, for audit and
// paper views.
func (s *Service) History(ctx context.Context, tenantID string, itemIndex int) ([]Check, error) {
	checks, err := s.checks.ListByItem(ctx, tenantID, itemIndex)
	if err != nil {
		return nil, fmt.Errorf("listing checks: %w", err)
	}
	return checks, nil
}

// LatestAll returns the most recent check of every item, ordered by item
// index, for the status badges that only look at the newest reading.
func (s *Service) LatestAll(ctx context.Context, tenantID string) ([]Check, error) {
	checks, err := s.checks.ListLatest(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing latest checks: %w", err)
	}
	return checks, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
