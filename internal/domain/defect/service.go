package defect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service handles defect recorder operations.
type Service struct {
	entries  EntryRepository
	sessions SessionRepository
	auditLog AuditRepository
	logger   *slog.Logger
}

// NewService creates a new defect service.
func NewService(entries EntryRepository, sessions SessionRepository, auditLog AuditRepository, logger *slog.Logger) *Service {
	return &Service{
		entries:  entries,
		sessions: sessions,
		auditLog: auditLog,
		logger:   logger,
	}
}

// RecordRequest describes one raw defect occurrence to record.
type RecordRequest struct {
	SessionID  string
	DefectID   string
	Code       string
	Name       string
	Category   string
	Status     quality.Severity
	Quantity   int
	NoLocation bool
	QCRef      string
	Remark     string
	Locations  []Location
}

// Record validates and persists a defect entry under an open session.
func (s *Service) Record(ctx context.Context, tenantID string, req RecordRequest) (*Entry, error) {
	entry := &Entry{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
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
		RecordedAt: time.Now(),
	}

	if err := ValidateEntry(entry); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, tenantID, req.SessionID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !sess.Open() {
		return nil, ErrSessionClosed
	}

	if err := s.entries.Create(ctx, tenantID, entry); err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	if s.auditLog != nil {
		_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
			OrderID:   sess.OrderID,
			SessionID: &sess.ID,
			EventType: audit.TypeEntryRecorded,
			Summary:   fmt.Sprintf("recorded defect %s x%d", entry.DefectID, entry.Quantity),
		})
	}

	return entry, nil
}

// Get returns an entry by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Entry, error) {
	entry, err := s.entries.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("getting entry: %w", err)
	}
	return entry, nil
}

// ListBySession returns the entries recorded under one session.
func (s *Service) ListBySession(ctx context.Context, tenantID, sessionID string) ([]Entry, error) {
	return s.entries.ListBySession(ctx, tenantID, sessionID)
}

// Summarize aggregates the entries of the selected sessions.
func (s *Service) Summarize(ctx context.Context, tenantID string, sessionIDs []string) ([]Aggregated, error) {
	if len(sessionIDs) == 0 {
		return nil, ErrInvalidInput
	}
	entries, err := s.entries.ListBySessions(ctx, tenantID, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return Aggregate(entries)
}
