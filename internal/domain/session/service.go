package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service handles inspection session operations.
type Service struct {
	sessions Repository
	orders   OrderRepository
	auditLog AuditRepository
	logger   *slog.Logger
}

// NewService creates a new session service.
func NewService(sessions Repository, orders OrderRepository, auditLog AuditRepository, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		orders:   orders,
		auditLog: auditLog,
		logger:   logger,
	}
}

// StartRequest describes a session start request.
type StartRequest struct {
	OrderID     string
	Line        string
	Table       string
	Color       string
	InspectorID string
}

// Start opens a new inspection session for an order.
func (s *Service) Start(ctx context.Context, tenantID string, req StartRequest) (*Session, error) {
	if strings.TrimSpace(req.OrderID) == "" || strings.TrimSpace(req.InspectorID) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.orders.Get(ctx, tenantID, req.OrderID); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("loading order: %w", err)
	}

	sess := &Session{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		OrderID:     req.OrderID,
		Line:        req.Line,
		Table:       req.Table,
		Color:       req.Color,
		InspectorID: req.InspectorID,
		Status:      StatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.sessions.Create(ctx, tenantID, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if s.auditLog != nil {
		_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
			OrderID:   sess.OrderID,
			SessionID: &sess.ID,
			EventType: audit.TypeSessionStarted,
			Summary:   fmt.Sprintf("started session %s on line %s", sess.ID, sess.Line),
		})
	}

	return sess, nil
}

// Get fetches a session by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Session, error) {
	sess, err := s.sessions.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sess, nil
}

// Close closes a session. A closed session and the entries recorded under it
// become read-only.
func (s *Service) Close(ctx context.Context, tenantID, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	sess, err := s.sessions.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("loading session: %w", err)
	}
	if !sess.Open() {
		return ErrSessionClosed
	}

	if err := s.sessions.Close(ctx, tenantID, id); err != nil {
		return fmt.Errorf("closing session: %w", err)
	}

	if s.auditLog != nil {
		_ = s.auditLog.Log(ctx, tenantID, &audit.Entry{
			OrderID:   sess.OrderID,
			SessionID: &sess.ID,
			EventType: audit.TypeSessionClosed,
			Summary:   fmt.Sprintf("closed session %s", sess.ID),
		})
	}

	return nil
}

// ListByOrder returns the sessions recorded against an order.
func (s *Service) ListByOrder(ctx context.Context, tenantID, orderID string) ([]Session, error) {
	return s.sessions.ListByOrder(ctx, tenantID, orderID)
}
