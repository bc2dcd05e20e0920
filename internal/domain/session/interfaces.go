package session

import (
	"context"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
)

// Repository provides persistence for sessions.
type Repository interface {
	Create(ctx context.Context, tenantID string, sess *Session) error
	Get(ctx context.Context, tenantID, id string) (*Session, error)
	Close(ctx context.Context, tenantID, id string) error
	ListByOrder(ctx context.Context, tenantID, orderID string) ([]Session, error)
}

// OrderRepository provides order lookups for session creation.
type OrderRepository interface {
	Get(ctx context.Context, tenantID, id string) (*order.Order, error)
}

// AuditRepository logs session lifecycle events.
type AuditRepository interface {
	Log(ctx context.Context, tenantID string, entry *audit.Entry) error
}
