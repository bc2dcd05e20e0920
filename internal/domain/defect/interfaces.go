package defect

import (
	"context"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
)

// EntryRepository provides persistence for defect entries.
type EntryRepository interface {
	Create(ctx context.Context, tenantID string, entry *Entry) error
	Get(ctx context.Context, tenantID, id string) (*Entry, error)
	ListBySession(ctx context.Context, tenantID, sessionID string) ([]Entry, error)
	ListBySessions(ctx context.Context, tenantID string, sessionIDs []string) ([]Entry, error)
}

// SessionRepository provides session lookups for the recorder.
type SessionRepository interface {
	Get(ctx context.Context, tenantID, id string) (*session.Session, error)
}

// AuditRepository logs recorder events.
type AuditRepository interface {
	Log(ctx context.Context, tenantID string, entry *audit.Entry) error
}
