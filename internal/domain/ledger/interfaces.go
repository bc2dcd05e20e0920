package ledger

import (
	"context"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
)

// CheckRepository provides append-only persistence for checks. Append must
// refuse to overwrite an existing (item, version) pair.
type CheckRepository interface {
	Append(ctx context.Context, tenantID string, check *Check) error
	GetLatest(ctx context.Context, tenantID string, itemIndex int) (*Check, error)
	ListByItem(ctx context.Context, tenantID string, itemIndex int) ([]Check, error)
	ListLatest(ctx context.Context, tenantID string) ([]Check, error)
}

// AuditRepository logs ledger events.
type AuditRepository interface {
	Log(ctx context.Context, tenantID string, entry *audit.Entry) error
}
