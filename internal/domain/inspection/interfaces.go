package inspection

import (
	"context"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
)

// EntryRepository provides defect entries for aggregation.
type EntryRepository interface {
	ListBySessions(ctx context.Context, tenantID string, sessionIDs []string) ([]defect.Entry, error)
}

// OrderRepository provides order lookups for buyer and quantity defaults.
type OrderRepository interface {
	Get(ctx context.Context, tenantID, id string) (*order.Order, error)
}

// PlanRepository provides the sampling plans applicable to a buyer, including
// any wildcard fallback plans.
type PlanRepository interface {
	ListForBuyer(ctx context.Context, tenantID, buyer string) ([]aql.SamplePlan, error)
}

// AuditRepository logs decisions and data-integrity anomalies.
type AuditRepository interface {
	Log(ctx context.Context, tenantID string, entry *audit.Entry) error
}
