package repository

import (
	"context"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
)

// OrderRepository manages order persistence
type OrderRepository interface {
	Create(ctx context.Context, tenantID string, ord *order.Order) error
	Get(ctx context.Context, tenantID, id string) (*order.Order, error)
	List(ctx context.Context, tenantID string) ([]order.Order, error)
}

// SessionRepository manages inspection session persistence
type SessionRepository interface {
	Create(ctx context.Context, tenantID string, sess *session.Session) error
	Get(ctx context.Context, tenantID, id string) (*session.Session, error)
	Close(ctx context.Context, tenantID, id string) error
	ListByOrder(ctx context.Context, tenantID, orderID string) ([]session.Session, error)
}

// EntryRepository manages defect entry persistence
type EntryRepository interface {
	Create(ctx context.Context, tenantID string, entry *defect.Entry) error
	Get(ctx context.Context, tenantID, id string) (*defect.Entry, error)
	ListBySession(ctx context.Context, tenantID, sessionID string) ([]defect.Entry, error)
	ListBySessions(ctx context.Context, tenantID string, sessionIDs []string) ([]defect.Entry, error)
}

// CheckRepository manages the append-only ledger of checks
type CheckRepository interface {
	Append(ctx context.Context, tenantID string, check *ledger.Check) error
	GetLatest(ctx context.Context, tenantID string, itemIndex int) (*ledger.Check, error)
	ListByItem(ctx context.Context, tenantID string, itemIndex int) ([]ledger.Check, error)
	ListLatest(ctx context.Context, tenantID string) ([]ledger.Check, error)
}

// PlanRepository manages the AQL sampling-plan catalog
type PlanRepository interface {
	Put(ctx context.Context, tenantID string, plan *aql.SamplePlan) error
	ListForBuyer(ctx context.Context, tenantID, buyer string) ([]aql.SamplePlan, error)
}

// SpecRepository manages the measurement-spec catalog
type SpecRepository interface {
	Put(ctx context.Context, tenantID string, spec *measurement.Spec) error
	Get(ctx context.Context, tenantID, id string) (*measurement.Spec, error)
	List(ctx context.Context, tenantID string) ([]measurement.Spec, error)
}

// CatalogRepository manages the defect catalog
type CatalogRepository interface {
	Put(ctx context.Context, tenantID string, def *defect.CatalogDefect) error
	List(ctx context.Context, tenantID string) ([]defect.CatalogDefect, error)
}

// AuditRepository manages audit trail persistence
type AuditRepository interface {
	Log(ctx context.Context, tenantID string, entry *audit.Entry) error
	List(ctx context.Context, tenantID string, opts audit.ListOptions) ([]audit.Entry, error)
}
