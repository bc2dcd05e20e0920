package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
)

// OrderRepository is a mock for repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, tenantID string, ord *order.Order) error {
	args := m.Called(ctx, tenantID, ord)
	return args.Error(0)
}

func (m *OrderRepository) Get(ctx context.Context, tenantID, id string) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if ord, ok := args.Get(0).(*order.Order); ok {
		return ord, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, tenantID string) ([]order.Order, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]order.Order); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for repository.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, tenantID string, sess *session.Session) error {
	args := m.Called(ctx, tenantID, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, tenantID, id string) (*session.Session, error) {
	args := m.Called(ctx, tenantID, id)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Close(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *SessionRepository) ListByOrder(ctx context.Context, tenantID, orderID string) ([]session.Session, error) {
	args := m.Called(ctx, tenantID, orderID)
	if list, ok := args.Get(0).([]session.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// EntryRepository is a mock for repository.EntryRepository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Create(ctx context.Context, tenantID string, entry *defect.Entry) error {
	args := m.Called(ctx, tenantID, entry)
	return args.Error(0)
}

func (m *EntryRepository) Get(ctx context.Context, tenantID, id string) (*defect.Entry, error) {
	args := m.Called(ctx, tenantID, id)
	if entry, ok := args.Get(0).(*defect.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) ListBySession(ctx context.Context, tenantID, sessionID string) ([]defect.Entry, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if list, ok := args.Get(0).([]defect.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) ListBySessions(ctx context.Context, tenantID string, sessionIDs []string) ([]defect.Entry, error) {
	args := m.Called(ctx, tenantID, sessionIDs)
	if list, ok := args.Get(0).([]defect.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CheckRepository is a mock for repository.CheckRepository.
type CheckRepository struct {
	mock.Mock
}

func (m *CheckRepository) Append(ctx context.Context, tenantID string, check *ledger.Check) error {
	args := m.Called(ctx, tenantID, check)
	return args.Error(0)
}

func (m *CheckRepository) GetLatest(ctx context.Context, tenantID string, itemIndex int) (*ledger.Check, error) {
	args := m.Called(ctx, tenantID, itemIndex)
	if check, ok := args.Get(0).(*ledger.Check); ok {
		return check, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CheckRepository) ListByItem(ctx context.Context, tenantID string, itemIndex int) ([]ledger.Check, error) {
	args := m.Called(ctx, tenantID, itemIndex)
	if list, ok := args.Get(0).([]ledger.Check); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CheckRepository) ListLatest(ctx context.Context, tenantID string) ([]ledger.Check, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]ledger.Check); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PlanRepository is a mock for repository.PlanRepository.
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) Put(ctx context.Context, tenantID string, plan *aql.SamplePlan) error {
	args := m.Called(ctx, tenantID, plan)
	return args.Error(0)
}

func (m *PlanRepository) ListForBuyer(ctx context.Context, tenantID, buyer string) ([]aql.SamplePlan, error) {
	args := m.Called(ctx, tenantID, buyer)
	if list, ok := args.Get(0).([]aql.SamplePlan); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SpecRepository is a mock for repository.SpecRepository.
type SpecRepository struct {
	mock.Mock
}

func (m *SpecRepository) Put(ctx context.Context, tenantID string, spec *measurement.Spec) error {
	args := m.Called(ctx, tenantID, spec)
	return args.Error(0)
}

func (m *SpecRepository) Get(ctx context.Context, tenantID, id string) (*measurement.Spec, error) {
	args := m.Called(ctx, tenantID, id)
	if spec, ok := args.Get(0).(*measurement.Spec); ok {
		return spec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SpecRepository) List(ctx context.Context, tenantID string) ([]measurement.Spec, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]measurement.Spec); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CatalogRepository is a mock for repository.CatalogRepository.
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) Put(ctx context.Context, tenantID string, def *defect.CatalogDefect) error {
	args := m.Called(ctx, tenantID, def)
	return args.Error(0)
}

func (m *CatalogRepository) List(ctx context.Context, tenantID string) ([]defect.CatalogDefect, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]defect.CatalogDefect); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AuditRepository is a mock for repository.AuditRepository.
type AuditRepository struct {
	mock.Mock
}

func (m *AuditRepository) Log(ctx context.Context, tenantID string, entry *audit.Entry) error {
	args := m.Called(ctx, tenantID, entry)
	return args.Error(0)
}

func (m *AuditRepository) List(ctx context.Context, tenantID string, opts audit.ListOptions) ([]audit.Entry, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]audit.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
