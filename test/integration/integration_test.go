package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/inspection"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
	"github.com/stitchdesk/garmentqc/internal/sqlite"
)

type testEnv struct {
	db       *sqlite.DB
	planRepo *sqlite.PlanRepository
	specRepo *sqlite.SpecRepository

	orderSvc       *order.Service
	sessionSvc     *session.Service
	defectSvc      *defect.Service
	inspectionSvc  *inspection.Service
	measurementSvc *measurement.Service
	ledgerSvc      *ledger.Service
	auditSvc       *audit.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	orderRepo := sqlite.NewOrderRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	entryRepo := sqlite.NewEntryRepository(db)
	checkRepo := sqlite.NewCheckRepository(db)
	planRepo := sqlite.NewPlanRepository(db)
	specRepo := sqlite.NewSpecRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)

	return &testEnv{
		db:             db,
		planRepo:       planRepo,
		specRepo:       specRepo,
		orderSvc:       order.NewService(orderRepo, nil),
		sessionSvc:     session.NewService(sessionRepo, orderRepo, auditRepo, nil),
		defectSvc:      defect.NewService(entryRepo, sessionRepo, auditRepo, nil),
		inspectionSvc:  inspection.NewService(entryRepo, orderRepo, planRepo, auditRepo, nil),
		measurementSvc: measurement.NewService(specRepo, nil),
		ledgerSvc:      ledger.NewService(checkRepo, auditRepo, nil),
		auditSvc:       audit.NewService(auditRepo, nil),
	}
}

func (env *testEnv) seedPlans(t *testing.T, ctx context.Context, tenantID string) {
	t.Helper()
	plans := []aql.SamplePlan{
		{Buyer: "acme", Category: quality.SeverityMinor, Rows: []aql.SampleRow{
			{Min: 1, Max: 500, SampleSize: 32, SampleLetter: "H", Accept: 3, Reject: 4},
		}},
		{Buyer: "acme", Category: quality.SeverityMajor, Rows: []aql.SampleRow{
			{Min: 1, Max: 500, SampleSize: 32, SampleLetter: "H", Accept: 2, Reject: 3},
		}},
		{Buyer: "acme", Category: quality.SeverityCritical, Rows: []aql.SampleRow{
			{Min: 1, Max: 500, SampleSize: 32, SampleLetter: "H", Accept: 0, Reject: 1},
		}},
	}
	for i := range plans {
		require.NoError(t, env.planRepo.Put(ctx, tenantID, &plans[i]))
	}
}

func TestIntegration_InspectionWorkflow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tenantID := "tenant1"
	env.seedPlans(t, ctx, tenantID)

	ord, err := env.orderSvc.Create(ctx, tenantID, order.CreateRequest{
		StyleNo:  "ST-1",
		PONumber: "PO-9",
		Buyer:    "acme",
		Quantity: 200,
	})
	require.NoError(t, err)

	morning, err := env.sessionSvc.Start(ctx, tenantID, session.StartRequest{
		OrderID:     ord.ID,
		Line:        "L3",
		InspectorID: "insp1",
	})
	require.NoError(t, err)
	afternoon, err := env.sessionSvc.Start(ctx, tenantID, session.StartRequest{
		OrderID:     ord.ID,
		Line:        "L3",
		InspectorID: "insp2",
	})
	require.NoError(t, err)

	_, err = env.defectSvc.Record(ctx, tenantID, defect.RecordRequest{
		SessionID: morning.ID,
		DefectID:  "d1",
		Code:      "10",
		Name:      "broken stitch",
		Status:    quality.SeverityMajor,
		Quantity:  2,
		Locations: []defect.Location{{
			LocationNo:   1,
			LocationName: "collar",
			View:         defect.ViewFront,
			Quantity:     2,
			Images:       []string{"a.jpg", "b.jpg"},
		}},
	})
	require.NoError(t, err)
	_, err = env.defectSvc.Record(ctx, tenantID, defect.RecordRequest{
		SessionID:  afternoon.ID,
		DefectID:   "d1",
		Code:       "10",
		Name:       "broken stitch",
		Status:     quality.SeverityMajor,
		Quantity:   1,
		NoLocation: true,
	})
	require.NoError(t, err)
	_, err = env.defectSvc.Record(ctx, tenantID, defect.RecordRequest{
		SessionID:  afternoon.ID,
		DefectID:   "d2",
		Code:       "5",
		Name:       "stain",
		Status:     quality.SeverityMinor,
		Quantity:   1,
		NoLocation: true,
	})
	require.NoError(t, err)

	// both sessions together: 3 major exceeds accept 2
	result, err := env.inspectionSvc.Evaluate(ctx, tenantID, inspection.Request{
		OrderID:    ord.ID,
		SessionIDs: []string{morning.ID, afternoon.ID},
	})
	require.NoError(t, err)
	require.Equal(t, quality.Counts{Minor: 1, Major: 3}, result.Counts)
	require.Equal(t, quality.StatusFail, result.Decision.Final)
	require.Len(t, result.Defects, 2)
	require.Equal(t, "5", result.Defects[0].Code) // numeric code order

	// the morning session alone stays within accept
	result, err = env.inspectionSvc.Evaluate(ctx, tenantID, inspection.Request{
		OrderID:    ord.ID,
		SessionIDs: []string{morning.ID},
	})
	require.NoError(t, err)
	require.Equal(t, quality.StatusPass, result.Decision.Final)

	// decisions land in the audit trail
	entries, err := env.auditSvc.Recent(ctx, tenantID, audit.ListOptions{OrderID: ord.ID})
	require.NoError(t, err)
	var decisions int
	for _, e := range entries {
		if e.EventType == audit.TypeDecisionEvaluated {
			decisions++
		}
	}
	require.Equal(t, 2, decisions)
}

func TestIntegration_ClosedSessionIsReadOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tenantID := "tenant1"

	ord, err := env.orderSvc.Create(ctx, tenantID, order.CreateRequest{
		StyleNo: "ST-1", Buyer: "acme", Quantity: 100,
	})
	require.NoError(t, err)

	sess, err := env.sessionSvc.Start(ctx, tenantID, session.StartRequest{
		OrderID: ord.ID, InspectorID: "insp1",
	})
	require.NoError(t, err)
	require.NoError(t, env.sessionSvc.Close(ctx, tenantID, sess.ID))

	_, err = env.defectSvc.Record(ctx, tenantID, defect.RecordRequest{
		SessionID:  sess.ID,
		DefectID:   "d1",
		Code:       "10",
		Name:       "x",
		Status:     quality.SeverityMinor,
		Quantity:   1,
		NoLocation: true,
	})
	require.ErrorIs(t, err, defect.ErrSessionClosed)

	require.ErrorIs(t, env.sessionSvc.Close(ctx, tenantID, sess.ID), session.ErrSessionClosed)
}

func TestIntegration_LedgerVersioning(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tenantID := "tenant1"

	first, err := env.ledgerSvc.Append(ctx, tenantID, ledger.AppendRequest{
		ItemIndex: 3,
		Readings:  map[string]string{"chest": "50.5", "waist": "40"},
	})
	require.NoError(t, err)
	require.True(t, first.Written)
	require.Equal(t, 1, first.Version)

	// equivalent formatting is a no-op
	same, err := env.ledgerSvc.Append(ctx, tenantID, ledger.AppendRequest{
		ItemIndex: 3,
		Readings:  map[string]string{"chest": "50.50", "waist": "40.0"},
	})
	require.NoError(t, err)
	require.False(t, same.Written)
	require.Equal(t, 1, same.Version)

	changed, err := env.ledgerSvc.Append(ctx, tenantID, ledger.AppendRequest{
		ItemIndex: 3,
		Readings:  map[string]string{"chest": "51", "waist": "40"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, changed.Version)

	history, err := env.ledgerSvc.History(ctx, tenantID, 3)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "50.5", history[0].Readings["chest"])
	require.Equal(t, "51", history[1].Readings["chest"])

	latest, err := env.ledgerSvc.Latest(ctx, tenantID, 3)
	require.NoError(t, err)
	require.Equal(t, 2, latest.Version)
}

func TestIntegration_MeasurementEvaluation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	tenantID := "tenant1"

	require.NoError(t, env.specRepo.Put(ctx, tenantID, &measurement.Spec{
		ID:        "chest",
		PointName: "Chest width",
		ToleranceBySize: map[string]measurement.Band{
			"M": {
				Nominal: decimal.NewFromInt(50),
				TolNeg:  decimal.NewFromInt(1),
				TolPos:  decimal.NewFromInt(1),
			},
		},
	}))

	results, err := env.measurementSvc.EvaluateRecord(ctx, tenantID, measurement.Record{
		Size: "M",
		Readings: map[string]map[int]measurement.Reading{
			"chest": {
				1: {DecimalValue: "51"},
				2: {DecimalValue: "51.1"},
				3: {DecimalValue: ""},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, quality.StatusPass, results["chest"][1].Status)
	require.Equal(t, quality.StatusFail, results["chest"][2].Status)
	require.Equal(t, quality.StatusIndeterminate, results["chest"][3].Status)
}
