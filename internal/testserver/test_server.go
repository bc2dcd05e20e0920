// Package testserver spins up the full HTTP stack against an in-memory
// database for functional and integration tests.
package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/inspection"
	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/domain/session"
	"github.com/stitchdesk/garmentqc/internal/sqlite"
	"github.com/stitchdesk/garmentqc/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Token    string
	TenantID string
}

func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	orderRepo := sqlite.NewOrderRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	entryRepo := sqlite.NewEntryRepository(db)
	checkRepo := sqlite.NewCheckRepository(db)
	planRepo := sqlite.NewPlanRepository(db)
	specRepo := sqlite.NewSpecRepository(db)
	catalogRepo := sqlite.NewCatalogRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)

	orderSvc := order.NewService(orderRepo, nil)
	sessionSvc := session.NewService(sessionRepo, orderRepo, auditRepo, nil)
	defectSvc := defect.NewService(entryRepo, sessionRepo, auditRepo, nil)
	measurementSvc := measurement.NewService(specRepo, nil)
	ledgerSvc := ledger.NewService(checkRepo, auditRepo, nil)
	auditSvc := audit.NewService(auditRepo, nil)
	inspectionSvc := inspection.NewService(entryRepo, orderRepo, planRepo, auditRepo, nil)

	services := transport.Services{
		Orders:       orderSvc,
		Sessions:     sessionSvc,
		Defects:      defectSvc,
		Inspections:  inspectionSvc,
		Measurements: measurementSvc,
		Ledger:       ledgerSvc,
		Audit:        auditSvc,
	}
	catalogs := transport.Catalogs{
		Plans:   planRepo,
		Specs:   specRepo,
		Defects: catalogRepo,
	}

	resolver := &apiKeyResolver{db: db}
	router := transport.NewRouter(services, catalogs, transport.AuthMiddleware(resolver), nil)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Token:    token,
		TenantID: tenantID,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, tenantID string) error {
	_, err := ts.DB.Exec(
		`INSERT INTO api_keys (key_hash, tenant_id, created_at) VALUES (?, ?, ?)`,
		transport.HashToken(token), tenantID, time.Now(),
	)
	return err
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveTenant(ctx context.Context, token string) (string, error) {
	var tenantID string
	err := r.db.QueryRowContext(ctx,
		`SELECT tenant_id FROM api_keys WHERE key_hash = ?`,
		transport.HashToken(token)).Scan(&tenantID)
	if err != nil || tenantID == "" {
		return "", transport.ErrUnauthorized
	}
	return tenantID, nil
}
