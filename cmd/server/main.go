package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/stitchdesk/garmentqc/internal/config"
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	orderRepo := sqlite.NewOrderRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	entryRepo := sqlite.NewEntryRepository(db)
	checkRepo := sqlite.NewCheckRepository(db)
	planRepo := sqlite.NewPlanRepository(db)
	specRepo := sqlite.NewSpecRepository(db)
	catalogRepo := sqlite.NewCatalogRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)

	services := transport.Services{
		Orders:       order.NewService(orderRepo, logger),
		Sessions:     session.NewService(sessionRepo, orderRepo, auditRepo, logger),
		Defects:      defect.NewService(entryRepo, sessionRepo, auditRepo, logger),
		Inspections:  inspection.NewService(entryRepo, orderRepo, planRepo, auditRepo, logger),
		Measurements: measurement.NewService(specRepo, logger),
		Ledger:       ledger.NewService(checkRepo, auditRepo, logger),
		Audit:        audit.NewService(auditRepo, logger),
	}
	catalogs := transport.Catalogs{
		Plans:   planRepo,
		Specs:   specRepo,
		Defects: catalogRepo,
	}

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authMiddleware = transport.AuthMiddleware(&apiKeyResolver{db: db})
	} else {
		logger.Warn("authentication disabled, all requests use the default tenant")
		authMiddleware = transport.StaticTenantMiddleware("default")
	}

	router := transport.NewRouter(services, catalogs, authMiddleware, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
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
