package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/stitchdesk/garmentqc/internal/domain/audit"
)

// AuditRepository implements repository.AuditRepository for SQLite
type AuditRepository struct {
	db *DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Log inserts an audit entry
func (r *AuditRepository) Log(ctx context.Context, tenantID string, entry *audit.Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO audit_log (tenant_id, order_id, session_id, event_type, summary, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		tenantID, entry.OrderID, entry.SessionID, entry.EventType, entry.Summary, entry.Details, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log audit entry: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// List returns audit entries with filtering, newest first
func (r *AuditRepository) List(ctx context.Context, tenantID string, opts audit.ListOptions) ([]audit.Entry, error) {
	query := `
		SELECT id, tenant_id, order_id, session_id, event_type, summary, details, created_at
		FROM audit_log
		WHERE tenant_id = ?
	`
	args := []any{tenantID}

	if opts.OrderID != "" {
		query += " AND order_id = ?"
		args = append(args, opts.OrderID)
	}
	if opts.SessionID != nil {
		query += " AND session_id = ?"
		args = append(args, *opts.SessionID)
	}
	if opts.EventType != nil {
		query += " AND event_type = ?"
		args = append(args, *opts.EventType)
	}

	query += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var details *string
		if err := rows.Scan(&entry.ID, &entry.TenantID, &entry.OrderID, &entry.SessionID,
			&entry.EventType, &entry.Summary, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if details != nil {
			entry.Details = *details
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
