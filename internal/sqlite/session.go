package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/session"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// SessionRepository implements repository.SessionRepository for SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(ctx context.Context, tenantID string, sess *session.Session) error {
	query := `
		INSERT INTO sessions (id, tenant_id, order_id, line, table_no, color, inspector_id, status, created_at, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		sess.ID, tenantID, sess.OrderID, sess.Line, sess.Table, sess.Color,
		sess.InspectorID, sess.Status, sess.CreatedAt, sess.ClosedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, tenantID, id string) (*session.Session, error) {
	query := `
		SELECT id, tenant_id, order_id, line, table_no, color, inspector_id, status, created_at, closed_at
		FROM sessions
		WHERE id = ? AND tenant_id = ?
	`
	var sess session.Session
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&sess.ID, &sess.TenantID, &sess.OrderID, &sess.Line, &sess.Table, &sess.Color,
		&sess.InspectorID, &sess.Status, &sess.CreatedAt, &sess.ClosedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}

// Close marks a session closed
func (r *SessionRepository) Close(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE sessions
		SET status = 'closed', closed_at = CURRENT_TIMESTAMP
		WHERE id = ? AND tenant_id = ? AND status = 'open'
	`
	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check close result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByOrder returns the sessions recorded against an order
func (r *SessionRepository) ListByOrder(ctx context.Context, tenantID, orderID string) ([]session.Session, error) {
	query := `
		SELECT id, tenant_id, order_id, line, table_no, color, inspector_id, status, created_at, closed_at
		FROM sessions
		WHERE tenant_id = ? AND order_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var sess session.Session
		if err := rows.Scan(&sess.ID, &sess.TenantID, &sess.OrderID, &sess.Line, &sess.Table,
			&sess.Color, &sess.InspectorID, &sess.Status, &sess.CreatedAt, &sess.ClosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
