package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/ledger"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// CheckRepository implements repository.CheckRepository for SQLite. The
// primary key on (tenant_id, item_index, version) makes the ledger
// append-only: a racing writer that computed the same next version gets
// ErrConflict instead of overwriting history.
type CheckRepository struct {
	db *DB
}

// NewCheckRepository creates a new CheckRepository
func NewCheckRepository(db *DB) *CheckRepository {
	return &CheckRepository{db: db}
}

// Append inserts a new check version
func (r *CheckRepository) Append(ctx context.Context, tenantID string, check *ledger.Check) error {
	readings, err := json.Marshal(check.Readings)
	if err != nil {
		return fmt.Errorf("failed to encode readings: %w", err)
	}

	query := `
		INSERT INTO ledger_checks (tenant_id, item_index, version, session_id, readings, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		tenantID, check.ItemIndex, check.Version, check.SessionID, string(readings), check.RecordedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to append check: %w", err)
	}
	return nil
}

// GetLatest returns the highest-version check for an item
func (r *CheckRepository) GetLatest(ctx context.Context, tenantID string, itemIndex int) (*ledger.Check, error) {
	query := checkSelect + `
		WHERE tenant_id = ? AND item_index = ?
		ORDER BY version DESC
		LIMIT 1`
	check, err := scanCheck(r.db.QueryRowContext(ctx, query, tenantID, itemIndex))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest check: %w", err)
	}
	return check, nil
}

// ListByItem returns the full check history for an item, oldest first
func (r *CheckRepository) ListByItem(ctx context.Context, tenantID string, itemIndex int) ([]ledger.Check, error) {
	query := checkSelect + `
		WHERE tenant_id = ? AND item_index = ?
		ORDER BY version ASC`
	return r.queryChecks(ctx, query, tenantID, itemIndex)
}

// ListLatest returns the most recent check of every item, ordered by item index
func (r *CheckRepository) ListLatest(ctx context.Context, tenantID string) ([]ledger.Check, error) {
	query := `
		SELECT c.tenant_id, c.item_index, c.version, c.session_id, c.readings, c.recorded_at
		FROM ledger_checks c
		JOIN (
			SELECT item_index, MAX(version) AS version
			FROM ledger_checks
			WHERE tenant_id = ?
			GROUP BY item_index
		) latest ON latest.item_index = c.item_index AND latest.version = c.version
		WHERE c.tenant_id = ?
		ORDER BY c.item_index ASC`
	return r.queryChecks(ctx, query, tenantID, tenantID)
}

func (r *CheckRepository) queryChecks(ctx context.Context, query string, args ...any) ([]ledger.Check, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []ledger.Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, *check)
	}
	return checks, rows.Err()
}

const checkSelect = `
	SELECT tenant_id, item_index, version, session_id, readings, recorded_at
	FROM ledger_checks`

func scanCheck(row rowScanner) (*ledger.Check, error) {
	var check ledger.Check
	var sessionID sql.NullString
	var readings string
	if err := row.Scan(&check.TenantID, &check.ItemIndex, &check.Version,
		&sessionID, &readings, &check.RecordedAt); err != nil {
		return nil, err
	}
	check.SessionID = sessionID.String
	if err := json.Unmarshal([]byte(readings), &check.Readings); err != nil {
		return nil, fmt.Errorf("decoding readings: %w", err)
	}
	return &check, nil
}
