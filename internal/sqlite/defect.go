package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// EntryRepository implements repository.EntryRepository for SQLite. The
// location/position breakdown is stored as a JSON document column.
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts a new defect entry
func (r *EntryRepository) Create(ctx context.Context, tenantID string, entry *defect.Entry) error {
	locations, err := json.Marshal(entry.Locations)
	if err != nil {
		return fmt.Errorf("failed to encode locations: %w", err)
	}

	query := `
		INSERT INTO defect_entries (
			id, tenant_id, session_id, defect_id, code, name, category,
			status, quantity, no_location, qc_ref, remark, locations, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		entry.ID, tenantID, entry.SessionID, entry.DefectID, entry.Code, entry.Name,
		entry.Category, entry.Status, entry.Quantity, entry.NoLocation,
		entry.QCRef, entry.Remark, string(locations), entry.RecordedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// Get retrieves a defect entry by ID
func (r *EntryRepository) Get(ctx context.Context, tenantID, id string) (*defect.Entry, error) {
	query := entrySelect + ` WHERE id = ? AND tenant_id = ?`
	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// ListBySession returns the entries recorded under one session
func (r *EntryRepository) ListBySession(ctx context.Context, tenantID, sessionID string) ([]defect.Entry, error) {
	return r.ListBySessions(ctx, tenantID, []string{sessionID})
}

// ListBySessions returns the entries of the selected sessions in recording order
func (r *EntryRepository) ListBySessions(ctx context.Context, tenantID string, sessionIDs []string) ([]defect.Entry, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(sessionIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := entrySelect + ` WHERE tenant_id = ? AND session_id IN (` + placeholders + `) ORDER BY recorded_at ASC, id ASC`

	args := make([]any, 0, len(sessionIDs)+1)
	args = append(args, tenantID)
	for _, id := range sessionIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []defect.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

const entrySelect = `
	SELECT id, tenant_id, session_id, defect_id, code, name, category,
	       status, quantity, no_location, qc_ref, remark, locations, recorded_at
	FROM defect_entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*defect.Entry, error) {
	var entry defect.Entry
	var category, qcRef, remark sql.NullString
	var locations string
	if err := row.Scan(&entry.ID, &entry.TenantID, &entry.SessionID, &entry.DefectID,
		&entry.Code, &entry.Name, &category, &entry.Status, &entry.Quantity,
		&entry.NoLocation, &qcRef, &remark, &locations, &entry.RecordedAt); err != nil {
		return nil, err
	}
	entry.Category = category.String
	entry.QCRef = qcRef.String
	entry.Remark = remark.String
	if err := json.Unmarshal([]byte(locations), &entry.Locations); err != nil {
		return nil, fmt.Errorf("decoding locations: %w", err)
	}
	return &entry, nil
}
