package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/defect"
)

// CatalogRepository implements repository.CatalogRepository for SQLite
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Put upserts a catalog defect
func (r *CatalogRepository) Put(ctx context.Context, tenantID string, def *defect.CatalogDefect) error {
	rules, err := json.Marshal(def.StatusRulesByBuyer)
	if err != nil {
		return fmt.Errorf("failed to encode status rules: %w", err)
	}

	query := `
		INSERT INTO defect_catalog (defect_id, tenant_id, code, name, category, status_rules)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, defect_id)
		DO UPDATE SET code = excluded.code, name = excluded.name,
		              category = excluded.category, status_rules = excluded.status_rules
	`
	_, err = r.db.ExecContext(ctx, query,
		def.DefectID, tenantID, def.Code, def.Name, def.Category, string(rules))
	if err != nil {
		return fmt.Errorf("failed to put catalog defect: %w", err)
	}
	return nil
}

// List returns the defect catalog ordered by code
func (r *CatalogRepository) List(ctx context.Context, tenantID string) ([]defect.CatalogDefect, error) {
	query := `
		SELECT defect_id, code, name, category, status_rules
		FROM defect_catalog
		WHERE tenant_id = ?
		ORDER BY code ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer rows.Close()

	var defs []defect.CatalogDefect
	for rows.Next() {
		var def defect.CatalogDefect
		var category sql.NullString
		var rules string
		if err := rows.Scan(&def.DefectID, &def.Code, &def.Name, &category, &rules); err != nil {
			return nil, fmt.Errorf("failed to scan catalog defect: %w", err)
		}
		def.Category = category.String
		if err := json.Unmarshal([]byte(rules), &def.StatusRulesByBuyer); err != nil {
			return nil, fmt.Errorf("decoding status rules: %w", err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}
