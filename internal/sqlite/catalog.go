package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// PlanRepository implements repository.PlanRepository for SQLite. Range rows
// are stored as a JSON document to preserve table order, which is load-bearing
// for the first-match tie-break on overlapping ranges.
type PlanRepository struct {
	db *DB
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Put upserts a sampling plan for (buyer, category)
func (r *PlanRepository) Put(ctx context.Context, tenantID string, plan *aql.SamplePlan) error {
	rows, err := json.Marshal(plan.Rows)
	if err != nil {
		return fmt.Errorf("failed to encode plan rows: %w", err)
	}

	query := `
		INSERT INTO aql_plans (tenant_id, buyer, category, inspection_type, level, rows)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, buyer, category)
		DO UPDATE SET inspection_type = excluded.inspection_type, level = excluded.level, rows = excluded.rows
	`
	_, err = r.db.ExecContext(ctx, query,
		tenantID, plan.Buyer, plan.Category, plan.InspectionType, plan.Level, string(rows))
	if err != nil {
		return fmt.Errorf("failed to put plan: %w", err)
	}
	return nil
}

// ListForBuyer returns the plans for a buyer plus any wildcard fallback plans
func (r *PlanRepository) ListForBuyer(ctx context.Context, tenantID, buyer string) ([]aql.SamplePlan, error) {
	query := `
		SELECT buyer, category, inspection_type, level, rows
		FROM aql_plans
		WHERE tenant_id = ? AND (buyer = ? COLLATE NOCASE OR LOWER(buyer) IN ('*', 'default', 'all'))
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID, buyer)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []aql.SamplePlan
	for rows.Next() {
		var plan aql.SamplePlan
		var inspectionType, level sql.NullString
		var planRows string
		if err := rows.Scan(&plan.Buyer, &plan.Category, &inspectionType, &level, &planRows); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plan.InspectionType = inspectionType.String
		plan.Level = level.String
		if err := json.Unmarshal([]byte(planRows), &plan.Rows); err != nil {
			return nil, fmt.Errorf("decoding plan rows: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// SpecRepository implements repository.SpecRepository for SQLite
type SpecRepository struct {
	db *DB
}

// NewSpecRepository creates a new SpecRepository
func NewSpecRepository(db *DB) *SpecRepository {
	return &SpecRepository{db: db}
}

// Put upserts a measurement spec
func (r *SpecRepository) Put(ctx context.Context, tenantID string, spec *measurement.Spec) error {
	tolerances, err := json.Marshal(spec.ToleranceBySize)
	if err != nil {
		return fmt.Errorf("failed to encode tolerances: %w", err)
	}

	query := `
		INSERT INTO measurement_specs (id, tenant_id, point_name, tolerances)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (tenant_id, id)
		DO UPDATE SET point_name = excluded.point_name, tolerances = excluded.tolerances
	`
	_, err = r.db.ExecContext(ctx, query, spec.ID, tenantID, spec.PointName, string(tolerances))
	if err != nil {
		return fmt.Errorf("failed to put spec: %w", err)
	}
	return nil
}

// Get retrieves a measurement spec by ID
func (r *SpecRepository) Get(ctx context.Context, tenantID, id string) (*measurement.Spec, error) {
	query := `
		SELECT id, tenant_id, point_name, tolerances
		FROM measurement_specs
		WHERE id = ? AND tenant_id = ?
	`
	spec, err := scanSpec(r.db.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spec: %w", err)
	}
	return spec, nil
}

// List returns all measurement specs for a tenant
func (r *SpecRepository) List(ctx context.Context, tenantID string) ([]measurement.Spec, error) {
	query := `
		SELECT id, tenant_id, point_name, tolerances
		FROM measurement_specs
		WHERE tenant_id = ?
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list specs: %w", err)
	}
	defer rows.Close()

	var specs []measurement.Spec
	for rows.Next() {
		spec, err := scanSpec(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spec: %w", err)
		}
		specs = append(specs, *spec)
	}
	return specs, rows.Err()
}

func scanSpec(row rowScanner) (*measurement.Spec, error) {
	var spec measurement.Spec
	var tolerances string
	if err := row.Scan(&spec.ID, &spec.TenantID, &spec.PointName, &tolerances); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tolerances), &spec.ToleranceBySize); err != nil {
		return nil, fmt.Errorf("decoding tolerances: %w", err)
	}
	return &spec, nil
}
