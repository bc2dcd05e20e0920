package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/domain/aql"
	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

func TestPlanRepository_PutListForBuyer(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewPlanRepository(db)
	require.NoError(t, repo.Put(ctx, "tenant1", &aql.SamplePlan{
		Buyer:    "acme",
		Category: quality.SeverityMajor,
		Rows: []aql.SampleRow{
			{Min: 1, Max: 150, SampleSize: 20, SampleLetter: "G", Accept: 1, Reject: 2},
			{Min: 151, Max: 280, SampleSize: 32, SampleLetter: "H", Accept: 2, Reject: 3},
		},
	}))
	require.NoError(t, repo.Put(ctx, "tenant1", &aql.SamplePlan{
		Buyer:    "*",
		Category: quality.SeverityMinor,
		Rows:     []aql.SampleRow{{Min: 1, Max: 280, Accept: 3, Reject: 4}},
	}))
	require.NoError(t, repo.Put(ctx, "tenant1", &aql.SamplePlan{
		Buyer:    "other",
		Category: quality.SeverityMajor,
		Rows:     []aql.SampleRow{{Min: 1, Max: 280, Accept: 9, Reject: 10}},
	}))

	plans, err := repo.ListForBuyer(ctx, "tenant1", "ACME")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "acme", plans[0].Buyer)
	require.Len(t, plans[0].Rows, 2)
	require.Equal(t, "H", plans[0].Rows[1].SampleLetter)
	require.Equal(t, "*", plans[1].Buyer)
}

func TestPlanRepository_PutReplacesRows(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewPlanRepository(db)
	plan := &aql.SamplePlan{
		Buyer:    "acme",
		Category: quality.SeverityMajor,
		Rows:     []aql.SampleRow{{Min: 1, Max: 100, Accept: 1, Reject: 2}},
	}
	require.NoError(t, repo.Put(ctx, "tenant1", plan))

	plan.Rows = []aql.SampleRow{{Min: 1, Max: 200, Accept: 2, Reject: 3}}
	require.NoError(t, repo.Put(ctx, "tenant1", plan))

	plans, err := repo.ListForBuyer(ctx, "tenant1", "acme")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, 200, plans[0].Rows[0].Max)
}

func TestSpecRepository_PutGetList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewSpecRepository(db)
	require.NoError(t, repo.Put(ctx, "tenant1", &measurement.Spec{
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

	spec, err := repo.Get(ctx, "tenant1", "chest")
	require.NoError(t, err)
	require.Equal(t, "Chest width", spec.PointName)
	require.True(t, spec.ToleranceBySize["M"].Nominal.Equal(decimal.NewFromInt(50)))

	_, err = repo.Get(ctx, "tenant1", "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)

	specs, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, specs, 1)
}

func TestCatalogRepository_PutList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewCatalogRepository(db)
	require.NoError(t, repo.Put(ctx, "tenant1", &defect.CatalogDefect{
		DefectID: "d1",
		Code:     "10",
		Name:     "broken stitch",
		Category: "sewing",
		StatusRulesByBuyer: map[string]quality.Severity{
			"acme": quality.SeverityMajor,
		},
	}))
	require.NoError(t, repo.Put(ctx, "tenant1", &defect.CatalogDefect{
		DefectID: "d2",
		Code:     "05",
		Name:     "stain",
	}))

	defs, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, "05", defs[0].Code)
	require.Equal(t, quality.SeverityMajor, defs[1].DefaultStatus("acme"))
	require.Equal(t, quality.SeverityNone, defs[1].DefaultStatus("other"))

	// list is tenant scoped
	other, err := repo.List(ctx, "tenant2")
	require.NoError(t, err)
	require.Empty(t, other)
}
