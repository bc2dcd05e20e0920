package measurement_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/domain/measurement"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
	"github.com/stitchdesk/garmentqc/internal/repository"
	"github.com/stitchdesk/garmentqc/internal/repository/mocks"
)

func TestMeasurementService_EvaluatePoint(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	specs := &mocks.SpecRepository{}
	spec := chestSpec()
	specs.On("Get", ctx, tenantID, "chest").Return(&spec, nil)

	svc := measurement.NewService(specs, nil)
	result, err := svc.EvaluatePoint(ctx, tenantID, "chest", "M", "50.5")
	require.NoError(t, err)
	require.Equal(t, quality.StatusPass, result.Status)
}

func TestMeasurementService_EvaluatePoint_UnknownSpec(t *testing.T) {
	ctx := context.Background()

	specs := &mocks.SpecRepository{}
	specs.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := measurement.NewService(specs, nil)
	_, err := svc.EvaluatePoint(ctx, "tenant1", "missing", "M", "50")
	require.ErrorIs(t, err, measurement.ErrSpecNotFound)
}

func TestMeasurementService_EvaluateRecord(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	specs := &mocks.SpecRepository{}
	chest := chestSpec()
	sleeve := measurement.Spec{
		ID: "sleeve",
		ToleranceBySize: map[string]measurement.Band{
			"M": {
				Nominal: decimal.NewFromInt(60),
				TolNeg:  decimal.NewFromInt(2),
				TolPos:  decimal.NewFromInt(2),
			},
		},
	}
	specs.On("Get", ctx, tenantID, "chest").Return(&chest, nil)
	specs.On("Get", ctx, tenantID, "sleeve").Return(&sleeve, nil)

	svc := measurement.NewService(specs, nil)
	results, err := svc.EvaluateRecord(ctx, tenantID, measurement.Record{
		Size: "M",
		Readings: map[string]map[int]measurement.Reading{
			"chest": {
				1: {DecimalValue: "50"},
				2: {DecimalValue: "52"},
			},
			"sleeve": {
				1: {DecimalValue: "61.5", DisplayValue: "61 1/2"},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, quality.StatusPass, results["chest"][1].Status)
	require.Equal(t, quality.StatusFail, results["chest"][2].Status)
	require.Equal(t, quality.StatusPass, results["sleeve"][1].Status)
}

func TestMeasurementService_EvaluateRecord_UnknownSpecFailsWholeCall(t *testing.T) {
	ctx := context.Background()

	specs := &mocks.SpecRepository{}
	specs.On("Get", ctx, "tenant1", "ghost").Return(nil, repository.ErrNotFound)

	svc := measurement.NewService(specs, nil)
	_, err := svc.EvaluateRecord(ctx, "tenant1", measurement.Record{
		Size: "M",
		Readings: map[string]map[int]measurement.Reading{
			"ghost": {1: {DecimalValue: "50"}},
		},
	})
	require.ErrorIs(t, err, measurement.ErrSpecNotFound)
}

func TestMeasurementService_EvaluateRecord_EmptyReadings(t *testing.T) {
	svc := measurement.NewService(&mocks.SpecRepository{}, nil)
	_, err := svc.EvaluateRecord(context.Background(), "tenant1", measurement.Record{Size: "M"})
	require.ErrorIs(t, err, measurement.ErrInvalidInput)
}
