package defect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/garmentqc/internal/domain/defect"
	"github.com/stitchdesk/garmentqc/internal/domain/quality"
)

func locatedEntry(id, sessionID, defectID, code string, status quality.Severity, qty int) defect.Entry {
	images := make([]string, qty)
	for i := range images {
		images[i] = "img.jpg"
	}
	return defect.Entry{
		ID:        id,
		SessionID: sessionID,
		DefectID:  defectID,
		Code:      code,
		Name:      "defect " + code,
		Status:    status,
		Quantity:  qty,
		Locations: []defect.Location{{
			LocationNo:   1,
			LocationName: "collar",
			View:         defect.ViewFront,
			Quantity:     qty,
			Images:       images,
		}},
	}
}

func TestAggregate_GroupsAcrossSessions(t *testing.T) {
	entries := []defect.Entry{
		locatedEntry("e1", "s1", "d1", "10", quality.SeverityMajor, 2),
		locatedEntry("e2", "s2", "d1", "10", quality.SeverityMajor, 3),
		locatedEntry("e3", "s1", "d2", "20", quality.SeverityMinor, 1),
	}

	aggs, err := defect.Aggregate(entries)
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	require.Equal(t, "d1", aggs[0].DefectID)
	require.Equal(t, 5, aggs[0].TotalQty)
	require.Equal(t, 5, aggs[0].Counts.Major)
	require.Len(t, aggs[0].Entries, 2)

	require.Equal(t, "d2", aggs[1].DefectID)
	require.Equal(t, 1, aggs[1].TotalQty)
	require.Equal(t, 1, aggs[1].Counts.Minor)
}

func TestAggregate_Deterministic(t *testing.T) {
	entries := []defect.Entry{
		locatedEntry("e1", "s1", "d1", "10", quality.SeverityMajor, 2),
		locatedEntry("e2", "s1", "d2", "3", quality.SeverityMinor, 1),
	}

	first, err := defect.Aggregate(entries)
	require.NoError(t, err)
	second, err := defect.Aggregate(entries)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAggregate_NumericCodeOrdering(t *testing.T) {
	entries := []defect.Entry{
		locatedEntry("e1", "s1", "d-twelve", "12", quality.SeverityMinor, 1),
		locatedEntry("e2", "s1", "d-misc", "X9", quality.SeverityMinor, 1),
		locatedEntry("e3", "s1", "d-three", "3", quality.SeverityMinor, 1),
	}

	aggs, err := defect.Aggregate(entries)
	require.NoError(t, err)
	require.Len(t, aggs, 3)
	require.Equal(t, "3", aggs[0].Code)
	require.Equal(t, "12", aggs[1].Code)
	require.Equal(t, "X9", aggs[2].Code)
}

func TestAggregate_PerPositionSeverity(t *testing.T) {
	entry := locatedEntry("e1", "s1", "d1", "10", quality.SeverityMajor, 3)
	entry.Locations[0].Positions = []defect.Position{
		{PieceNo: 1, Status: quality.SeverityCritical},
		{PieceNo: 2, Status: quality.SeverityMinor},
	}

	aggs, err := defect.Aggregate([]defect.Entry{entry})
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	// two positioned pieces plus one remaining unit at the entry status
	require.Equal(t, 1, aggs[0].Counts.Critical)
	require.Equal(t, 1, aggs[0].Counts.Minor)
	require.Equal(t, 1, aggs[0].Counts.Major)
	require.Equal(t, 3, aggs[0].TotalQty)
}

func TestAggregate_NoLocationUsesEntryStatus(t *testing.T) {
	entry := defect.Entry{
		ID:         "e1",
		SessionID:  "s1",
		DefectID:   "d1",
		Code:       "10",
		Status:     quality.SeverityCritical,
		Quantity:   4,
		NoLocation: true,
	}

	aggs, err := defect.Aggregate([]defect.Entry{entry})
	require.NoError(t, err)
	require.Equal(t, 4, aggs[0].Counts.Critical)
}

func TestAggregate_NoneStatusNotCounted(t *testing.T) {
	entry := defect.Entry{
		ID:         "e1",
		SessionID:  "s1",
		DefectID:   "d1",
		Code:       "10",
		Status:     quality.SeverityNone,
		Quantity:   2,
		NoLocation: true,
	}

	aggs, err := defect.Aggregate([]defect.Entry{entry})
	require.NoError(t, err)
	require.Equal(t, 2, aggs[0].TotalQty)
	require.Equal(t, quality.Counts{}, aggs[0].Counts)
}

func TestAggregate_RejectsInvalidEntry(t *testing.T) {
	bad := locatedEntry("e1", "s1", "d1", "10", quality.SeverityMajor, 5)
	bad.Locations[0].Quantity = 3 // sum no longer matches entry quantity

	_, err := defect.Aggregate([]defect.Entry{bad})
	require.ErrorIs(t, err, defect.ErrQuantityMismatch)
}

func TestTotals(t *testing.T) {
	entries := []defect.Entry{
		locatedEntry("e1", "s1", "d1", "10", quality.SeverityMajor, 2),
		locatedEntry("e2", "s1", "d2", "20", quality.SeverityMinor, 3),
		locatedEntry("e3", "s2", "d3", "30", quality.SeverityCritical, 1),
	}

	aggs, err := defect.Aggregate(entries)
	require.NoError(t, err)

	counts := defect.Totals(aggs)
	require.Equal(t, quality.Counts{Minor: 3, Major: 2, Critical: 1}, counts)
}
