package measurement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service evaluates measurement records against the spec catalog.
type Service struct {
	specs  SpecRepository
	logger *slog.Logger
}

// NewService creates a new measurement service.
func NewService(specs SpecRepository, logger *slog.Logger) *Service {
	return &Service{specs: specs, logger: logger}
}

// EvaluatePoint judges one raw reading against one spec.
func (s *Service) EvaluatePoint(ctx context.Context, tenantID, specID, size, raw string) (Result, error) {
	spec, err := s.specs.Get(ctx, tenantID, specID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return Result{}, ErrSpecNotFound
		}
		return Result{}, fmt.Errorf("getting spec: %w", err)
	}
	return Evaluate(*spec, size, raw), nil
}

// EvaluateRecord judges every reading in a record, keyed spec ID to piece
// index. Cells referencing an unknown spec fail the whole call: the record is
// inconsistent with the catalog and should not be partially judged.
func (s *Service) EvaluateRecord(ctx context.Context, tenantID string, rec Record) (map[string]map[int]Result, error) {
	if len(rec.Readings) == 0 {
		return nil, ErrInvalidInput
	}

	out := make(map[string]map[int]Result, len(rec.Readings))
	for specID, byPiece := range rec.Readings {
		spec, err := s.specs.Get(ctx, tenantID, specID)
		if err != nil {
			if errors.Is(err, repoerr.ErrNotFound) {
				return nil, fmt.Errorf("spec %s: %w", specID, ErrSpecNotFound)
			}
			return nil, fmt.Errorf("getting spec %s: %w", specID, err)
		}

		cells := make(map[int]Result, len(byPiece))
		for piece, reading := range byPiece {
			cells[piece] = Evaluate(*spec, rec.Size, reading.DecimalValue)
		}
		out[specID] = cells
	}
	return out, nil
}
