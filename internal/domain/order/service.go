package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stitchdesk/garmentqc/internal/repository/repoerr"
)

// Service handles order operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new order service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines order creation inputs.
type CreateRequest struct {
	ID       string
	StyleNo  string
	PONumber string
	Buyer    string
	Quantity int
}

// Create creates a new order.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Order, error) {
	if strings.TrimSpace(req.StyleNo) == "" || strings.TrimSpace(req.Buyer) == "" {
		return nil, ErrInvalidInput
	}
	if req.Quantity < 0 {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	ord := &Order{
		ID:        id,
		TenantID:  tenantID,
		StyleNo:   req.StyleNo,
		PONumber:  req.PONumber,
		Buyer:     req.Buyer,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, ord); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return ord, nil
}

// Get fetches an order by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Order, error) {
	ord, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return ord, nil
}

// List returns all orders for a tenant.
func (s *Service) List(ctx context.Context, tenantID string) ([]Order, error) {
	return s.repo.List(ctx, tenantID)
}
