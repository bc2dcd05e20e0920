package order

import "context"

// Repository provides persistence for orders.
type Repository interface {
	Create(ctx context.Context, tenantID string, ord *Order) error
	Get(ctx context.Context, tenantID, id string) (*Order, error)
	List(ctx context.Context, tenantID string) ([]Order, error)
}
