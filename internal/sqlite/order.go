package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stitchdesk/garmentqc/internal/domain/order"
	"github.com/stitchdesk/garmentqc/internal/repository"
)

// OrderRepository implements repository.OrderRepository for SQLite
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order
func (r *OrderRepository) Create(ctx context.Context, tenantID string, ord *order.Order) error {
	query := `
		INSERT INTO orders (id, tenant_id, style_no, po_number, buyer, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		ord.ID, tenantID, ord.StyleNo, ord.PONumber, ord.Buyer, ord.Quantity, ord.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Get retrieves an order by ID
func (r *OrderRepository) Get(ctx context.Context, tenantID, id string) (*order.Order, error) {
	query := `
		SELECT id, tenant_id, style_no, po_number, buyer, quantity, created_at
		FROM orders
		WHERE id = ? AND tenant_id = ?
	`
	var ord order.Order
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&ord.ID, &ord.TenantID, &ord.StyleNo, &ord.PONumber, &ord.Buyer, &ord.Quantity, &ord.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &ord, nil
}

// List returns all orders for a tenant
func (r *OrderRepository) List(ctx context.Context, tenantID string) ([]order.Order, error) {
	query := `
		SELECT id, tenant_id, style_no, po_number, buyer, quantity, created_at
		FROM orders
		WHERE tenant_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var ord order.Order
		if err := rows.Scan(&ord.ID, &ord.TenantID, &ord.StyleNo, &ord.PONumber, &ord.Buyer, &ord.Quantity, &ord.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
