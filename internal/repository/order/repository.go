package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// Create persists the order and its items as a single transaction. Item
	// OrderID fields are filled in from the new order id.
	Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
