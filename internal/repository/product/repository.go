package product

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// Search returns products whose name or description contains the query
	// (case-insensitive), newest first. An empty query returns the full catalog.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
