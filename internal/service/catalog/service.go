package catalog

import (
	"context"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Search lists products matching the free-text query, newest first. The query is
// trimmed; an empty query returns the full catalog.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
