package seed

import (
	"context"
	"fmt"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// SampleProducts is the fixed catalog inserted on first boot.
var SampleProducts = []domain.Product{
	{Name: "Cozy Hoodie", Description: "A warm, comfy hoodie.", PriceCents: 4999, ImageURL: "https://picsum.photos/seed/hoodie/600/400", Inventory: 25},
	{Name: "Classic Sneakers", Description: "Everyday sneakers.", PriceCents: 6999, ImageURL: "https://picsum.photos/seed/sneakers/600/400", Inventory: 30},
	{Name: "Beanie", Description: "Soft knit beanie.", PriceCents: 1999, ImageURL: "https://picsum.photos/seed/beanie/600/400", Inventory: 50},
	{Name: "Insulated Bottle", Description: "Keeps drinks cold or hot.", PriceCents: 2499, ImageURL: "https://picsum.photos/seed/bottle/600/400", Inventory: 40},
}

// Apply inserts the sample catalog if the products table is empty, otherwise it is
// a no-op. Safe to run on every startup.
func Apply(ctx context.Context, repo ProductWriter) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	for _, p := range SampleProducts {
		if _, err := repo.Insert(ctx, p); err != nil {
			return 0, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	return len(SampleProducts), nil
}
