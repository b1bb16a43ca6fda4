package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_SearchAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	hoodie, err := repo.Insert(ctx, domain.Product{Name: "Cozy Hoodie", Description: "A warm, comfy hoodie.", PriceCents: 4999, Inventory: 25})
	if err != nil {
		t.Fatalf("insert hoodie: %v", err)
	}
	bottle, err := repo.Insert(ctx, domain.Product{Name: "Insulated Bottle", Description: "Keeps drinks cold or hot.", PriceCents: 2499, Inventory: 40})
	if err != nil {
		t.Fatalf("insert bottle: %v", err)
	}

	all, err := repo.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search empty query: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].ID != bottle.ID {
		t.Fatalf("expected newest product first, got id=%d", all[0].ID)
	}

	matched, err := repo.Search(ctx, "hoodie")
	if err != nil {
		t.Fatalf("Search hoodie: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != hoodie.ID {
		t.Fatalf("unexpected search result %+v", matched)
	}

	byDesc, err := repo.Search(ctx, "COLD")
	if err != nil {
		t.Fatalf("Search by description: %v", err)
	}
	if len(byDesc) != 1 || byDesc[0].ID != bottle.ID {
		t.Fatalf("expected description match, got %+v", byDesc)
	}

	none, err := repo.Search(ctx, "no such thing")
	if err != nil {
		t.Fatalf("Search no match: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %+v", none)
	}

	got, err := repo.GetByID(ctx, hoodie.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Cozy Hoodie" || got.PriceCents != 4999 {
		t.Fatalf("unexpected product %+v", got)
	}

	if _, err := repo.GetByID(ctx, hoodie.ID+1000); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_Count(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}

	if _, err := repo.Insert(ctx, domain.Product{Name: "Beanie", PriceCents: 1999}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
