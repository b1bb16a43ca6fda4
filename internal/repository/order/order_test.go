package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	var productID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, price_cents) VALUES ('Cozy Hoodie', 4999) RETURNING id
	`).Scan(&productID)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Order{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Address:       "1 Analytical Way",
		City:          "London",
		State:         "LDN",
		PostalCode:    "E1 6AN",
		TotalCents:    9998,
	}, []domain.OrderItem{
		{ProductID: productID, Quantity: 2, PriceCents: 4999},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected order id set")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalCents != 9998 || got.CustomerName != "Ada Lovelace" {
		t.Fatalf("unexpected order %+v", got)
	}

	var itemCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id = $1`, created.ID).Scan(&itemCount); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 1 {
		t.Fatalf("expected 1 order item, got %d", itemCount)
	}

	if _, err := repo.GetByID(ctx, created.ID+1000); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_CreateRollsBackOnBadItem(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	// product_id 9999 violates the foreign key, so the whole write must abort.
	_, err := repo.Create(ctx, domain.Order{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Address:       "1 Analytical Way",
		City:          "London",
		State:         "LDN",
		PostalCode:    "E1 6AN",
		TotalCents:    100,
	}, []domain.OrderItem{
		{ProductID: 9999, Quantity: 1, PriceCents: 100},
	})
	if err == nil {
		t.Fatalf("expected foreign key error")
	}

	var orderCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected rollback to leave no orders, got %d", orderCount)
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
