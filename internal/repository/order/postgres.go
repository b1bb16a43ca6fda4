package order

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (customer_name, customer_email, address, city, state, postal_code, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at
`
	res := o
	if err := tx.QueryRow(ctx, insertOrder,
		o.CustomerName,
		o.CustomerEmail,
		o.Address,
		o.City,
		o.State,
		o.PostalCode,
		o.TotalCents,
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert order error=%v", err)
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
`
	for _, item := range items {
		if _, err := tx.Exec(ctx, insertItem, res.ID, item.ProductID, item.Quantity, item.PriceCents); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d product_id=%d error=%v", res.ID, item.ProductID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d items=%d total_cents=%d", res.ID, len(items), res.TotalCents)
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, customer_name, customer_email, address, city, state, postal_code, total_cents, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.Address,
		&o.City,
		&o.State,
		&o.PostalCode,
		&o.TotalCents,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("order repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}
