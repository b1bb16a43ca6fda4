package product

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

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `
SELECT id, name, description, price_cents, image_url, inventory, created_at
FROM products
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
ORDER BY id DESC
`
	rows, err := r.pool.Query(ctx, q, query)
	if err != nil {
		r.logger.Printf("product repo: search q=%q error=%v", query, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Inventory, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: search rows q=%q error=%v", query, err)
		return nil, err
	}
	r.logger.Printf("product repo: search q=%q count=%d", query, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, name, description, price_cents, image_url, inventory, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Inventory, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, image_url, inventory)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.ImageURL, p.Inventory).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: insert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: inserted id=%d name=%q", res.ID, res.Name)
	return &res, nil
}
