package checkout

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no purchasable lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingFields is returned when a required address field is blank.
	ErrMissingFields = errors.New("all fields are required")
)

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type Service struct {
	products productRepo
	orders   orderRepo
}

func New(products productRepo, orders orderRepo) *Service {
	return &Service{products: products, orders: orders}
}

// Line is one cart entry joined against the catalog.
type Line struct {
	Product    domain.Product
	Quantity   int
	TotalCents int64
}

// Summary is the priced view of a cart.
type Summary struct {
	Lines         []Line
	SubtotalCents int64
}

// CustomerInput carries the checkout form fields.
type CustomerInput struct {
	Name    string
	Email   string
	Address string
	City    string
	State   string
	Postal  string
}

func (in CustomerInput) validate() error {
	fields := []string{in.Name, in.Email, in.Address, in.City, in.State, in.Postal}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// Reconcile joins the cart against the catalog, discarding entries whose product no
// longer resolves. The session cart is the stale side of the join: the catalog is
// the source of truth, and unit prices are read fresh here. Lines are ordered by
// product id so the rendered cart is stable across requests.
func (s *Service) Reconcile(ctx context.Context, cart domain.Cart) (Summary, error) {
	ids := make([]int64, 0, len(cart))
	for key := range cart {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var summary Summary
	for _, id := range ids {
		qty := cart[strconv.FormatInt(id, 10)]
		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return Summary{}, err
		}
		lineTotal := product.PriceCents * int64(qty)
		summary.Lines = append(summary.Lines, Line{Product: *product, Quantity: qty, TotalCents: lineTotal})
		summary.SubtotalCents += lineTotal
	}
	return summary, nil
}

// PlaceOrder validates the form, reprices the cart and persists the order with one
// item per surviving line, all inside the repository's transaction. Item prices are
// snapshots of the catalog price at submission time.
func (s *Service) PlaceOrder(ctx context.Context, cart domain.Cart, in CustomerInput) (*domain.Order, error) {
	if cart.Empty() {
		return nil, ErrEmptyCart
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	summary, err := s.Reconcile(ctx, cart)
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, domain.OrderItem{
			ProductID:  line.Product.ID,
			Quantity:   line.Quantity,
			PriceCents: line.Product.PriceCents,
		})
	}

	return s.orders.Create(ctx, domain.Order{
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerEmail: strings.TrimSpace(in.Email),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		State:         strings.TrimSpace(in.State),
		PostalCode:    strings.TrimSpace(in.Postal),
		TotalCents:    summary.SubtotalCents,
	}, items)
}

// Order looks up a completed order for the confirmation page.
func (s *Service) Order(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}
