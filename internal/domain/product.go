package domain

import (
	"fmt"
	"time"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Inventory   int       `json:"inventory"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PriceDisplay renders the integer-cent price for templates, e.g. 4999 -> "$49.99".
func (p Product) PriceDisplay() string {
	return fmt.Sprintf("$%.2f", float64(p.PriceCents)/100)
}
