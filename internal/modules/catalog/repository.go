package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ListOrder selects the sort applied to product listings.
type ListOrder int

const (
	// OrderNewestFirst sorts by creation time descending (admin view).
	OrderNewestFirst ListOrder = iota
	// OrderFeaturedFirst puts featured products ahead (storefront view).
	OrderFeaturedFirst
)

// Filter narrows a product listing.
type Filter struct {
	Category    string
	InStockOnly bool
	Order       ListOrder
}

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
