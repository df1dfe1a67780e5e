package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/catalog"
)

// MemberRepository stores cart lines for authenticated customers.
// At most one line exists per (customer, product) pair.
type MemberRepository interface {
	// Find returns (nil, nil) when no line exists for the pair.
	Find(ctx context.Context, customerID, productID uuid.UUID) (*Line, error)
	Insert(ctx context.Context, customerID uuid.UUID, line Line) error
	SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) error
	Delete(ctx context.Context, customerID, productID uuid.UUID) error
	List(ctx context.Context, customerID uuid.UUID) ([]Line, error)
}

// GuestStore holds one ordered line sequence per device. It is the
// device-local slot of the dual-backend cart; reads and writes are
// synchronous and never touch the network.
type GuestStore interface {
	Load(deviceID string) ([]Line, error)
	Save(deviceID string, lines []Line) error
}

// ProductResolver hydrates cart lines. Satisfied by catalog.Service.
type ProductResolver interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}
