package wishlist

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores wishlist entries. Server-only: there is no guest
// variant of the wishlist.
type Repository interface {
	Exists(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
	Insert(ctx context.Context, customerID, productID uuid.UUID) error
	Delete(ctx context.Context, customerID, productID uuid.UUID) error
	ListProductIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error)
}
