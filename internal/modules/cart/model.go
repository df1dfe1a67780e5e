package cart

import (
	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/catalog"
)

// Line is one logical cart entry: a product and how many of it. The same
// shape lives in both backends — as a JSON array element in the guest slot
// and as a row keyed by (customer_id, product_id) in the member table.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Item is a line hydrated with its product.
type Item struct {
	Line
	Product *catalog.Product `json:"product"`
}

// Cart is the hydrated view returned by List.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}
