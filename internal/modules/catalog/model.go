package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the storefront catalog.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category,omitempty"`
	Badge         string    `json:"badge,omitempty"`
	InStock       bool      `json:"in_stock"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
