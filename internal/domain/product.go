package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable item owned by the catalog; the ledger owns
// its stock and in_stock fields.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	InStock   bool      `json:"in_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct creates a new product with a derived in_stock flag
func NewProduct(name string, stock int) *Product {
	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Stock:     stock,
		InStock:   stock > 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StockLevel is the ledger's view of a product: the current count and the
// derived availability flag. InStock must always equal Stock > 0.
type StockLevel struct {
	Stock   int  `json:"stock"`
	InStock bool `json:"in_stock"`
}

// CanFulfill reports whether quantity units can be taken from this level.
func (s StockLevel) CanFulfill(quantity int) bool {
	return s.InStock && s.Stock >= quantity
}
