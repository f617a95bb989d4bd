package ports

import (
	"context"

	"github.com/brinepantry/inventory/internal/domain"
)

// StockRepository defines the interface for product stock persistence
type StockRepository interface {
	// GetStockLevel retrieves the current stock level of a product
	GetStockLevel(ctx context.Context, productID string) (*domain.StockLevel, error)

	// ApplyStockChange atomically applies entry.Change to the product's stock
	// and persists the log entry in the same transaction. The write is
	// conditional: it fails with domain.ErrInsufficientStock when the change
	// would drive stock below zero, leaving both tables untouched.
	// Returns the resulting stock level.
	ApplyStockChange(ctx context.Context, entry *domain.InventoryLogEntry) (*domain.StockLevel, error)

	// ListLogEntries retrieves log entries for a product ordered by creation
	// time descending, skipping skip records and returning at most limit.
	ListLogEntries(ctx context.Context, productID string, limit, skip int) ([]*domain.InventoryLogEntry, error)

	// CreateProduct saves a new product
	CreateProduct(ctx context.Context, product *domain.Product) error
}

// AdminRepository defines the interface for admin user persistence
type AdminRepository interface {
	// FindByEmail retrieves an admin user by email
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)

	// Create saves a new admin user
	Create(ctx context.Context, user *domain.AdminUser) error
}

// StockCache is an advisory read cache for stock levels. The database stays
// the source of truth; a cache miss or failure falls through to it.
type StockCache interface {
	// GetStockLevel returns the cached level and whether it was present
	GetStockLevel(ctx context.Context, productID string) (*domain.StockLevel, bool, error)

	// SetStockLevel stores the level for a product
	SetStockLevel(ctx context.Context, productID string, level domain.StockLevel) error

	// Invalidate drops the cached level for a product
	Invalidate(ctx context.Context, productID string) error
}
