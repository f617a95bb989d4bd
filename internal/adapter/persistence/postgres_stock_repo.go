package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

// PostgresStockRepository implements StockRepository using PostgreSQL
type PostgresStockRepository struct {
	db *sql.DB
}

// NewPostgresStockRepository creates a new PostgreSQL stock repository
func NewPostgresStockRepository(db *sql.DB) ports.StockRepository {
	return &PostgresStockRepository{db: db}
}

// GetStockLevel retrieves the current stock level of a product
func (r *PostgresStockRepository) GetStockLevel(ctx context.Context, productID string) (*domain.StockLevel, error) {
	query := `SELECT stock, in_stock FROM products WHERE id = $1`

	var level domain.StockLevel
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&level.Stock, &level.InStock)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to query stock level: %w", err)
	}

	return &level, nil
}

// ApplyStockChange applies the change and writes the log entry as one
// transaction. The stock arithmetic happens inside the UPDATE so concurrent
// calls cannot lose updates; the WHERE guard enforces non-negativity.
func (r *PostgresStockRepository) ApplyStockChange(ctx context.Context, entry *domain.InventoryLogEntry) (*domain.StockLevel, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE products
		SET stock = stock + $2, in_stock = stock + $2 > 0, updated_at = NOW()
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING stock, in_stock
	`

	var level domain.StockLevel
	err = tx.QueryRowContext(ctx, updateQuery, entry.ProductID, entry.Change).Scan(&level.Stock, &level.InStock)
	if err == sql.ErrNoRows {
		// Guard rejected the row: missing product or a would-be-negative stock.
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, entry.ProductID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check product existence: %w", err)
		}
		if !exists {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	insertQuery := `
		INSERT INTO inventory_log (id, product_id, change, type, note, admin_id, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.ExecContext(ctx, insertQuery,
		entry.ID,
		entry.ProductID,
		entry.Change,
		string(entry.Type),
		entry.Note,
		entry.AdminID,
		entry.OrderID,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stock change: %w", err)
	}

	return &level, nil
}

// ListLogEntries retrieves log entries for a product, most recent first
func (r *PostgresStockRepository) ListLogEntries(ctx context.Context, productID string, limit, skip int) ([]*domain.InventoryLogEntry, error) {
	query := `
		SELECT id, product_id, change, type, note, admin_id, order_id, created_at
		FROM inventory_log
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, productID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.InventoryLogEntry

	for rows.Next() {
		var entry domain.InventoryLogEntry
		var note, adminID, orderID sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.ProductID,
			&entry.Change,
			&entry.Type,
			&note,
			&adminID,
			&orderID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}

		entry.Note = mapStringPtr(note)
		entry.AdminID = mapStringPtr(adminID)
		entry.OrderID = mapStringPtr(orderID)

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log entries: %w", err)
	}

	return entries, nil
}

// CreateProduct saves a new product
func (r *PostgresStockRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, stock, in_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Stock,
		product.InStock,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Helper method to map SQL null types
func mapStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}
