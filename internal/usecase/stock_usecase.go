package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

const defaultHistoryLimit = 10

// UpdateStockRequest represents a single stock adjustment
type UpdateStockRequest struct {
	ProductID string            `json:"product_id"`
	Change    int               `json:"change"`
	Type      domain.ChangeType `json:"type"`
	Note      *string           `json:"note,omitempty"`
	AdminID   *string           `json:"admin_id,omitempty"`
	OrderID   *string           `json:"order_id,omitempty"`
}

// StockLedgerUseCase owns product stock counts and the append-only audit log
// of every stock-affecting event. Every mutation goes through UpdateStock.
type StockLedgerUseCase struct {
	repo   ports.StockRepository
	cache  ports.StockCache
	logger *logrus.Logger
}

// NewStockLedgerUseCase creates a new stock ledger use case. cache may be nil.
func NewStockLedgerUseCase(repo ports.StockRepository, cache ports.StockCache, logger *logrus.Logger) *StockLedgerUseCase {
	if logger == nil {
		logger = logrus.New()
	}
	return &StockLedgerUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CheckStockAvailability reports whether the product exists, is in stock, and
// holds at least quantity units. Read-only.
func (uc *StockLedgerUseCase) CheckStockAvailability(ctx context.Context, productID string, quantity int) (bool, error) {
	if err := domain.ValidateID(domain.EntityProduct, productID); err != nil {
		return false, err
	}
	if quantity < 1 {
		return false, domain.ErrInvalidArgument("quantity must be at least 1")
	}

	level, err := uc.getLevel(ctx, productID)
	if err != nil {
		return false, err
	}

	return level.CanFulfill(quantity), nil
}

// GetCurrentStock returns the current stock level of a product
func (uc *StockLedgerUseCase) GetCurrentStock(ctx context.Context, productID string) (*domain.StockLevel, error) {
	if err := domain.ValidateID(domain.EntityProduct, productID); err != nil {
		return nil, err
	}
	return uc.getLevel(ctx, productID)
}

// UpdateStock atomically applies a stock change and records one audit log
// entry. Validation happens before any storage access; on failure no stock is
// mutated and no entry is written.
func (uc *StockLedgerUseCase) UpdateStock(ctx context.Context, req UpdateStockRequest) (*domain.InventoryLogEntry, error) {
	if err := uc.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	entry := domain.NewInventoryLogEntry(req.ProductID, req.Change, req.Type, req.Note, req.AdminID, req.OrderID)

	level, err := uc.repo.ApplyStockChange(ctx, entry)
	if err != nil {
		return nil, err
	}

	// The cache only ever serves reads; drop the stale level after a write.
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.ProductID); err != nil {
			uc.logger.WithError(err).WithField("product_id", req.ProductID).Warn("failed to invalidate stock cache")
		}
	}

	uc.logger.WithFields(logrus.Fields{
		"inventory_id": entry.ID,
		"product_id":   entry.ProductID,
		"change":       entry.Change,
		"type":         entry.Type,
		"new_stock":    level.Stock,
	}).Info("stock updated")

	return entry, nil
}

// RestockProduct increases stock on behalf of an administrator
func (uc *StockLedgerUseCase) RestockProduct(ctx context.Context, actor domain.Actor, productID string, quantity int, note *string) (*domain.InventoryLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidArgument("restock quantity must be at least 1")
	}

	adminID := actor.ID
	return uc.UpdateStock(ctx, UpdateStockRequest{
		ProductID: productID,
		Change:    quantity,
		Type:      domain.ChangeTypeRestock,
		Note:      note,
		AdminID:   &adminID,
	})
}

// GetStockHistory lists a product's audit trail, most recent first.
// Admin only; a pure read.
func (uc *StockLedgerUseCase) GetStockHistory(ctx context.Context, actor domain.Actor, productID string, limit, skip int) ([]*domain.InventoryLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if err := domain.ValidateID(domain.EntityProduct, productID); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, domain.ErrInvalidArgument("limit must not be negative")
	}
	if skip < 0 {
		return nil, domain.ErrInvalidArgument("skip must not be negative")
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	entries, err := uc.repo.ListLogEntries(ctx, productID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock history: %w", err)
	}

	return entries, nil
}

func (uc *StockLedgerUseCase) validateUpdateRequest(req UpdateStockRequest) error {
	if err := domain.ValidateID(domain.EntityProduct, req.ProductID); err != nil {
		return err
	}
	if req.Change == 0 {
		return domain.ErrInvalidArgument("change must not be zero")
	}
	if !req.Type.Valid() {
		return domain.ErrInvalidArgument(fmt.Sprintf("unknown change type: %s", req.Type))
	}
	if req.AdminID != nil {
		if err := domain.ValidateID(domain.EntityAdmin, *req.AdminID); err != nil {
			return err
		}
	}
	if req.OrderID != nil {
		if err := domain.ValidateID(domain.EntityOrder, *req.OrderID); err != nil {
			return err
		}
	}
	return nil
}

// getLevel reads a stock level through the cache when one is configured.
func (uc *StockLedgerUseCase) getLevel(ctx context.Context, productID string) (*domain.StockLevel, error) {
	if uc.cache != nil {
		level, ok, err := uc.cache.GetStockLevel(ctx, productID)
		if err != nil {
			uc.logger.WithError(err).WithField("product_id", productID).Warn("stock cache read failed")
		} else if ok {
			return level, nil
		}
	}

	level, err := uc.repo.GetStockLevel(ctx, productID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetStockLevel(ctx, productID, *level); err != nil {
			uc.logger.WithError(err).WithField("product_id", productID).Warn("stock cache write failed")
		}
	}

	return level, nil
}
