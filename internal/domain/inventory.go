package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeType represents the kind of stock-affecting event
type ChangeType string

const (
	ChangeTypeRestock  ChangeType = "restock"
	ChangeTypePurchase ChangeType = "purchase"
	ChangeTypeManual   ChangeType = "manual"
)

// Valid reports whether the change type is one of the known kinds.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeTypeRestock, ChangeTypePurchase, ChangeTypeManual:
		return true
	}
	return false
}

// InventoryLogEntry is the immutable audit record of one stock change.
// Once written it is never updated or deleted.
type InventoryLogEntry struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	Change    int        `json:"change"`
	Type      ChangeType `json:"type"`
	Note      *string    `json:"note,omitempty"`
	AdminID   *string    `json:"admin_id,omitempty"`
	OrderID   *string    `json:"order_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewInventoryLogEntry creates a log entry with a fresh id and timestamp.
// Optional fields stay nil when absent; no default actor or order is inferred.
func NewInventoryLogEntry(productID string, change int, changeType ChangeType, note, adminID, orderID *string) *InventoryLogEntry {
	return &InventoryLogEntry{
		ID:        uuid.New().String(),
		ProductID: productID,
		Change:    change,
		Type:      changeType,
		Note:      note,
		AdminID:   adminID,
		OrderID:   orderID,
		CreatedAt: time.Now(),
	}
}
