package domain

import (
	"testing"
	"time"
)

func TestNewInventoryLogEntry(t *testing.T) {
	productID := "6f1c2a34-9f3b-4c1d-8a2e-0b1c2d3e4f5a"
	note := "damaged in transit"
	adminID := "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"

	before := time.Now()
	entry := NewInventoryLogEntry(productID, -2, ChangeTypeManual, &note, &adminID, nil)
	after := time.Now()

	if entry.ID == "" {
		t.Error("Expected entry ID to be generated")
	}

	if entry.ProductID != productID {
		t.Errorf("Expected product ID %s, got %s", productID, entry.ProductID)
	}

	if entry.Change != -2 {
		t.Errorf("Expected change -2, got %d", entry.Change)
	}

	if entry.Type != ChangeTypeManual {
		t.Errorf("Expected type %s, got %s", ChangeTypeManual, entry.Type)
	}

	if entry.Note == nil || *entry.Note != note {
		t.Errorf("Expected note %q, got %v", note, entry.Note)
	}

	if entry.AdminID == nil || *entry.AdminID != adminID {
		t.Errorf("Expected admin ID %s, got %v", adminID, entry.AdminID)
	}

	if entry.OrderID != nil {
		t.Errorf("Expected OrderID to be nil, got %v", entry.OrderID)
	}

	if entry.CreatedAt.Before(before) || entry.CreatedAt.After(after) {
		t.Error("CreatedAt timestamp is not within expected range")
	}
}

func TestNewInventoryLogEntry_UniqueIDs(t *testing.T) {
	productID := "6f1c2a34-9f3b-4c1d-8a2e-0b1c2d3e4f5a"

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		entry := NewInventoryLogEntry(productID, 1, ChangeTypeRestock, nil, nil, nil)
		if seen[entry.ID] {
			t.Fatalf("Duplicate entry ID generated: %s", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestChangeTypeValid(t *testing.T) {
	tests := []struct {
		changeType ChangeType
		expected   bool
	}{
		{ChangeTypeRestock, true},
		{ChangeTypePurchase, true},
		{ChangeTypeManual, true},
		{ChangeType("refund"), false},
		{ChangeType(""), false},
	}

	for _, tt := range tests {
		if tt.changeType.Valid() != tt.expected {
			t.Errorf("Expected Valid()=%v for %q", tt.expected, tt.changeType)
		}
	}
}

func TestChangeTypeValues(t *testing.T) {
	tests := []struct {
		changeType ChangeType
		expected   string
	}{
		{ChangeTypeRestock, "restock"},
		{ChangeTypePurchase, "purchase"},
		{ChangeTypeManual, "manual"},
	}

	for _, tt := range tests {
		if string(tt.changeType) != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, string(tt.changeType))
		}
	}
}

func TestNewProduct(t *testing.T) {
	product := NewProduct("Dill Pickle Spears 32oz", 12)

	if product.ID == "" {
		t.Error("Expected product ID to be generated")
	}

	if product.Stock != 12 {
		t.Errorf("Expected stock 12, got %d", product.Stock)
	}

	if !product.InStock {
		t.Error("Expected InStock to be true for positive stock")
	}

	empty := NewProduct("Seasonal Watermelon Rind Pickles 16oz", 0)
	if empty.InStock {
		t.Error("Expected InStock to be false for zero stock")
	}
}

func TestStockLevelCanFulfill(t *testing.T) {
	tests := []struct {
		name     string
		level    StockLevel
		quantity int
		expected bool
	}{
		{"enough stock", StockLevel{Stock: 5, InStock: true}, 3, true},
		{"exact stock", StockLevel{Stock: 5, InStock: true}, 5, true},
		{"not enough stock", StockLevel{Stock: 2, InStock: true}, 5, false},
		{"zero stock", StockLevel{Stock: 0, InStock: false}, 1, false},
		{"inconsistent flag", StockLevel{Stock: 5, InStock: false}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.level.CanFulfill(tt.quantity) != tt.expected {
				t.Errorf("Expected CanFulfill(%d)=%v for %+v", tt.quantity, tt.expected, tt.level)
			}
		})
	}
}

func BenchmarkNewInventoryLogEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewInventoryLogEntry("6f1c2a34-9f3b-4c1d-8a2e-0b1c2d3e4f5a", 1, ChangeTypeRestock, nil, nil, nil)
	}
}
