package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/usecase"
)

// StockLedger is the use-case contract the stock handler depends on
type StockLedger interface {
	CheckStockAvailability(ctx context.Context, productID string, quantity int) (bool, error)
	GetCurrentStock(ctx context.Context, productID string) (*domain.StockLevel, error)
	UpdateStock(ctx context.Context, req usecase.UpdateStockRequest) (*domain.InventoryLogEntry, error)
	RestockProduct(ctx context.Context, actor domain.Actor, productID string, quantity int, note *string) (*domain.InventoryLogEntry, error)
	GetStockHistory(ctx context.Context, actor domain.Actor, productID string, limit, skip int) ([]*domain.InventoryLogEntry, error)
}

// StockHandler handles HTTP requests for the stock ledger
type StockHandler struct {
	ledger StockLedger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(ledger StockLedger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router, auth *AuthMiddleware) {
	router.HandleFunc("/api/v1/products/{id}/stock", h.GetCurrentStock).Methods("GET")
	router.HandleFunc("/api/v1/products/{id}/availability", h.CheckAvailability).Methods("GET")
	router.HandleFunc("/api/v1/products/{id}/purchase", auth.RequireAuth(h.Purchase)).Methods("POST")
	router.HandleFunc("/api/v1/products/{id}/restock", auth.RequireAdmin(h.Restock)).Methods("POST")
	router.HandleFunc("/api/v1/products/{id}/stock/adjust", auth.RequireAdmin(h.Adjust)).Methods("POST")
	router.HandleFunc("/api/v1/products/{id}/stock/history", auth.RequireAdmin(h.GetHistory)).Methods("GET")
}

// GetCurrentStock handles retrieving a product's stock level
func (h *StockHandler) GetCurrentStock(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	level, err := h.ledger.GetCurrentStock(r.Context(), productID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Stock level retrieved successfully", level)
}

// CheckAvailability handles stock availability checks
func (h *StockHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	quantity := 1
	if quantityStr := r.URL.Query().Get("quantity"); quantityStr != "" {
		q, err := strconv.Atoi(quantityStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "quantity must be an integer", string(domain.KindInvalidArgument))
			return
		}
		quantity = q
	}

	available, err := h.ledger.CheckStockAvailability(r.Context(), productID, quantity)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Availability checked successfully", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"available":  available,
	})
}

// Purchase handles an order-driven stock decrease
func (h *StockHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req struct {
		Quantity int    `json:"quantity"`
		OrderID  string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", string(domain.KindInvalidArgument))
		return
	}

	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "quantity must be at least 1", string(domain.KindInvalidArgument))
		return
	}

	var orderID *string
	if req.OrderID != "" {
		orderID = &req.OrderID
	}

	entry, err := h.ledger.UpdateStock(r.Context(), usecase.UpdateStockRequest{
		ProductID: productID,
		Change:    -req.Quantity,
		Type:      domain.ChangeTypePurchase,
		OrderID:   orderID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Purchase recorded successfully", entry)
}

// Restock handles an admin-initiated stock increase
func (h *StockHandler) Restock(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	actor, ok := ActorFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated", "unauthorized")
		return
	}

	var req struct {
		Quantity int     `json:"quantity"`
		Note     *string `json:"note,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", string(domain.KindInvalidArgument))
		return
	}

	entry, err := h.ledger.RestockProduct(r.Context(), actor, productID, req.Quantity, req.Note)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Product restocked successfully", entry)
}

// Adjust handles an admin-initiated manual stock correction
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	actor, ok := ActorFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated", "unauthorized")
		return
	}

	var req struct {
		Change int     `json:"change"`
		Note   *string `json:"note,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", string(domain.KindInvalidArgument))
		return
	}

	adminID := actor.ID
	entry, err := h.ledger.UpdateStock(r.Context(), usecase.UpdateStockRequest{
		ProductID: productID,
		Change:    req.Change,
		Type:      domain.ChangeTypeManual,
		Note:      req.Note,
		AdminID:   &adminID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Stock adjusted successfully", entry)
}

// GetHistory handles listing a product's audit trail
func (h *StockHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	actor, ok := ActorFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated", "unauthorized")
		return
	}

	limit, skip := 0, 0
	var err error

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer", string(domain.KindInvalidArgument))
			return
		}
	}

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if skip, err = strconv.Atoi(skipStr); err != nil {
			respondError(w, http.StatusBadRequest, "skip must be an integer", string(domain.KindInvalidArgument))
			return
		}
	}

	entries, err := h.ledger.GetStockHistory(r.Context(), actor, productID, limit, skip)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Stock history retrieved successfully", map[string]interface{}{
		"entries": entries,
		"limit":   limit,
		"skip":    skip,
	})
}
