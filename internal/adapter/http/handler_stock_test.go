package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/usecase"
)

const (
	testProductID = "6f1c2a34-9f3b-4c1d-8a2e-0b1c2d3e4f5a"
	testAdminID   = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

// MockStockLedger is a mock implementation of StockLedger
type MockStockLedger struct {
	mock.Mock
}

func (m *MockStockLedger) CheckStockAvailability(ctx context.Context, productID string, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockLedger) GetCurrentStock(ctx context.Context, productID string) (*domain.StockLevel, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLevel), args.Error(1)
}

func (m *MockStockLedger) UpdateStock(ctx context.Context, req usecase.UpdateStockRequest) (*domain.InventoryLogEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryLogEntry), args.Error(1)
}

func (m *MockStockLedger) RestockProduct(ctx context.Context, actor domain.Actor, productID string, quantity int, note *string) (*domain.InventoryLogEntry, error) {
	args := m.Called(ctx, actor, productID, quantity, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryLogEntry), args.Error(1)
}

func (m *MockStockLedger) GetStockHistory(ctx context.Context, actor domain.Actor, productID string, limit, skip int) ([]*domain.InventoryLogEntry, error) {
	args := m.Called(ctx, actor, productID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InventoryLogEntry), args.Error(1)
}

// withActor injects an actor into the request context, standing in for the
// auth middleware.
func withActor(actor domain.Actor, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func TestStockHandler_GetCurrentStock(t *testing.T) {
	tests := []struct {
		name           string
		mockLevel      *domain.StockLevel
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "stock retrieved",
			mockLevel:      &domain.StockLevel{Stock: 5, InStock: true},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true,"message":"Stock level retrieved successfully","data":{"stock":5,"in_stock":true}}`,
		},
		{
			name:           "product not found",
			mockError:      domain.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":false,"message":"product not found","data":null,"code":"NOT_FOUND"}`,
		},
		{
			name:           "malformed id",
			mockError:      domain.ErrInvalidArgument("malformed product id: abc"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":false,"message":"malformed product id: abc","data":null,"code":"INVALID_ARGUMENT"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &MockStockLedger{}
			handler := NewStockHandler(ledger)

			ledger.On("GetCurrentStock", mock.Anything, testProductID).Return(tt.mockLevel, tt.mockError)

			req := httptest.NewRequest("GET", "/api/v1/products/"+testProductID+"/stock", nil)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/products/{id}/stock", handler.GetCurrentStock).Methods("GET")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			ledger.AssertExpectations(t)
		})
	}
}

func TestStockHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		mockQuantity   int
		mockAvailable  bool
		mockError      error
		skipMock       bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "available",
			queryParams:    "?quantity=3",
			mockQuantity:   3,
			mockAvailable:  true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true,"message":"Availability checked successfully","data":{"product_id":"` + testProductID + `","quantity":3,"available":true}}`,
		},
		{
			name:           "defaults to one unit",
			mockQuantity:   1,
			mockAvailable:  false,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true,"message":"Availability checked successfully","data":{"product_id":"` + testProductID + `","quantity":1,"available":false}}`,
		},
		{
			name:           "non-numeric quantity",
			queryParams:    "?quantity=lots",
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":false,"message":"quantity must be an integer","data":null,"code":"INVALID_ARGUMENT"}`,
		},
		{
			name:           "product not found",
			queryParams:    "?quantity=1",
			mockQuantity:   1,
			mockError:      domain.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":false,"message":"product not found","data":null,"code":"NOT_FOUND"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &MockStockLedger{}
			handler := NewStockHandler(ledger)

			if !tt.skipMock {
				ledger.On("CheckStockAvailability", mock.Anything, testProductID, tt.mockQuantity).Return(tt.mockAvailable, tt.mockError)
			}

			req := httptest.NewRequest("GET", "/api/v1/products/"+testProductID+"/availability"+tt.queryParams, nil)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/products/{id}/availability", handler.CheckAvailability).Methods("GET")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			ledger.AssertExpectations(t)
		})
	}
}

func TestStockHandler_Purchase(t *testing.T) {
	customer := domain.Actor{ID: testAdminID, Role: "customer"}

	tests := []struct {
		name           string
		requestBody    string
		mockEntry      *domain.InventoryLogEntry
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name:        "successful purchase",
			requestBody: `{"quantity": 3}`,
			mockEntry: &domain.InventoryLogEntry{
				ID:        "e1",
				ProductID: testProductID,
				Change:    -3,
				Type:      domain.ChangeTypePurchase,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "insufficient stock",
			requestBody:    `{"quantity": 5}`,
			mockError:      domain.ErrInsufficientStock,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "zero quantity",
			requestBody:    `{"quantity": 0}`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			requestBody:    `{"quantity": }`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &MockStockLedger{}
			handler := NewStockHandler(ledger)

			if !tt.skipMock {
				ledger.On("UpdateStock", mock.Anything, mock.AnythingOfType("usecase.UpdateStockRequest")).Return(tt.mockEntry, tt.mockError)
			}

			req := httptest.NewRequest("POST", "/api/v1/products/"+testProductID+"/purchase", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/products/{id}/purchase", withActor(customer, handler.Purchase)).Methods("POST")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			ledger.AssertExpectations(t)
		})
	}
}

func TestStockHandler_Restock(t *testing.T) {
	admin := domain.Actor{ID: testAdminID, Role: "admin"}

	ledger := &MockStockLedger{}
	handler := NewStockHandler(ledger)

	adminID := testAdminID
	ledger.On("RestockProduct", mock.Anything, admin, testProductID, 10, (*string)(nil)).Return(&domain.InventoryLogEntry{
		ID:        "e1",
		ProductID: testProductID,
		Change:    10,
		Type:      domain.ChangeTypeRestock,
		AdminID:   &adminID,
	}, nil).Once()

	req := httptest.NewRequest("POST", "/api/v1/products/"+testProductID+"/restock", bytes.NewBufferString(`{"quantity": 10}`))
	req.Header.Set("Content-Type", "application/json")

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/products/{id}/restock", withActor(admin, handler.Restock)).Methods("POST")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	ledger.AssertExpectations(t)
}

func TestStockHandler_Restock_PermissionDenied(t *testing.T) {
	customer := domain.Actor{ID: testAdminID, Role: "customer"}

	ledger := &MockStockLedger{}
	handler := NewStockHandler(ledger)

	ledger.On("RestockProduct", mock.Anything, customer, testProductID, 10, (*string)(nil)).Return(nil, domain.ErrPermissionDenied).Once()

	req := httptest.NewRequest("POST", "/api/v1/products/"+testProductID+"/restock", bytes.NewBufferString(`{"quantity": 10}`))

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/products/{id}/restock", withActor(customer, handler.Restock)).Methods("POST")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"admin privilege required","data":null,"code":"PERMISSION_DENIED"}`, w.Body.String())
	ledger.AssertExpectations(t)
}

func TestStockHandler_GetHistory(t *testing.T) {
	admin := domain.Actor{ID: testAdminID, Role: "admin"}

	tests := []struct {
		name           string
		queryParams    string
		mockLimit      int
		mockSkip       int
		mockEntries    []*domain.InventoryLogEntry
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name:           "history retrieved",
			queryParams:    "?limit=2&skip=1",
			mockLimit:      2,
			mockSkip:       1,
			mockEntries:    []*domain.InventoryLogEntry{{ID: "e2"}, {ID: "e1"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "defaults applied",
			mockLimit:      0,
			mockSkip:       0,
			mockEntries:    []*domain.InventoryLogEntry{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric limit",
			queryParams:    "?limit=abc",
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative skip rejected by usecase",
			queryParams:    "?skip=-1",
			mockLimit:      0,
			mockSkip:       -1,
			mockError:      domain.ErrInvalidArgument("skip must not be negative"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &MockStockLedger{}
			handler := NewStockHandler(ledger)

			if !tt.skipMock {
				ledger.On("GetStockHistory", mock.Anything, admin, testProductID, tt.mockLimit, tt.mockSkip).Return(tt.mockEntries, tt.mockError)
			}

			req := httptest.NewRequest("GET", "/api/v1/products/"+testProductID+"/stock/history"+tt.queryParams, nil)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/products/{id}/stock/history", withActor(admin, handler.GetHistory)).Methods("GET")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			ledger.AssertExpectations(t)
		})
	}
}
