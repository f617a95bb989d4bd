package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/usecase"
)

// Authenticator is the use-case contract the auth handler depends on
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResponse, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/auth/login", h.Login).Methods("POST")
}

// Login handles credential exchange for an access token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", string(domain.KindInvalidArgument))
		return
	}

	resp, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.KindOf(err) == domain.KindInvalidArgument {
			respondError(w, http.StatusBadRequest, err.Error(), string(domain.KindInvalidArgument))
			return
		}
		// Unknown email and wrong password look the same to the caller.
		respondError(w, http.StatusUnauthorized, "invalid email or password", "unauthorized")
		return
	}

	respondSuccess(w, http.StatusOK, "Login successful", resp)
}
