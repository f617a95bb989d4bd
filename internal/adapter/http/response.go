package http

import (
	"encoding/json"
	"net/http"

	"github.com/brinepantry/inventory/internal/domain"
)

// Envelope is the uniform JSON response body
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    string      `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(env)
}

func respondSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, Envelope{Status: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, statusCode int, message, code string) {
	writeJSON(w, statusCode, Envelope{Status: false, Message: message, Code: code})
}

// respondDomainError maps a domain error kind to an HTTP status so callers
// can tell "out of stock" from "not found" from "forbidden".
func respondDomainError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	status := http.StatusInternalServerError
	message := err.Error()

	switch kind {
	case domain.KindInvalidArgument:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInsufficientStock:
		status = http.StatusConflict
	case domain.KindPermissionDenied:
		status = http.StatusForbidden
	case domain.KindStorage:
		// Do not leak driver details to the caller.
		message = "internal server error"
	}

	respondError(w, status, message, string(kind))
}
