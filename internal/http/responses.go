package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/vibe-cart/internal/catalog"
	"github.com/fjod/vibe-cart/internal/service"
	"github.com/fjod/vibe-cart/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// handleServiceError maps service sentinel errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "Invalid qty")
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, store.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "Cart item not found")
	default:
		log.Printf("unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
