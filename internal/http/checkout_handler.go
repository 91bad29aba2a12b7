package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fjod/vibe-cart/internal/domain"
	"github.com/fjod/vibe-cart/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type CheckoutRequestDTO struct {
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	CartItems []domain.CartLine `json:"cartItems"`
}

type CheckoutResponseDTO struct {
	Receipt *domain.Receipt `json:"receipt"`
}

// Checkout handles POST /api/checkout. An empty body is accepted; the
// server-side cart is used unless the client submitted its own line list.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	receipt := h.checkout.Checkout(r.Context(), service.CheckoutRequest{
		Name:  req.Name,
		Email: req.Email,
		Lines: req.CartItems,
	})

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{Receipt: receipt})
}
