package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/vibe-cart/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddLineRequestDTO struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type UpdateQtyRequestDTO struct {
	Qty int `json:"qty"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.carts.GetCart(r.Context()))
}

// AddLine handles POST /api/cart. Every add creates a new line, even for a
// product already in the cart.
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req AddLineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload. Expected { productId, qty > 0 }")
		return
	}
	if req.ProductID == "" || req.Qty <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid payload. Expected { productId, qty > 0 }")
		return
	}

	cart, err := h.carts.AddLine(r.Context(), req.ProductID, req.Qty)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cart)
}

// UpdateQty handles PUT /api/cart/{id}.
func (h *CartHandler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateQtyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid qty")
		return
	}

	cart, err := h.carts.UpdateQty(r.Context(), id, req.Qty)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// RemoveLine handles DELETE /api/cart/{id}.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cart, err := h.carts.RemoveLine(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}
