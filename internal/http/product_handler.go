package http

import (
	"net/http"

	"github.com/fjod/vibe-cart/internal/catalog"
)

type ProductHandler struct {
	catalog catalog.Repository
}

func NewProductHandler(catalog catalog.Repository) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /api/products and returns the full catalog for browsing.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
