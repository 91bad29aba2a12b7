package service

import (
	"context"
	"time"

	"github.com/fjod/vibe-cart/internal/domain"
	"github.com/fjod/vibe-cart/internal/store"
)

// CheckoutRequest carries the optional customer details and, if the client
// submitted one, a cart line override.
type CheckoutRequest struct {
	Name  string
	Email string

	// Lines, when non-nil, replaces the server-side cart for this checkout.
	// The lines are trusted as-is and not re-validated against the catalog,
	// matching the behavior the storefront was built against.
	Lines []domain.CartLine
}

// CheckoutService turns the current cart into a receipt.
type CheckoutService struct {
	store store.CartStore
}

func NewCheckoutService(store store.CartStore) *CheckoutService {
	return &CheckoutService{store: store}
}

// Checkout totals the chosen line set, stamps the current instant, and clears
// the store unconditionally, even when client-supplied lines were used. An
// empty cart produces a zero-total receipt; checkout never fails.
func (s *CheckoutService) Checkout(_ context.Context, req CheckoutRequest) *domain.Receipt {
	lines := req.Lines
	if lines == nil {
		lines = s.store.Lines()
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Qty)
	}

	s.store.Clear()

	return &domain.Receipt{
		Name:      req.Name,
		Email:     req.Email,
		Total:     total,
		Timestamp: time.Now().UTC(),
		Items:     lines,
	}
}
