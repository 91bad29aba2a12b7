package service

import (
	"context"

	"github.com/fjod/vibe-cart/internal/catalog"
	"github.com/fjod/vibe-cart/internal/domain"
	"github.com/fjod/vibe-cart/internal/store"
)

// CartService owns the mutation boundary of the cart: it validates quantities,
// resolves products against the catalog, drives the store, and returns the
// recomputed cart from every operation.
type CartService struct {
	catalog catalog.Repository
	store   store.CartStore
}

func NewCartService(catalog catalog.Repository, store store.CartStore) *CartService {
	return &CartService{
		catalog: catalog,
		store:   store,
	}
}

// GetCart returns the current derived cart without mutating anything.
func (s *CartService) GetCart(_ context.Context) *domain.Cart {
	return domain.NewCart(s.store.Lines())
}

// AddLine creates a new cart line for the given product, copying its name and
// price at add time. A later catalog price change does not affect the line.
func (s *CartService) AddLine(ctx context.Context, productID string, qty int) (*domain.Cart, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.store.Add(product.ID, product.Name, product.Price, qty)
	return domain.NewCart(s.store.Lines()), nil
}

// UpdateQty replaces the quantity of an existing line in place.
func (s *CartService) UpdateQty(_ context.Context, id string, qty int) (*domain.Cart, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	if err := s.store.SetQty(id, qty); err != nil {
		return nil, err
	}
	return domain.NewCart(s.store.Lines()), nil
}

// RemoveLine deletes an existing line.
func (s *CartService) RemoveLine(_ context.Context, id string) (*domain.Cart, error) {
	if err := s.store.Remove(id); err != nil {
		return nil, err
	}
	return domain.NewCart(s.store.Lines()), nil
}
