package catalog

import (
	"context"
	"errors"

	"github.com/fjod/vibe-cart/internal/domain"
)

// ErrProductNotFound is returned when a requested product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Repository defines read operations for the product catalog. The catalog is
// read-only: there are no mutation operations.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// StaticRepository serves a fixed product list defined at startup.
type StaticRepository struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func NewStaticRepository(products []domain.Product) *StaticRepository {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticRepository{
		products: products,
		byID:     byID,
	}
}

// List returns all products in catalog order.
func (r *StaticRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Get returns the product with the given id.
func (r *StaticRepository) Get(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}
