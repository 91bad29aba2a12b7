package catalog

import (
	"context"
	"testing"

	"github.com/fjod/vibe-cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRepository_List(t *testing.T) {
	repo := NewStaticRepository([]domain.Product{
		{ID: "p1", Name: "Widget", Price: 9.99},
		{ID: "p2", Name: "Gadget", Price: 4.5},
	})

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestStaticRepository_Get(t *testing.T) {
	repo := NewStaticRepository([]domain.Product{
		{ID: "p1", Name: "Widget", Price: 9.99},
	})

	p, err := repo.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 9.99, p.Price)
}

func TestStaticRepository_Get_NotFound(t *testing.T) {
	repo := NewStaticRepository(DefaultProducts())

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDefaultProducts_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range DefaultProducts() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
}
