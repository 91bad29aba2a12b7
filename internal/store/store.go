package store

import (
	"errors"

	"github.com/fjod/vibe-cart/internal/domain"
)

// ErrLineNotFound is returned when the referenced cart line does not exist.
var ErrLineNotFound = errors.New("cart line not found")

// CartStore holds the mutable cart state. Implementations must serialize
// mutations so concurrent requests cannot corrupt the line map or id counter.
type CartStore interface {
	// Add creates a new line with a freshly assigned id and appends it.
	Add(productID, name string, price float64, qty int) domain.CartLine

	// SetQty replaces the quantity of an existing line.
	SetQty(id string, qty int) error

	// Remove deletes an existing line.
	Remove(id string) error

	// Lines returns a copy of all lines in insertion order.
	Lines() []domain.CartLine

	// Clear empties the store. Used by checkout.
	Clear()
}
