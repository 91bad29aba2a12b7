package domain

// Product is a catalog entry. The catalog is defined at startup and never mutated.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
