package domain

// CartLine is one entry in the cart. Name and price are copied from the
// product at add time, so later catalog changes do not affect existing lines.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// CartItem is a cart line augmented with its derived line total.
type CartItem struct {
	CartLine
	LineTotal float64 `json:"lineTotal"`
}

// Cart is the derived view of the cart store. It is recomputed on every read
// and never stored.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Total    float64    `json:"total"`
}

// NewCart derives a Cart from the given lines, preserving their order.
// Total equals subtotal: no tax or shipping is modeled.
func NewCart(lines []CartLine) *Cart {
	items := make([]CartItem, 0, len(lines))
	var subtotal float64
	for _, line := range lines {
		lineTotal := line.Price * float64(line.Qty)
		subtotal += lineTotal
		items = append(items, CartItem{CartLine: line, LineTotal: lineTotal})
	}
	return &Cart{
		Items:    items,
		Subtotal: subtotal,
		Total:    subtotal,
	}
}
