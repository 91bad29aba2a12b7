package catalog

import "github.com/fjod/vibe-cart/internal/domain"

// DefaultProducts is the demo catalog seed.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Aurora Wireless Headphones", Price: 89.99},
		{ID: "p2", Name: "Nimbus Mechanical Keyboard", Price: 129.5},
		{ID: "p3", Name: "Drift USB-C Hub", Price: 39.99},
		{ID: "p4", Name: "Halo Desk Lamp", Price: 24.0},
		{ID: "p5", Name: "Vertex Laptop Stand", Price: 54.25},
		{ID: "p6", Name: "Pulse Smart Speaker", Price: 74.99},
		{ID: "p7", Name: "Ember Travel Mug", Price: 19.95},
		{ID: "p8", Name: "Orbit Webcam", Price: 64.0},
	}
}
