package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fjod/vibe-cart/internal/web"
)

// NewRouter wires the full HTTP surface: liveness, the JSON API, and the
// embedded storefront under /app.
func NewRouter(products *ProductHandler, carts *CartHandler, checkout *CheckoutHandler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Liveness check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Mock E-Com Cart API running"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", carts.Get)
			r.Post("/", carts.AddLine)
			r.Put("/{id}", carts.UpdateQty)
			r.Delete("/{id}", carts.RemoveLine)
		})
		r.Post("/checkout", checkout.Checkout)
	})

	// Storefront
	r.Mount("/app", web.Handler())

	return r
}
