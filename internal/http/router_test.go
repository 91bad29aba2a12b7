package http

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/vibe-cart/internal/catalog"
	"github.com/fjod/vibe-cart/internal/domain"
	"github.com/fjod/vibe-cart/internal/service"
	"github.com/fjod/vibe-cart/internal/store"
)

func newTestRouter() http.Handler {
	repo := catalog.NewStaticRepository([]domain.Product{
		{ID: "p1", Name: "Widget", Price: 9.99},
	})
	cartStore := store.NewMemoryStore()
	return NewRouter(
		NewProductHandler(repo),
		NewCartHandler(service.NewCartService(repo, cartStore)),
		NewCheckoutHandler(service.NewCheckoutService(cartStore)),
		5*time.Second,
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRouter_Liveness(t *testing.T) {
	router := newTestRouter()

	recorder := doJSON(t, router, "GET", "/", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if recorder.Body.String() != "Mock E-Com Cart API running" {
		t.Errorf("Unexpected liveness body: %q", recorder.Body.String())
	}
}

// Full add -> update -> checkout -> empty-cart flow over the real routes.
func TestRouter_CheckoutFlow(t *testing.T) {
	router := newTestRouter()

	// Add two widgets
	recorder := doJSON(t, router, "POST", "/api/cart", `{"productId": "p1", "qty": 2}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}
	var cart domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "1" {
		t.Fatalf("Unexpected cart after add: %+v", cart)
	}
	if math.Abs(cart.Items[0].LineTotal-19.98) > 1e-9 || math.Abs(cart.Subtotal-19.98) > 1e-9 {
		t.Errorf("Unexpected totals after add: %+v", cart)
	}

	// Bump the line to three
	recorder = doJSON(t, router, "PUT", "/api/cart/1", `{"qty": 3}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if err := json.NewDecoder(recorder.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Qty != 3 {
		t.Fatalf("Expected one line with qty 3, got %+v", cart.Items)
	}
	if math.Abs(cart.Items[0].LineTotal-29.97) > 1e-9 {
		t.Errorf("Expected lineTotal 29.97, got %v", cart.Items[0].LineTotal)
	}

	// Check out
	recorder = doJSON(t, router, "POST", "/api/checkout", `{"name": "Jane", "email": "jane@x.com"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	var response CheckoutResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if math.Abs(response.Receipt.Total-29.97) > 1e-9 {
		t.Errorf("Expected receipt total 29.97, got %v", response.Receipt.Total)
	}
	if len(response.Receipt.Items) != 1 {
		t.Errorf("Expected 1 receipt item, got %d", len(response.Receipt.Items))
	}

	// The cart is empty afterwards
	recorder = doJSON(t, router, "GET", "/api/cart", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if err := json.NewDecoder(recorder.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Errorf("Expected an empty cart after checkout, got %+v", cart)
	}
}

func TestRouter_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		expected int
	}{
		{"add unknown product", "POST", "/api/cart", `{"productId": "nope", "qty": 1}`, http.StatusNotFound},
		{"add invalid qty", "POST", "/api/cart", `{"productId": "p1", "qty": 0}`, http.StatusBadRequest},
		{"update missing line", "PUT", "/api/cart/42", `{"qty": 2}`, http.StatusNotFound},
		{"remove missing line", "DELETE", "/api/cart/42", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			recorder := doJSON(t, router, tt.method, tt.path, tt.body)
			if recorder.Code != tt.expected {
				t.Errorf("Expected status code %d, got %d", tt.expected, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Error == "" {
				t.Error("Expected error message in response body")
			}
		})
	}
}

func TestRouter_ServesStorefront(t *testing.T) {
	router := newTestRouter()

	recorder := doJSON(t, router, "GET", "/app/", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if !bytes.Contains(recorder.Body.Bytes(), []byte("Vibe Commerce")) {
		t.Error("Expected the storefront page in the response")
	}
}
