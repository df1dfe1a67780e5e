package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
)

// testRouter mounts the cart routes behind a middleware that attaches a
// member session when the X-Test-Member header is present.
func testRouter(svc Service, sess *identity.Session) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Test-Member") != "" && sess != nil {
				r = r.WithContext(identity.WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	})
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func TestHandlerGuestRequiresDeviceHeader(t *testing.T) {
	svc, _, _, _ := newTestService()
	router := testRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandlerAddReturnsBadgeCount(t *testing.T) {
	svc, _, _, _ := newTestService()
	router := testRouter(svc, nil)

	body := `{"product_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Device-ID", "dev-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message   string `json:"message"`
		CartCount int    `json:"cart_count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Added to cart!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.CartCount != 1 {
		t.Fatalf("expected cart_count 1, got %d", resp.CartCount)
	}
}

func TestHandlerAddDefaultsQuantityToOne(t *testing.T) {
	svc, _, guests, _ := newTestService()
	router := testRouter(svc, nil)

	productID := uuid.New()
	body := `{"product_id":"` + productID.String() + `","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Device-ID", "dev-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	lines := guests.slots["dev-1"]
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", lines)
	}
}

func TestHandlerUpdateAndRemove(t *testing.T) {
	svc, _, guests, _ := newTestService()
	router := testRouter(svc, nil)
	productID := uuid.New()

	addBody := `{"product_id":"` + productID.String() + `","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(addBody))
	req.Header.Set("X-Device-ID", "dev-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/"+productID.String(), strings.NewReader(`{"quantity":5}`))
	req.Header.Set("X-Device-ID", "dev-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d", rec.Code)
	}
	if guests.slots["dev-1"][0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", guests.slots["dev-1"][0].Quantity)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/"+productID.String(), nil)
	req.Header.Set("X-Device-ID", "dev-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}
	if len(guests.slots["dev-1"]) != 0 {
		t.Fatalf("expected empty cart after remove")
	}
}

func TestHandlerCheckoutGuestRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	router := testRouter(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please sign in to checkout") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestHandlerCheckoutMemberGetsStub(t *testing.T) {
	svc, _, _, _ := newTestService()
	sess := memberSession()
	router := testRouter(svc, sess)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", nil)
	req.Header.Set("X-Test-Member", "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != CheckoutMessage {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestHandlerMemberIgnoresDeviceHeader(t *testing.T) {
	svc, members, _, _ := newTestService()
	sess := memberSession()
	router := testRouter(svc, sess)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Test-Member", "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(members.order[sess.CustomerID]) != 1 {
		t.Fatalf("expected member line written, got %d", len(members.order[sess.CustomerID]))
	}
}
