package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
)

// Handler exposes cart HTTP endpoints. Guests identify their device with
// the X-Device-ID header; members are resolved from the bearer token.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/count", h.count)
		r.Post("/items", h.add)
		r.Put("/items/{productID}", h.updateQuantity)
		r.Delete("/items/{productID}", h.remove)
		r.Post("/checkout", h.checkout)
	})
}

// deviceID is required only on the guest path.
func deviceID(r *http.Request, sess *identity.Session) (string, bool) {
	if sess != nil {
		return "", true
	}
	id := r.Header.Get("X-Device-ID")
	return id, id != ""
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess := identity.SessionFrom(r)
	dev, ok := deviceID(r, sess)
	if !ok {
		http.Error(w, "X-Device-ID header required for guest carts", http.StatusBadRequest)
		return
	}

	if err := h.service.Add(r.Context(), sess, dev, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, ErrInvalidQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	count, _ := h.service.Count(r.Context(), sess, dev)
	respond(w, http.StatusOK, map[string]interface{}{
		"message":    "Added to cart!",
		"cart_count": count,
	})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type request struct {
		Quantity int `json:"quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := identity.SessionFrom(r)
	dev, ok := deviceID(r, sess)
	if !ok {
		http.Error(w, "X-Device-ID header required for guest carts", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), sess, dev, productID, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := identity.SessionFrom(r)
	dev, ok := deviceID(r, sess)
	if !ok {
		http.Error(w, "X-Device-ID header required for guest carts", http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), sess, dev, productID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess := identity.SessionFrom(r)
	dev, ok := deviceID(r, sess)
	if !ok {
		http.Error(w, "X-Device-ID header required for guest carts", http.StatusBadRequest)
		return
	}

	c, err := h.service.List(r.Context(), sess, dev)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	sess := identity.SessionFrom(r)
	dev, ok := deviceID(r, sess)
	if !ok {
		http.Error(w, "X-Device-ID header required for guest carts", http.StatusBadRequest)
		return
	}

	count, err := h.service.Count(r.Context(), sess, dev)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]int{"count": count})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.Checkout(r.Context(), identity.SessionFrom(r))
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			http.Error(w, "Please sign in to checkout", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusAccepted, map[string]string{"message": msg})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
