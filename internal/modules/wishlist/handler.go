package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{productID}", h.contains)
		r.Post("/{productID}/toggle", h.toggle)
	})
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Toggle(r.Context(), identity.SessionFrom(r), productID)
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			http.Error(w, "Please sign in to add to wishlist", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	msg := "Added to wishlist!"
	if result == ToggleRemoved {
		msg = "Removed from wishlist"
	}
	respond(w, http.StatusOK, map[string]string{
		"result":  string(result),
		"message": msg,
	})
}

func (h *Handler) contains(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := h.service.Contains(r.Context(), identity.SessionFrom(r), productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"in_wishlist": in})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.ListProductIDs(r.Context(), identity.SessionFrom(r))
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			http.Error(w, "Please sign in to view your wishlist", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	respond(w, http.StatusOK, map[string][]uuid.UUID{"product_ids": ids})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
