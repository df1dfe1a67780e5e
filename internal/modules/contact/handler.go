package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/contact", func(r chi.Router) {
		r.Post("/", h.submit)
		r.Post("/newsletter", h.subscribe)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Submit(r.Context(), sub); err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Oops! Something went wrong. Please try again.", http.StatusBadGateway)
		}
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"message": "Thank you! Your message has been sent successfully. We will contact you soon.",
	})
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email string `json:"email"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Oops! Something went wrong. Please try again.", http.StatusBadGateway)
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"message": "Thank you for subscribing! You will receive our latest updates and offers.",
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
