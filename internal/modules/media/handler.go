package media

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// 8 MiB: product photos, not archives.
const maxUploadBytes = 8 << 20

// Handler exposes the admin image-upload endpoint.
type Handler struct {
	uploader Uploader
	guard    func(http.Handler) http.Handler
}

func NewHandler(uploader Uploader, adminGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{uploader: uploader, guard: adminGuard}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/media", func(r chi.Router) {
		r.Use(h.guard)
		r.Post("/images", h.uploadImage)
	})
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		http.Error(w, "image storage not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
