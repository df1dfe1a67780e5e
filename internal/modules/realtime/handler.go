package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nidamehendi/storefront-backend/internal/metrics"
)

const heartbeatInterval = 30 * time.Second

// Handler streams change events to storefront pages over SSE.
type Handler struct {
	hub     *Hub
	metrics *metrics.Registry
}

func NewHandler(hub *Hub, m *metrics.Registry) *Handler {
	return &Handler{hub: hub, metrics: m}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/api/v1/events", h.stream)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)
	if h.metrics != nil {
		h.metrics.SSEClients.Inc()
		defer h.metrics.SSEClients.Dec()
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
