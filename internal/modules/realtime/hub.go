package realtime

import "sync"

const subscriberBuffer = 16

// Hub fans change events out to stream subscribers. Slow subscribers have
// events dropped rather than blocking the listener; the storefront refetches
// on any event, so a dropped one costs nothing.
type Hub struct {
	mu   sync.Mutex
	subs map[chan ChangeEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan ChangeEvent]struct{})}
}

// Subscribe registers a new subscriber channel.
func (h *Hub) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan ChangeEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers the event to every subscriber without blocking.
func (h *Hub) Broadcast(ev ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
