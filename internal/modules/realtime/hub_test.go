package realtime

import "testing"

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	hub.Broadcast(ChangeEvent{Kind: KindInsert, Table: "products"})

	for _, ch := range []chan ChangeEvent{a, b} {
		select {
		case ev := <-ch:
			if ev.Kind != KindInsert {
				t.Fatalf("expected INSERT, got %q", ev.Kind)
			}
		default:
			t.Fatal("subscriber missed broadcast")
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	hub.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.Subscribers())
	}

	// Double unsubscribe must be safe.
	hub.Unsubscribe(ch)
}

func TestHubDropsEventsForSlowSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Overfill the buffer; Broadcast must never block.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(ChangeEvent{Kind: KindUpdate})
	}

	if got := len(ch); got != subscriberBuffer {
		t.Fatalf("expected buffer capped at %d, got %d", subscriberBuffer, got)
	}
}
