package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/nidamehendi/storefront-backend/internal/metrics"
	"github.com/nidamehendi/storefront-backend/internal/obs"
)

// State is the subscription lifecycle state.
type State int

const (
	Unsubscribed State = iota
	Subscribing
	Subscribed
)

func (s State) String() string {
	switch s {
	case Subscribing:
		return "subscribing"
	case Subscribed:
		return "subscribed"
	}
	return "unsubscribed"
}

// NotificationSource is the transport the listener subscribes through.
// *pq.Listener satisfies it.
type NotificationSource interface {
	Listen(channel string) error
	Unlisten(channel string) error
	NotificationChannel() <-chan *pq.Notification
}

// Listener subscribes to the product change channel and forwards events:
// each burst of changes is coalesced into a single catalog refresh, and
// every individual event is broadcast to the hub.
//
// At most one subscription is active at a time; Subscribe tears down any
// existing one first. While the transport is not ready the listener stays
// in Subscribing, retrying at a fixed interval without backoff.
type Listener struct {
	source  NotificationSource
	channel string
	retry   time.Duration
	hub     *Hub
	refresh func()
	metrics *metrics.Registry

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// NewListener wires the listener. refresh is invoked (coalesced) after
// events arrive; hub and metrics may be nil.
func NewListener(source NotificationSource, channel string, retry time.Duration, hub *Hub, refresh func(), m *metrics.Registry) *Listener {
	if retry <= 0 {
		retry = time.Second
	}
	return &Listener{
		source:  source,
		channel: channel,
		retry:   retry,
		hub:     hub,
		refresh: refresh,
		metrics: m,
	}
}

// State returns the current subscription state.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Subscribe starts the subscription loop. Any active subscription is torn
// down first so change events are never delivered twice.
func (l *Listener) Subscribe(ctx context.Context) {
	l.Unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	l.mu.Lock()
	l.cancel = cancel
	l.done = done
	l.state = Subscribing
	l.mu.Unlock()

	go l.run(ctx, done)
}

// Unsubscribe stops the active subscription, if any, and waits for the
// loop to exit.
func (l *Listener) Unsubscribe() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	_ = l.source.Unlisten(l.channel)
}

func (l *Listener) setState(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

func (l *Listener) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// Subscribing: poll-retry until the transport accepts the LISTEN.
	for {
		err := l.source.Listen(l.channel)
		if err == nil {
			break
		}
		obs.Logger.Warn("realtime channel not ready, retrying",
			"channel", l.channel, "error", err.Error())
		select {
		case <-ctx.Done():
			l.setState(Unsubscribed)
			return
		case <-time.After(l.retry):
		}
	}

	l.setState(Subscribed)
	obs.Logger.Info("subscribed to change channel", "channel", l.channel)

	notif := l.source.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			l.setState(Unsubscribed)
			return
		case n, ok := <-notif:
			if !ok {
				l.setState(Unsubscribed)
				return
			}
			if n == nil {
				// pq sends nil after a reconnect; nothing to deliver.
				continue
			}
			ev, err := parseNotification(n.Extra)
			if err != nil {
				obs.Logger.Warn("undecodable change notification", "error", err.Error())
				continue
			}
			l.dispatch(ev, notif)
		}
	}
}

// dispatch fans out the event plus anything else already queued on the
// channel, then triggers exactly one refresh for the whole burst.
func (l *Listener) dispatch(first ChangeEvent, notif <-chan *pq.Notification) {
	events := []ChangeEvent{first}
	for drained := false; !drained; {
		select {
		case n, ok := <-notif:
			if !ok {
				drained = true
				break
			}
			if n == nil {
				continue
			}
			ev, err := parseNotification(n.Extra)
			if err != nil {
				continue
			}
			events = append(events, ev)
		default:
			drained = true
		}
	}

	for _, ev := range events {
		if l.metrics != nil {
			l.metrics.RealtimeEvents.WithLabelValues(string(ev.Kind)).Inc()
		}
		obs.Logger.Info(ev.Kind.Message(), "table", ev.Table, "kind", string(ev.Kind))
		if l.hub != nil {
			l.hub.Broadcast(ev)
		}
	}

	if l.refresh != nil {
		if l.metrics != nil {
			l.metrics.CatalogRefreshes.Inc()
		}
		l.refresh()
	}
}
