// Package notification provides fan-out of player events to subscribers.
package notification

import (
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/playdeck/playdeck/internal/app/player"
)

// subscription represents a subscriber's registration.
type subscription struct {
	id   string
	sink player.Sink
}

// Manager distributes player events to all subscribed sinks. It
// implements player.Sink itself, so it plugs into the player as a
// single sink. Fan-out is synchronous; the player model is
// single-threaded and events must arrive in emission order.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	sequenceNo    uint64
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]*subscription),
	}
}

// Subscribe adds a sink and returns its subscription ID.
func (m *Manager) Subscribe(sink player.Sink) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions[id] = &subscription{id: id, sink: sink}
	return id
}

// Unsubscribe removes a subscription. Unknown IDs are ignored.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, subscriptionID)
}

// SubscriberCount returns the number of active subscriptions.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Send stamps the event with the next sequence number and delivers it
// to every subscriber. Subscriber failures are logged and skipped;
// delivery is best-effort.
func (m *Manager) Send(ev player.Event) error {
	m.mu.Lock()
	m.sequenceNo++
	ev.SequenceNo = m.sequenceNo

	subs := make([]*subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		if err := sub.sink.Send(ev); err != nil {
			zlog.Warn().
				Err(err).
				Str("subscription_id", sub.id).
				Str("event", ev.Type.String()).
				Msg("Failed to deliver notification")
		}
	}
	return nil
}
