package notification

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/playdeck/internal/app/player"
)

type captureSink struct {
	events []player.Event
	err    error
}

func (s *captureSink) Send(ev player.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func TestManager_SubscribeUnsubscribe(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.SubscriberCount())

	id1 := m.Subscribe(&captureSink{})
	id2 := m.Subscribe(&captureSink{})
	require.NotEqual(t, id1, id2)
	assert.Equal(t, 2, m.SubscriberCount())

	m.Unsubscribe(id1)
	assert.Equal(t, 1, m.SubscriberCount())

	// Unknown IDs are ignored
	m.Unsubscribe("no-such-subscription")
	assert.Equal(t, 1, m.SubscriberCount())
}

func TestManager_SendFansOutInOrder(t *testing.T) {
	m := NewManager()
	a := &captureSink{}
	b := &captureSink{}
	m.Subscribe(a)
	m.Subscribe(b)

	events := []player.Event{
		{Type: player.EventStateChanged, State: "locked"},
		{Type: player.EventStateChanged, State: "ready"},
		{Type: player.EventPlaybackStarted, State: "ready"},
	}
	for _, ev := range events {
		require.NoError(t, m.Send(ev))
	}

	for _, sink := range []*captureSink{a, b} {
		require.Len(t, sink.events, 3)
		for i, ev := range sink.events {
			assert.Equal(t, events[i].Type, ev.Type)
			assert.Equal(t, uint64(i+1), ev.SequenceNo)
		}
	}
}

func TestManager_SendSkipsFailingSubscriber(t *testing.T) {
	m := NewManager()
	failing := &captureSink{err: errors.New("sink unavailable")}
	healthy := &captureSink{}
	m.Subscribe(failing)
	m.Subscribe(healthy)

	require.NoError(t, m.Send(player.Event{Type: player.EventStateChanged, State: "locked"}))

	assert.Len(t, healthy.events, 1)
	assert.Empty(t, failing.events)
}
