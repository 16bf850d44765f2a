package testutil

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/flexprice/storefront/internal/pubsub"
)

// InMemoryPubSub records every published message and fans it out to subscribers.
// Messages published before a subscription are replayed to it.
type InMemoryPubSub struct {
	mu          sync.RWMutex
	subscribers map[string][]chan *message.Message
	messages    map[string][]*message.Message
	closed      bool
}

var _ pubsub.PubSub = (*InMemoryPubSub)(nil)

func NewInMemoryPubSub() *InMemoryPubSub {
	return &InMemoryPubSub{
		subscribers: make(map[string][]chan *message.Message),
		messages:    make(map[string][]*message.Message),
	}
}

func (ps *InMemoryPubSub) Publish(_ context.Context, topic string, msg *message.Message) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.messages[topic] = append(ps.messages[topic], msg)
	for _, ch := range ps.subscribers[topic] {
		select {
		case ch <- msg:
		default:
			// slow subscriber, the message stays available through Messages
		}
	}
	return nil
}

func (ps *InMemoryPubSub) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	backlog := ps.messages[topic]
	ch := make(chan *message.Message, len(backlog)+100)
	for _, msg := range backlog {
		ch <- msg
	}
	ps.subscribers[topic] = append(ps.subscribers[topic], ch)

	return ch, nil
}

func (ps *InMemoryPubSub) Close() error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.closed {
		return nil
	}
	ps.closed = true

	for _, subs := range ps.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	ps.subscribers = make(map[string][]chan *message.Message)
	return nil
}

// Messages returns the messages published to a topic, oldest first
func (ps *InMemoryPubSub) Messages(topic string) []*message.Message {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	out := make([]*message.Message, len(ps.messages[topic]))
	copy(out, ps.messages[topic])
	return out
}

// ClearMessages drops the recorded messages of every topic
func (ps *InMemoryPubSub) ClearMessages() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.messages = make(map[string][]*message.Message)
}
