// Package event is the in-process publish/subscribe bus that carries state
// changes, alert notifications and task updates between modules.
package event

import (
	"context"
	"sync"
	"time"

	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

var _ plugin.EventBus = (*Bus)(nil)

// Bus fans events out to topic subscribers first, then to wildcard
// subscribers. Publish runs handlers on the caller's goroutine;
// PublishAsync gives each handler its own.
type Bus struct {
	mu       sync.RWMutex
	topics   map[string][]subscription
	wildcard []subscription
	seq      uint64
	now      func() time.Time
	logger   *zap.Logger
}

type subscription struct {
	id      uint64
	handler plugin.EventHandler
}

// NewBus returns an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		topics: make(map[string][]subscription),
		now:    time.Now,
		logger: logger,
	}
}

// Publish delivers the event to every matching handler before returning.
func (b *Bus) Publish(ctx context.Context, event plugin.Event) error {
	event = b.stamp(event)
	for _, s := range b.targets(event.Topic) {
		b.deliver(ctx, s.handler, event)
	}
	return nil
}

// PublishAsync delivers the event without waiting for handlers.
func (b *Bus) PublishAsync(ctx context.Context, event plugin.Event) {
	event = b.stamp(event)
	for _, s := range b.targets(event.Topic) {
		go b.deliver(ctx, s.handler, event)
	}
}

// Subscribe registers handler for one topic.
func (b *Bus) Subscribe(topic string, handler plugin.EventHandler) (unsubscribe func()) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.topics[topic] = append(b.topics[topic], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.topics[topic] = remove(b.topics[topic], id)
		if len(b.topics[topic]) == 0 {
			delete(b.topics, topic)
		}
	}
}

// SubscribeAll registers handler for every topic.
func (b *Bus) SubscribeAll(handler plugin.EventHandler) (unsubscribe func()) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.wildcard = append(b.wildcard, subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.wildcard = remove(b.wildcard, id)
	}
}

// SubscriberCount reports how many handlers would receive an event on topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic]) + len(b.wildcard)
}

func (b *Bus) stamp(event plugin.Event) plugin.Event {
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	return event
}

// targets copies the handler lists so delivery happens without the lock held.
func (b *Bus) targets(topic string) []subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]subscription, 0, len(b.topics[topic])+len(b.wildcard))
	out = append(out, b.topics[topic]...)
	out = append(out, b.wildcard...)
	return out
}

func (b *Bus) deliver(ctx context.Context, handler plugin.EventHandler, event plugin.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("topic", event.Topic),
				zap.String("source", event.Source),
				zap.Any("panic", r),
			)
		}
	}()
	handler(ctx, event)
}

func remove(subs []subscription, id uint64) []subscription {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}
