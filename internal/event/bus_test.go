package event

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

func TestPublish_DeliversToTopicAndWildcard(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var topicCalls, allCalls int
	bus.Subscribe("alerts.rule.created", func(_ context.Context, _ plugin.Event) { topicCalls++ })
	bus.Subscribe("alerts.rule.deleted", func(_ context.Context, _ plugin.Event) { t.Error("wrong topic delivered") })
	bus.SubscribeAll(func(_ context.Context, _ plugin.Event) { allCalls++ })

	if err := bus.Publish(context.Background(), plugin.Event{Topic: "alerts.rule.created"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if topicCalls != 1 {
		t.Errorf("topic handler calls = %d, want 1", topicCalls)
	}
	if allCalls != 1 {
		t.Errorf("wildcard handler calls = %d, want 1", allCalls)
	}
}

func TestPublish_StampsTimestamp(t *testing.T) {
	bus := NewBus(zap.NewNop())
	fixed := time.Date(2025, 9, 3, 10, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got time.Time
	bus.SubscribeAll(func(_ context.Context, e plugin.Event) { got = e.Timestamp })

	_ = bus.Publish(context.Background(), plugin.Event{Topic: "x"})
	if !got.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", got, fixed)
	}

	preset := fixed.Add(-time.Hour)
	_ = bus.Publish(context.Background(), plugin.Event{Topic: "x", Timestamp: preset})
	if !got.Equal(preset) {
		t.Errorf("preset Timestamp overwritten: got %v, want %v", got, preset)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var calls int
	unsub := bus.Subscribe("t", func(_ context.Context, _ plugin.Event) { calls++ })
	unsubAll := bus.SubscribeAll(func(_ context.Context, _ plugin.Event) { calls++ })

	if n := bus.SubscriberCount("t"); n != 2 {
		t.Errorf("SubscriberCount = %d, want 2", n)
	}

	unsub()
	unsubAll()
	_ = bus.Publish(context.Background(), plugin.Event{Topic: "t"})

	if calls != 0 {
		t.Errorf("calls after unsubscribe = %d, want 0", calls)
	}
	if n := bus.SubscriberCount("t"); n != 0 {
		t.Errorf("SubscriberCount after unsubscribe = %d, want 0", n)
	}
}

func TestPublish_HandlerPanicIsolated(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var reached bool
	bus.Subscribe("t", func(_ context.Context, _ plugin.Event) { panic("boom") })
	bus.Subscribe("t", func(_ context.Context, _ plugin.Event) { reached = true })

	if err := bus.Publish(context.Background(), plugin.Event{Topic: "t"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if !reached {
		t.Error("handler after panicking handler was not called")
	}
}

func TestPublishAsync(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var wg sync.WaitGroup
	var count atomic.Int32
	wg.Add(2)
	bus.Subscribe("t", func(_ context.Context, _ plugin.Event) { count.Add(1); wg.Done() })
	bus.SubscribeAll(func(_ context.Context, _ plugin.Event) { count.Add(1); wg.Done() })

	bus.PublishAsync(context.Background(), plugin.Event{Topic: "t"})

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async handlers did not complete")
	}
	if count.Load() != 2 {
		t.Errorf("count = %d, want 2", count.Load())
	}
}
