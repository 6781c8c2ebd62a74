// Package plugintest holds the behavioral contract every hub module must
// satisfy. Each module's tests call TestPluginContract.
package plugintest

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

// TestPluginContract exercises p's lifecycle with minimal dependencies:
// no config, no store and a recording bus.
//
//	func TestContract(t *testing.T) {
//	    plugintest.TestPluginContract(t, func() plugin.Plugin { return console.New() })
//	}
func TestPluginContract(t *testing.T, factory func() plugin.Plugin) {
	t.Helper()

	t.Run("Info_returns_valid_metadata", func(t *testing.T) {
		info := factory().Info()
		if info.Name == "" {
			t.Error("Info().Name must not be empty")
		}
		if strings.ContainsAny(info.Name, "/ ") {
			t.Errorf("Info().Name %q must be usable as a path segment", info.Name)
		}
		if info.Version == "" {
			t.Error("Info().Version must not be empty")
		}
		if info.APIVersion < plugin.APIVersionMin || info.APIVersion > plugin.APIVersionCurrent {
			t.Errorf("Info().APIVersion = %d, outside [%d, %d]",
				info.APIVersion, plugin.APIVersionMin, plugin.APIVersionCurrent)
		}
	})

	t.Run("Init_Start_Stop", func(t *testing.T) {
		p := factory()
		ctx := context.Background()
		if err := p.Init(ctx, Deps(p.Info().Name)); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if err := p.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		if err := p.Stop(ctx); err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
	})

	t.Run("Stop_without_Start", func(t *testing.T) {
		p := factory()
		_ = p.Init(context.Background(), Deps(p.Info().Name))
		if err := p.Stop(context.Background()); err != nil {
			t.Fatalf("Stop() without Start error = %v", err)
		}
	})

	t.Run("Routes_are_well_formed", func(t *testing.T) {
		p := factory()
		hp, ok := p.(plugin.HTTPProvider)
		if !ok {
			t.Skip("module exposes no routes")
		}
		_ = p.Init(context.Background(), Deps(p.Info().Name))
		seen := make(map[string]bool)
		for _, r := range hp.Routes() {
			key := r.Method + " " + r.Path
			if r.Method == "" {
				t.Errorf("route %q has no method", r.Path)
			}
			if !strings.HasPrefix(r.Path, "/") {
				t.Errorf("route %q must start with /", key)
			}
			if r.Handler == nil {
				t.Errorf("route %q has nil handler", key)
			}
			if seen[key] {
				t.Errorf("route %q registered twice", key)
			}
			seen[key] = true
		}
	})
}

// Deps returns dependencies suitable for unit tests: a no-op logger and a
// RecordingBus.
func Deps(name string) plugin.Dependencies {
	return plugin.Dependencies{
		Logger: zap.NewNop().Named(name),
		Bus:    &RecordingBus{},
	}
}

// RecordingBus is a plugin.EventBus that keeps every published event and
// delivers synchronously to subscribers.
type RecordingBus struct {
	mu     sync.Mutex
	events []plugin.Event
	subs   map[string][]plugin.EventHandler
	all    []plugin.EventHandler
}

func (b *RecordingBus) Publish(ctx context.Context, e plugin.Event) error {
	b.mu.Lock()
	b.events = append(b.events, e)
	handlers := append([]plugin.EventHandler(nil), b.subs[e.Topic]...)
	handlers = append(handlers, b.all...)
	b.mu.Unlock()
	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *RecordingBus) PublishAsync(ctx context.Context, e plugin.Event) { _ = b.Publish(ctx, e) }

func (b *RecordingBus) Subscribe(topic string, h plugin.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[string][]plugin.EventHandler)
	}
	b.subs[topic] = append(b.subs[topic], h)
	return func() {}
}

func (b *RecordingBus) SubscribeAll(h plugin.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
	return func() {}
}

// Events returns a copy of the published events.
func (b *RecordingBus) Events() []plugin.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]plugin.Event(nil), b.events...)
}

// Topics returns the topics of the published events, in order.
func (b *RecordingBus) Topics() []string {
	var out []string
	for _, e := range b.Events() {
		out = append(out, e.Topic)
	}
	return out
}

// Reset drops recorded events.
func (b *RecordingBus) Reset() {
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()
}
