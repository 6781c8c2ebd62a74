// Package registry owns module lifecycle for the hub: registration,
// dependency ordering, Init/Start/Stop and route collection.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

// Registry tracks registered modules. Optional modules that fail validation,
// Init or Start are disabled along with everything that depends on them;
// required modules abort startup.
type Registry struct {
	mu       sync.RWMutex
	modules  map[string]plugin.Plugin
	infos    map[string]plugin.PluginInfo
	order    []string
	disabled map[string]string // name -> reason
	unsubs   []func()
	logger   *zap.Logger
}

// New returns an empty registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		modules:  make(map[string]plugin.Plugin),
		infos:    make(map[string]plugin.PluginInfo),
		disabled: make(map[string]string),
		logger:   logger,
	}
}

// Register adds a module. Names must be unique and non-empty.
func (r *Registry) Register(p plugin.Plugin) error {
	info := p.Info()
	if info.Name == "" {
		return errors.New("module has empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.modules[info.Name]; dup {
		return fmt.Errorf("module %q already registered", info.Name)
	}
	r.modules[info.Name] = p
	r.infos[info.Name] = info
	r.logger.Debug("module registered",
		zap.String("module", info.Name),
		zap.String("version", info.Version),
	)
	return nil
}

// Validate checks API versions and dependencies, then fixes the start order.
func (r *Registry) Validate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.sortedNames() {
		info := r.infos[name]
		if err := checkAPIVersion(info); err != nil {
			if err := r.disable(name, err.Error()); err != nil {
				return err
			}
		}
	}

	// Repeat until stable so disabling one module cascades to its dependents.
	for changed := true; changed; {
		changed = false
		for _, name := range r.sortedNames() {
			if _, off := r.disabled[name]; off {
				continue
			}
			for _, dep := range r.infos[name].Dependencies {
				reason := ""
				if _, ok := r.modules[dep]; !ok {
					reason = fmt.Sprintf("depends on %q which is not registered", dep)
				} else if _, off := r.disabled[dep]; off {
					reason = fmt.Sprintf("depends on %q which is disabled", dep)
				}
				if reason == "" {
					continue
				}
				if err := r.disable(name, reason); err != nil {
					return err
				}
				changed = true
				break
			}
		}
	}

	order, err := r.sortByDependency()
	if err != nil {
		return err
	}
	r.order = order
	r.logger.Info("module order resolved",
		zap.Strings("order", order),
		zap.Int("disabled", len(r.disabled)),
	)
	return nil
}

// InitAll initializes modules in dependency order and subscribes the
// handlers of every EventSubscriber to bus. Module code runs without the
// registry lock held, so Init may resolve earlier modules.
func (r *Registry) InitAll(ctx context.Context, depsFor func(name string) plugin.Dependencies, bus plugin.EventBus) error {
	for _, name := range r.ordered() {
		p := r.modules[name]
		r.logger.Info("initializing module", zap.String("module", name))
		if err := guard(name, "init", func() error { return p.Init(ctx, depsFor(name)) }); err != nil {
			if err := r.disableLocked(name, err.Error()); err != nil {
				return err
			}
			continue
		}
		if es, ok := p.(plugin.EventSubscriber); ok && bus != nil {
			for _, sub := range es.Subscriptions() {
				unsub := bus.Subscribe(sub.Topic, sub.Handler)
				r.mu.Lock()
				r.unsubs = append(r.unsubs, unsub)
				r.mu.Unlock()
			}
		}
	}
	return nil
}

// StartAll starts every enabled module in dependency order.
func (r *Registry) StartAll(ctx context.Context) error {
	for _, name := range r.ordered() {
		if r.IsDisabled(name) {
			continue
		}
		p := r.modules[name]
		r.logger.Info("starting module", zap.String("module", name))
		if err := guard(name, "start", func() error { return p.Start(ctx) }); err != nil {
			if err := r.disableLocked(name, err.Error()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) ordered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) disableLocked(name, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disable(name, reason)
}

// StopAll stops enabled modules in reverse order. Errors and panics are
// logged and do not prevent the remaining modules from stopping.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.Lock()
	unsubs := r.unsubs
	r.unsubs = nil
	order := slices.Clone(r.order)
	active := make(map[string]plugin.Plugin, len(order))
	for _, name := range order {
		if _, off := r.disabled[name]; !off {
			active[name] = r.modules[name]
		}
	}
	r.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
	for _, name := range slices.Backward(order) {
		p, ok := active[name]
		if !ok {
			continue
		}
		if err := guard(name, "stop", func() error { return p.Stop(ctx) }); err != nil {
			r.logger.Error("module stop failed", zap.String("module", name), zap.Error(err))
			continue
		}
		r.logger.Info("module stopped", zap.String("module", name))
	}
}

// Resolve returns an enabled module by name. Implements plugin.PluginResolver.
func (r *Registry) Resolve(name string) (plugin.Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, off := r.disabled[name]; off {
		return nil, false
	}
	p, ok := r.modules[name]
	return p, ok
}

// ResolveByRole returns enabled modules declaring role, in dependency order.
func (r *Registry) ResolveByRole(role string) []plugin.Plugin {
	var out []plugin.Plugin
	for _, p := range r.All() {
		if slices.Contains(r.infoOf(p).Roles, role) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Registry) infoOf(p plugin.Plugin) plugin.PluginInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.infos[p.Info().Name]
}

// All returns enabled modules in dependency order.
func (r *Registry) All() []plugin.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]plugin.Plugin, 0, len(r.order))
	for _, name := range r.order {
		if _, off := r.disabled[name]; !off {
			out = append(out, r.modules[name])
		}
	}
	return out
}

// AllRoutes collects routes from enabled HTTPProvider modules, keyed by
// module name.
func (r *Registry) AllRoutes() map[string][]plugin.Route {
	routes := make(map[string][]plugin.Route)
	for _, p := range r.All() {
		hp, ok := p.(plugin.HTTPProvider)
		if !ok {
			continue
		}
		if rs := hp.Routes(); len(rs) > 0 {
			routes[p.Info().Name] = rs
		}
	}
	return routes
}

// IsDisabled reports whether name was disabled.
func (r *Registry) IsDisabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, off := r.disabled[name]
	return off
}

// DisabledReason returns why name was disabled, or "".
func (r *Registry) DisabledReason(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.disabled[name]
}

// disable marks name disabled. Caller holds r.mu. Returns an error when the
// module is required.
func (r *Registry) disable(name, reason string) error {
	if r.infos[name].Required {
		return fmt.Errorf("required module %q: %s", name, reason)
	}
	r.logger.Warn("disabling module", zap.String("module", name), zap.String("reason", reason))
	r.disabled[name] = reason
	return nil
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortByDependency orders enabled modules with Kahn's algorithm, breaking
// ties alphabetically so the order is stable across runs.
func (r *Registry) sortByDependency() ([]string, error) {
	indegree := make(map[string]int)
	dependents := make(map[string][]string)
	for _, name := range r.sortedNames() {
		if _, off := r.disabled[name]; off {
			continue
		}
		indegree[name] += 0
		for _, dep := range r.infos[name].Dependencies {
			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, d := range indegree {
		if d == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(indegree))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, next := range dependents[name] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
				sort.Strings(ready)
			}
		}
	}

	if len(order) != len(indegree) {
		var cycle []string
		for name, d := range indegree {
			if d > 0 {
				cycle = append(cycle, name)
			}
		}
		sort.Strings(cycle)
		return nil, fmt.Errorf("dependency cycle among modules: %v", cycle)
	}
	return order, nil
}

func checkAPIVersion(info plugin.PluginInfo) error {
	switch {
	case info.APIVersion < plugin.APIVersionMin:
		return fmt.Errorf("targets API v%d, minimum is v%d", info.APIVersion, plugin.APIVersionMin)
	case info.APIVersion > plugin.APIVersionCurrent:
		return fmt.Errorf("targets API v%d, server supports up to v%d", info.APIVersion, plugin.APIVersionCurrent)
	}
	return nil
}

// guard runs fn and converts a panic into an error.
func guard(name, phase string, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("module %q panicked during %s: %v", name, phase, rec)
		}
	}()
	return fn()
}
