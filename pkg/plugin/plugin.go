// Package plugin defines the module contract shared by every Olympus HUB
// service module: lifecycle, scoped dependencies, HTTP routes and events.
package plugin

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// API version range accepted by the registry.
const (
	APIVersionMin     = 1
	APIVersionCurrent = 1
)

// Plugin is implemented by every module mounted into the server.
type Plugin interface {
	// Info returns static metadata. Must not depend on Init having run.
	Info() PluginInfo

	// Init wires dependencies. Called once, in dependency order.
	Init(ctx context.Context, deps Dependencies) error

	// Start begins background work, if any.
	Start(ctx context.Context) error

	// Stop releases resources. Safe to call without Start.
	Stop(ctx context.Context) error
}

// PluginInfo describes a module and what it needs.
type PluginInfo struct {
	Name         string   // Route prefix and config key: "console", "alerts", ...
	Version      string   // Semantic version string
	Description  string   // Human-readable summary
	Dependencies []string // Modules that must initialize first
	Roles        []string // Contracts from pkg/roles this module fills
	Required     bool     // Server refuses to start if this module fails
	APIVersion   int      // Plugin API version targeted
}

// Dependencies are injected by the registry during Init.
type Dependencies struct {
	Config  Config      // Scoped to plugins.<name>
	Logger  *zap.Logger // Named after the module
	Store   Store       // Shared database; nil when the module runs without one
	Bus     EventBus
	Plugins PluginResolver
}

// Route is an HTTP route exposed by a module. Path is relative to
// /api/v1/<module>.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// HTTPProvider is implemented by modules that expose API routes.
type HTTPProvider interface {
	Routes() []Route
}

// HealthChecker is implemented by modules that report their own health.
type HealthChecker interface {
	Health(ctx context.Context) HealthStatus
}

// EventSubscriber is implemented by modules that consume bus events.
// The composition root subscribes the returned handlers after Init.
type EventSubscriber interface {
	Subscriptions() []Subscription
}

// HealthStatus is a module health report.
type HealthStatus struct {
	Status  string            `json:"status"` // "healthy", "degraded", "unhealthy"
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Config abstracts configuration access.
type Config interface {
	Unmarshal(target any) error
	Get(key string) any
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	IsSet(key string) bool
	Sub(key string) Config
}

// Store is the shared database handle.
type Store interface {
	DB() *sql.DB
	Tx(ctx context.Context, fn func(tx *sql.Tx) error) error
	Migrate(ctx context.Context, module string, migrations []Migration) error
}

// Migration is one forward-only schema step owned by a module.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// Publisher sends events to the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber receives events from the bus.
type Subscriber interface {
	Subscribe(topic string, handler EventHandler) (unsubscribe func())
}

// EventBus is the in-process publish/subscribe channel between modules.
type EventBus interface {
	Publisher
	Subscriber
	PublishAsync(ctx context.Context, event Event)
	SubscribeAll(handler EventHandler) (unsubscribe func())
}

// Event is a message on the bus.
type Event struct {
	Topic     string
	Source    string // Module that emitted the event
	Timestamp time.Time
	Payload   any // Type depends on topic
}

// EventHandler processes events from the bus.
type EventHandler func(ctx context.Context, event Event)

// Subscription binds a topic to a handler.
type Subscription struct {
	Topic   string
	Handler EventHandler
}

// PluginResolver lets modules find each other by name or by role.
type PluginResolver interface {
	Resolve(name string) (Plugin, bool)
	ResolveByRole(role string) []Plugin
}
