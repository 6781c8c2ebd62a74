// Package roles defines typed contracts for module roles.
// Modules that fill a role (declared via PluginInfo.Roles) implement the
// corresponding interface so callers can use type-safe access via
// PluginResolver.ResolveByRole followed by a type assertion.
package roles

import (
	"context"

	"github.com/HerbHall/olympushub/internal/metrics"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
)

// Role name constants match the strings used in PluginInfo.Roles.
const (
	RoleDerivation   = "derivation"
	RoleNotification = "notification"
)

// DerivationProvider is implemented by the module that owns the shared
// metrics engine, so every module derives from the same catalog and source.
type DerivationProvider interface {
	Engine() *metrics.Engine

	// DefaultTimeRange is the window used when a request names none.
	DefaultTimeRange() models.TimeRange
}

// Notifier is implemented by modules that can show a toast in a dashboard
// session.
type Notifier interface {
	Notify(ctx context.Context, sessionID, message string, kind models.NotificationType) error
}

// Derivation resolves the first DerivationProvider, if any.
func Derivation(resolver plugin.PluginResolver) (DerivationProvider, bool) {
	if resolver == nil {
		return nil, false
	}
	for _, p := range resolver.ResolveByRole(RoleDerivation) {
		if dp, ok := p.(DerivationProvider); ok {
			return dp, true
		}
	}
	return nil, false
}

// Notifiers resolves every Notifier.
func Notifiers(resolver plugin.PluginResolver) []Notifier {
	if resolver == nil {
		return nil
	}
	var out []Notifier
	for _, p := range resolver.ResolveByRole(RoleNotification) {
		if n, ok := p.(Notifier); ok {
			out = append(out, n)
		}
	}
	return out
}
