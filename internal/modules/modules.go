// Package modules serves the DIA, Perseus and Atropos vendor dashboards.
package modules

import (
	"context"

	"github.com/HerbHall/olympushub/internal/metrics"
	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/roles"
	"go.uber.org/zap"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
)

// Module implements the vendor module dashboards.
type Module struct {
	logger    *zap.Logger
	cat       *catalog.Catalog
	engine    *metrics.Engine
	timeRange models.TimeRange
	shared    bool
}

// New creates a new modules plugin instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:         "modules",
		Version:      "0.1.0",
		Description:  "DIA, Perseus and Atropos module dashboards",
		Dependencies: []string{"console"},
		APIVersion:   plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.cat = catalog.Default()

	if dp, ok := roles.Derivation(deps.Plugins); ok && dp.Engine() != nil {
		m.engine = dp.Engine()
		m.timeRange = dp.DefaultTimeRange()
		m.shared = true
	} else {
		m.engine = metrics.NewEngine(m.cat)
		m.timeRange = models.Last24H
	}

	m.logger.Info("modules initialized", zap.Bool("shared_engine", m.shared))
	return nil
}

func (m *Module) Start(_ context.Context) error { return nil }

func (m *Module) Stop(_ context.Context) error { return nil }

// Health implements plugin.HealthChecker.
func (m *Module) Health(_ context.Context) plugin.HealthStatus {
	engine := "standalone"
	if m.shared {
		engine = "shared"
	}
	return plugin.HealthStatus{
		Status:  "healthy",
		Details: map[string]string{"engine": engine},
	}
}
