// Package console serves the File Application, Message Application and
// Adoption consoles. It owns the metrics engine every other module derives
// from.
package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HerbHall/olympushub/internal/metrics"
	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/roles"
	"go.uber.org/zap"
)

// Compile-time interface guards.
var (
	_ plugin.Plugin            = (*Module)(nil)
	_ plugin.HTTPProvider      = (*Module)(nil)
	_ plugin.HealthChecker     = (*Module)(nil)
	_ roles.DerivationProvider = (*Module)(nil)
)

// Module implements the console plugin.
type Module struct {
	logger    *zap.Logger
	cfg       Config
	cat       *catalog.Catalog
	engine    *metrics.Engine
	timeRange models.TimeRange
	opts      []metrics.Option
}

// New creates a console module over the embedded catalog. Options are
// passed through to the engine; tests use them to pin the source and clock.
func New(opts ...metrics.Option) *Module {
	return &Module{opts: opts}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "console",
		Version:     "0.1.0",
		Description: "File, message and adoption console derivations",
		Roles:       []string{roles.RoleDerivation},
		Required:    true,
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal console config: %w", err)
		}
	}
	tr, ok := models.ParseTimeRange(m.cfg.DefaultTimeRange)
	if !ok {
		return fmt.Errorf("console default_time_range %q: want one of 1h, 24h, 7d, 30d", m.cfg.DefaultTimeRange)
	}
	m.timeRange = tr

	src := metrics.NewSource()
	if m.cfg.RandomSeed != 0 {
		src = metrics.NewSeededSource(m.cfg.RandomSeed)
	}
	m.cat = catalog.Default()
	opts := append([]metrics.Option{metrics.WithSource(src)}, m.opts...)
	m.engine = metrics.NewEngine(m.cat, opts...)

	m.logger.Info("console module initialized",
		zap.String("default_time_range", string(m.timeRange)),
		zap.Bool("seeded", m.cfg.RandomSeed != 0),
		zap.Int("subscribers", len(m.cat.Subscribers())-1),
	)
	return nil
}

func (m *Module) Start(_ context.Context) error { return nil }

func (m *Module) Stop(_ context.Context) error { return nil }

// Engine implements roles.DerivationProvider.
func (m *Module) Engine() *metrics.Engine { return m.engine }

// DefaultTimeRange implements roles.DerivationProvider.
func (m *Module) DefaultTimeRange() models.TimeRange { return m.timeRange }

// Health implements plugin.HealthChecker.
func (m *Module) Health(_ context.Context) plugin.HealthStatus {
	if m.engine == nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: "engine not initialized"}
	}
	return plugin.HealthStatus{
		Status: "healthy",
		Details: map[string]string{
			"subscribers":        strconv.Itoa(len(m.cat.Subscribers()) - 1),
			"zones":              strconv.Itoa(len(m.cat.Zones()) - 1),
			"default_time_range": string(m.timeRange),
		},
	}
}
