// Package alerts manages alert rules and the notification bell.
package alerts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/roles"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrInvalidRule is returned when a rule fails validation.
var ErrInvalidRule = errors.New("invalid alert rule")

var unreadAlerts = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "olympushub_unread_alerts",
	Help: "Number of unread triggered alerts.",
})

func init() {
	prometheus.MustRegister(unreadAlerts)
}

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
)

// Module implements the alerts plugin.
type Module struct {
	logger  *zap.Logger
	cfg     Config
	cat     *catalog.Catalog
	store   *AlertStore
	bus     plugin.EventBus
	plugins plugin.PluginResolver
	now     func() time.Time
}

// New creates a new alerts plugin instance.
func New() *Module {
	return &Module{now: time.Now}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "alerts",
		Version:     "0.1.0",
		Description: "Alert rules and triggered alert notifications",
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(ctx context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.bus = deps.Bus
	m.plugins = deps.Plugins
	m.cat = catalog.Default()

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal alerts config: %w", err)
		}
	}

	if deps.Store == nil {
		m.logger.Warn("alerts store not available, rule endpoints disabled")
		return nil
	}
	if err := deps.Store.Migrate(ctx, "alerts", migrations()); err != nil {
		return fmt.Errorf("alerts migrations: %w", err)
	}
	m.store = NewAlertStore(deps.Store.DB())

	if m.cfg.SeedDefaults {
		if err := m.seed(ctx); err != nil {
			return fmt.Errorf("seed alerts: %w", err)
		}
	}
	m.refreshUnread(ctx)
	m.logger.Info("alerts module initialized", zap.Bool("seeded", m.cfg.SeedDefaults))
	return nil
}

func (m *Module) Start(_ context.Context) error { return nil }

func (m *Module) Stop(_ context.Context) error { return nil }

// Health implements plugin.HealthChecker.
func (m *Module) Health(ctx context.Context) plugin.HealthStatus {
	if m.store == nil {
		return plugin.HealthStatus{Status: "degraded", Message: "store not available"}
	}
	rules, err := m.store.CountRules(ctx)
	if err != nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: err.Error()}
	}
	unread, err := m.store.UnreadCount(ctx)
	if err != nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: err.Error()}
	}
	return plugin.HealthStatus{
		Status: "healthy",
		Details: map[string]string{
			"rules":  fmt.Sprint(rules),
			"unread": fmt.Sprint(unread),
		},
	}
}

// seed loads the catalog rules and bell entries into empty tables. Bell
// entries are placed relative to the current time.
func (m *Module) seed(ctx context.Context) error {
	n, err := m.store.CountRules(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		start := m.now()
		// Inserted last to first so the first catalog rule lists first.
		for _, r := range slices.Backward(m.cat.DefaultAlertRules()) {
			r.CreatedAt = start
			if err := m.store.InsertRule(ctx, &r); err != nil {
				return err
			}
		}
	}

	n, err = m.store.CountTriggered(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	start := m.now()
	for _, s := range m.cat.TriggeredAlerts() {
		a := models.TriggeredAlert{
			ID:           s.ID,
			Title:        s.Title,
			Severity:     s.Severity,
			Timestamp:    seedTime(start, s.Age),
			IsRead:       s.Read,
			SubscriberID: s.SubscriberID,
		}
		if sub, ok := m.cat.Subscriber(s.SubscriberID); ok {
			a.SubscriberName = sub.Name
		}
		if err := m.store.InsertTriggered(ctx, &a); err != nil {
			return err
		}
	}
	return nil
}

// CreateRuleRequest is the body of POST /rules.
type CreateRuleRequest struct {
	Name      string                `json:"name" example:"High File App Error Rate"`
	MetricID  string                `json:"metric_id" example:"error_rate"`
	Condition models.AlertCondition `json:"condition" example:"Is above"`
	Threshold float64               `json:"threshold" example:"5"`
	Duration  int                   `json:"duration" example:"5"`
	Actions   []models.AlertAction  `json:"actions"`
	IsEnabled *bool                 `json:"is_enabled,omitempty"`
}

// validate normalizes req and reports the first problem with it.
func (req *CreateRuleRequest) validate(cat *catalog.Catalog) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if !cat.IsAlertable(req.MetricID) {
		return fmt.Errorf("%w: unknown metric %q", ErrInvalidRule, req.MetricID)
	}
	if req.Condition == "" {
		req.Condition = models.ConditionAbove
	}
	if !req.Condition.Valid() {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidRule, req.Condition)
	}
	if req.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidRule)
	}
	for _, a := range req.Actions {
		if !a.Valid() {
			return fmt.Errorf("%w: unknown action %q", ErrInvalidRule, a)
		}
	}
	return nil
}

// CreateRule validates and stores a new rule.
func (m *Module) CreateRule(ctx context.Context, req CreateRuleRequest) (models.AlertRule, error) {
	if err := req.validate(m.cat); err != nil {
		return models.AlertRule{}, err
	}
	rule := models.AlertRule{
		ID:        uuid.NewString(),
		Name:      req.Name,
		MetricID:  req.MetricID,
		Condition: req.Condition,
		Threshold: req.Threshold,
		Duration:  req.Duration,
		Actions:   req.Actions,
		IsEnabled: req.IsEnabled == nil || *req.IsEnabled,
		CreatedAt: m.now().UTC(),
	}
	if rule.Actions == nil {
		rule.Actions = []models.AlertAction{}
	}
	if err := m.store.InsertRule(ctx, &rule); err != nil {
		return models.AlertRule{}, err
	}
	m.publish(ctx, TopicRuleCreated, rule)
	m.logger.Info("alert rule created",
		zap.String("rule_id", rule.ID),
		zap.String("metric_id", rule.MetricID),
	)
	return rule, nil
}

// SetRuleEnabled switches a rule on or off and returns it.
func (m *Module) SetRuleEnabled(ctx context.Context, id string, enabled bool) (models.AlertRule, error) {
	if err := m.store.SetRuleEnabled(ctx, id, enabled); err != nil {
		return models.AlertRule{}, err
	}
	rule, err := m.store.GetRule(ctx, id)
	if err != nil {
		return models.AlertRule{}, err
	}
	m.publish(ctx, TopicRuleUpdated, rule)
	return rule, nil
}

// DeleteRule removes a rule.
func (m *Module) DeleteRule(ctx context.Context, id string) (models.AlertRule, error) {
	rule, err := m.store.GetRule(ctx, id)
	if err != nil {
		return models.AlertRule{}, err
	}
	if err := m.store.DeleteRule(ctx, id); err != nil {
		return models.AlertRule{}, err
	}
	m.publish(ctx, TopicRuleDeleted, RuleDeletedEvent{ID: rule.ID, Name: rule.Name})
	m.logger.Info("alert rule deleted", zap.String("rule_id", id))
	return rule, nil
}

// MarkRead marks one bell entry read and returns the new unread count.
func (m *Module) MarkRead(ctx context.Context, id string) (int, error) {
	changed, err := m.store.MarkRead(ctx, id)
	if err != nil {
		return 0, err
	}
	unread := m.refreshUnread(ctx)
	if changed {
		m.publish(ctx, TopicTriggeredRead, TriggeredReadEvent{IDs: []string{id}, Unread: unread})
	}
	return unread, nil
}

// MarkAllRead marks every bell entry read and returns how many changed.
func (m *Module) MarkAllRead(ctx context.Context) (int, error) {
	ids, err := m.store.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	unread := m.refreshUnread(ctx)
	if len(ids) > 0 {
		m.publish(ctx, TopicTriggeredRead, TriggeredReadEvent{IDs: ids, Unread: unread})
	}
	return len(ids), nil
}

// refreshUnread updates the unread gauge and returns the count.
func (m *Module) refreshUnread(ctx context.Context) int {
	n, err := m.store.UnreadCount(ctx)
	if err != nil {
		m.logger.Warn("failed to count unread alerts", zap.Error(err))
		return 0
	}
	unreadAlerts.Set(float64(n))
	return n
}

func (m *Module) publish(ctx context.Context, topic string, payload any) {
	if m.bus == nil {
		return
	}
	err := m.bus.Publish(ctx, plugin.Event{
		Topic:     topic,
		Source:    "alerts",
		Timestamp: m.now(),
		Payload:   payload,
	})
	if err != nil {
		m.logger.Warn("publish alert event", zap.String("topic", topic), zap.Error(err))
	}
}

// notify shows a toast in the caller's dashboard session, if it named one.
func (m *Module) notify(ctx context.Context, sessionID, message string, kind models.NotificationType) {
	if sessionID == "" {
		return
	}
	for _, n := range roles.Notifiers(m.plugins) {
		if err := n.Notify(ctx, sessionID, message, kind); err != nil {
			m.logger.Debug("toast not delivered", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
}
