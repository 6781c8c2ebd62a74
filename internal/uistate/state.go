// Package uistate holds the per-session dashboard state: the filter
// selection, the current view, the open modals and the toasts.
package uistate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/HerbHall/olympushub/internal/metrics"
	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/roles"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// ErrInvalidState is returned when a mutation request is malformed.
	ErrInvalidState = errors.New("invalid state change")
	// ErrUnknownNotification is returned when dismissing a toast that is gone.
	ErrUnknownNotification = errors.New("unknown notification")
)

var liveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "olympushub_state_sessions",
	Help: "Number of live dashboard sessions.",
})

func init() {
	prometheus.MustRegister(liveSessions)
}

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
	_ roles.Notifier       = (*Module)(nil)
)

// Module implements the state plugin.
type Module struct {
	logger    *zap.Logger
	cfg       Config
	cat       *catalog.Catalog
	engine    *metrics.Engine
	timeRange models.TimeRange
	sessions  *Manager
	bus       plugin.EventBus
	now       func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new state plugin instance.
func New() *Module {
	return &Module{now: time.Now}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:         "state",
		Version:      "0.1.0",
		Description:  "Per-session dashboard state and notifications",
		Dependencies: []string{"console"},
		Roles:        []string{roles.RoleNotification},
		APIVersion:   plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(_ context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.bus = deps.Bus
	m.cat = catalog.Default()

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal state config: %w", err)
		}
	}
	if m.cfg.MaxSessions < 1 {
		return fmt.Errorf("state max_sessions must be positive, got %d", m.cfg.MaxSessions)
	}
	if m.cfg.NotificationTTL <= 0 {
		return fmt.Errorf("state notification_ttl must be positive, got %s", m.cfg.NotificationTTL)
	}

	if dp, ok := roles.Derivation(deps.Plugins); ok && dp.Engine() != nil {
		m.engine = dp.Engine()
		m.timeRange = dp.DefaultTimeRange()
	} else {
		m.engine = metrics.NewEngine(m.cat)
		m.timeRange = models.Last24H
	}

	m.sessions = NewManager(m.cfg.MaxSessions, func() time.Time { return m.now() })
	m.logger.Info("state module initialized",
		zap.Int("max_sessions", m.cfg.MaxSessions),
		zap.Duration("notification_ttl", m.cfg.NotificationTTL),
	)
	return nil
}

// Start runs the toast janitor, which expires notifications and announces
// the change so open dashboards drop them without polling.
func (m *Module) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	interval := max(m.cfg.NotificationTTL/2, 100*time.Millisecond)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.expireNotifications(ctx)
			}
		}
	}()
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	return nil
}

// Health implements plugin.HealthChecker.
func (m *Module) Health(_ context.Context) plugin.HealthStatus {
	if m.sessions == nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: "not initialized"}
	}
	return plugin.HealthStatus{
		Status:  "healthy",
		Details: map[string]string{"sessions": fmt.Sprint(m.sessions.Len())},
	}
}

func (m *Module) expireNotifications(ctx context.Context) {
	for _, id := range m.sessions.PruneAll() {
		s, err := m.sessions.Get(id)
		if err != nil {
			continue
		}
		m.publish(ctx, TopicNotificationsChanged, id, s.Revision, "notifications", s.Notifications)
	}
}

// CreateSession starts a session on the default selection, evicting the
// least recently used session when the cap is reached.
func (m *Module) CreateSession(ctx context.Context) models.SessionState {
	s, evicted := m.sessions.Create(m.cat.Selection(nil, nil, "", m.timeRange))
	if evicted != "" {
		m.logger.Debug("session evicted", zap.String("session_id", evicted))
		m.publish(ctx, TopicSessionEvicted, evicted, 0, "session", nil)
	}
	liveSessions.Set(float64(m.sessions.Len()))
	m.publish(ctx, TopicSessionCreated, s.ID, s.Revision, "session", s)
	return s
}

// Session returns a snapshot of session id.
func (m *Module) Session(id string) (models.SessionState, error) {
	return m.sessions.Get(id)
}

// SelectionRequest is the body of PUT /sessions/{id}/selection. Omitted
// lists select everything; an omitted range keeps the current one.
type SelectionRequest struct {
	Subscribers []string `json:"subscribers" example:"hdfc"`
	Zones       []string `json:"zones" example:"apac-north-1"`
	TimeRange   string   `json:"time_range,omitempty" example:"7d"`
}

// SetSelection replaces the dashboard filter selection. A specific id next
// to the "all" sentinel wins over it.
func (m *Module) SetSelection(ctx context.Context, id string, req SelectionRequest) (models.SessionState, error) {
	if req.TimeRange != "" {
		if _, ok := models.ParseTimeRange(req.TimeRange); !ok {
			return models.SessionState{}, fmt.Errorf("%w: unknown time range %q", ErrInvalidState, req.TimeRange)
		}
	}
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.Selection = m.cat.Selection(withoutSentinel(req.Subscribers), withoutSentinel(req.Zones),
			req.TimeRange, s.Selection.TimeRange)
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicSelectionChanged, id, s.Revision, "selection", s.Selection)
	return s, nil
}

// withoutSentinel drops "all" when ids also names something specific.
func withoutSentinel(ids []string) []string {
	var specific []string
	for _, id := range ids {
		if id != models.AllID {
			specific = append(specific, id)
		}
	}
	if len(specific) == 0 {
		return ids
	}
	return specific
}

// ViewRequest is the body of PUT /sessions/{id}/view.
type ViewRequest struct {
	View          models.View `json:"view" example:"subscriber_detail"`
	AlertMetricID string      `json:"alert_metric_id,omitempty" example:"error_rate"`
	SubscriberID  string      `json:"subscriber_id,omitempty" example:"hdfc"`
	TaskKey       string      `json:"task_key,omitempty" example:"TASK-123"`
}

// SetView navigates to another page. Context that does not belong to the
// new view is dropped.
func (m *Module) SetView(ctx context.Context, id string, req ViewRequest) (models.SessionState, error) {
	view, err := m.viewState(req)
	if err != nil {
		return models.SessionState{}, err
	}
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.View = view
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicViewChanged, id, s.Revision, "view", s.View)
	return s, nil
}

func (m *Module) viewState(req ViewRequest) (models.ViewState, error) {
	if !req.View.Valid() {
		return models.ViewState{}, fmt.Errorf("%w: unknown view %q", ErrInvalidState, req.View)
	}
	v := models.ViewState{Current: req.View}
	switch req.View {
	case models.ViewAlerts:
		if req.AlertMetricID != "" && !m.cat.IsAlertable(req.AlertMetricID) {
			return v, fmt.Errorf("%w: metric %q cannot be alerted on", ErrInvalidState, req.AlertMetricID)
		}
		v.AlertMetricID = req.AlertMetricID
	case models.ViewSubscriberDetail:
		if _, ok := m.cat.Subscriber(req.SubscriberID); !ok || req.SubscriberID == models.AllID {
			return v, fmt.Errorf("%w: subscriber_detail needs a known subscriber, got %q", ErrInvalidState, req.SubscriberID)
		}
		v.SubscriberID = req.SubscriberID
	case models.ViewTaskDetail:
		if strings.TrimSpace(req.TaskKey) == "" {
			return v, fmt.Errorf("%w: task_detail needs a task key", ErrInvalidState)
		}
		v.TaskKey = strings.TrimSpace(req.TaskKey)
	}
	return v, nil
}

// DrilldownRequest is the body of POST /sessions/{id}/drilldown.
type DrilldownRequest struct {
	MetricID string `json:"metric_id" example:"files_processed"`
	Title    string `json:"title,omitempty" example:"Number of Files Processed"`
}

// OpenDrilldown derives the drilldown of a KPI card for the session's
// selection and opens the modal with it.
func (m *Module) OpenDrilldown(ctx context.Context, id string, req DrilldownRequest) (models.SessionState, error) {
	if strings.TrimSpace(req.MetricID) == "" {
		return models.SessionState{}, fmt.Errorf("%w: metric_id is required", ErrInvalidState)
	}
	title := req.Title
	if title == "" {
		title = req.MetricID
	}
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		d := m.engine.Drilldown(req.MetricID, title, s.Selection)
		s.Drilldown = models.DrilldownModal{IsOpen: true, Data: &d}
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicDrilldownChanged, id, s.Revision, "drilldown", s.Drilldown)
	return s, nil
}

// CloseDrilldown closes the modal and clears its data.
func (m *Module) CloseDrilldown(ctx context.Context, id string) (models.SessionState, error) {
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.Drilldown = models.DrilldownModal{}
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicDrilldownChanged, id, s.Revision, "drilldown", s.Drilldown)
	return s, nil
}

// JobRunsRequest is the body of POST /sessions/{id}/job-runs. A failure
// reason implies the failed status.
type JobRunsRequest struct {
	Status        models.JobStatus `json:"status,omitempty" example:"failed"`
	FailureReason string           `json:"failure_reason,omitempty" example:"Schema validation failed"`
}

// OpenJobRuns opens the job runs modal with its filters.
func (m *Module) OpenJobRuns(ctx context.Context, id string, req JobRunsRequest) (models.SessionState, error) {
	switch {
	case req.FailureReason != "" && req.Status != "" && req.Status != models.JobFailed:
		return models.SessionState{}, fmt.Errorf("%w: a failure reason only applies to failed runs", ErrInvalidState)
	case req.FailureReason != "":
		req.Status = models.JobFailed
	case !req.Status.Valid():
		return models.SessionState{}, fmt.Errorf("%w: status must be succeeded or failed", ErrInvalidState)
	}
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.JobRuns = models.JobRunsModal{IsOpen: true, Status: req.Status, FailureReason: req.FailureReason}
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicJobRunsChanged, id, s.Revision, "job_runs", s.JobRuns)
	return s, nil
}

// CloseJobRuns closes the modal and clears its filters.
func (m *Module) CloseJobRuns(ctx context.Context, id string) (models.SessionState, error) {
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.JobRuns = models.JobRunsModal{}
		return nil
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicJobRunsChanged, id, s.Revision, "job_runs", s.JobRuns)
	return s, nil
}

// NotificationRequest is the body of POST /sessions/{id}/notifications.
type NotificationRequest struct {
	Message string                  `json:"message" example:"Alert rule created"`
	Type    models.NotificationType `json:"type" example:"success"`
}

// PushNotification shows a toast that expires after the configured TTL.
func (m *Module) PushNotification(ctx context.Context, id string, req NotificationRequest) (models.Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return models.Notification{}, fmt.Errorf("%w: message is required", ErrInvalidState)
	}
	if req.Type == "" {
		req.Type = models.NotifySuccess
	}
	if !req.Type.Valid() {
		return models.Notification{}, fmt.Errorf("%w: unknown notification type %q", ErrInvalidState, req.Type)
	}
	now := m.now()
	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   req.Message,
		Type:      req.Type,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.NotificationTTL),
	}
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		s.Notifications = append(s.Notifications, n)
		return nil
	})
	if err != nil {
		return models.Notification{}, err
	}
	m.publish(ctx, TopicNotificationsChanged, id, s.Revision, "notifications", s.Notifications)
	return n, nil
}

// DismissNotification removes a toast before it expires.
func (m *Module) DismissNotification(ctx context.Context, id, notificationID string) (models.SessionState, error) {
	s, err := m.sessions.Update(id, func(s *models.SessionState) error {
		for i, n := range s.Notifications {
			if n.ID == notificationID {
				s.Notifications = append(s.Notifications[:i], s.Notifications[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("notification %s: %w", notificationID, ErrUnknownNotification)
	})
	if err != nil {
		return s, err
	}
	m.publish(ctx, TopicNotificationsChanged, id, s.Revision, "notifications", s.Notifications)
	return s, nil
}

// Notify implements roles.Notifier.
func (m *Module) Notify(ctx context.Context, sessionID, message string, kind models.NotificationType) error {
	_, err := m.PushNotification(ctx, sessionID, NotificationRequest{Message: message, Type: kind})
	return err
}

func (m *Module) publish(ctx context.Context, topic, sessionID string, rev uint64, slice string, value any) {
	if m.bus == nil {
		return
	}
	err := m.bus.Publish(ctx, plugin.Event{
		Topic:     topic,
		Source:    "state",
		Timestamp: m.now(),
		Payload:   ChangedEvent{SessionID: sessionID, Revision: rev, Slice: slice, Value: value},
	})
	if err != nil {
		m.logger.Warn("publish state event", zap.String("topic", topic), zap.Error(err))
	}
}
