package uistate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HerbHall/olympushub/internal/config"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/plugin/plugintest"
	"github.com/HerbHall/olympushub/pkg/roles"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func TestPluginContract(t *testing.T) {
	plugintest.TestPluginContract(t, func() plugin.Plugin { return New() })
}

func newTestModule(t *testing.T) (*Module, *plugintest.RecordingBus, *fakeClock) {
	t.Helper()
	clock := newClock()
	bus := &plugintest.RecordingBus{}
	m := New()
	m.now = clock.now
	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop(), Bus: bus}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return m, bus, clock
}

// session creates a session and forgets the creation event.
func session(t *testing.T, m *Module, bus *plugintest.RecordingBus) string {
	t.Helper()
	s := m.CreateSession(context.Background())
	bus.Reset()
	return s.ID
}

func TestInit_Config(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr bool
	}{
		{"defaults", nil, false},
		{"duration string", map[string]any{"notification_ttl": "2s", "max_sessions": 3}, false},
		{"zero sessions", map[string]any{"max_sessions": 0}, true},
		{"zero ttl", map[string]any{"notification_ttl": "0s"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			err := New().Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop(), Config: config.New(v)})
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSession(t *testing.T) {
	m, bus, _ := newTestModule(t)
	s := m.CreateSession(context.Background())

	if s.Selection.TimeRange != models.Last24H {
		t.Errorf("time range = %q, want 24h", s.Selection.TimeRange)
	}
	if !models.IsAllSubscribers(s.Selection.Subscribers) || !models.IsAllZones(s.Selection.Zones) {
		t.Errorf("selection = %+v, want all", s.Selection)
	}
	if topics := bus.Topics(); len(topics) != 1 || topics[0] != TopicSessionCreated {
		t.Errorf("topics = %v", topics)
	}
	if got := testutil.ToFloat64(liveSessions); got != 1 {
		t.Errorf("session gauge = %v, want 1", got)
	}
}

func TestCreateSession_EvictionEvent(t *testing.T) {
	clock := newClock()
	bus := &plugintest.RecordingBus{}
	v := viper.New()
	v.Set("max_sessions", 1)
	m := New()
	m.now = clock.now
	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop(), Bus: bus, Config: config.New(v)}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	first := m.CreateSession(context.Background())
	clock.advance(time.Second)
	bus.Reset()
	m.CreateSession(context.Background())

	ev := bus.Events()
	if len(ev) != 2 || ev[0].Topic != TopicSessionEvicted {
		t.Fatalf("topics = %v", bus.Topics())
	}
	if ev[0].Payload.(ChangedEvent).SessionID != first.ID {
		t.Errorf("evicted payload = %+v", ev[0].Payload)
	}
}

func TestSetSelection(t *testing.T) {
	m, bus, _ := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	s, err := m.SetSelection(ctx, id, SelectionRequest{
		Subscribers: []string{"all", "hdfc", "bogus"},
		TimeRange:   "7d",
	})
	if err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if ids := s.Selection.SubscriberIDs(); len(ids) != 1 || ids[0] != "hdfc" {
		t.Errorf("subscribers = %v, want [hdfc]", ids)
	}
	if s.Selection.TimeRange != models.Last7D || !models.IsAllZones(s.Selection.Zones) {
		t.Errorf("selection = %+v", s.Selection)
	}

	// An omitted range keeps the current one.
	s, _ = m.SetSelection(ctx, id, SelectionRequest{Zones: []string{"eu-west-1"}})
	if s.Selection.TimeRange != models.Last7D || !models.IsAllSubscribers(s.Selection.Subscribers) {
		t.Errorf("selection after zone change = %+v", s.Selection)
	}

	if _, err := m.SetSelection(ctx, id, SelectionRequest{TimeRange: "90d"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("bad range err = %v", err)
	}
	if _, err := m.SetSelection(ctx, "nope", SelectionRequest{}); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("unknown session err = %v", err)
	}

	topics := bus.Topics()
	if len(topics) != 2 || topics[0] != TopicSelectionChanged || topics[1] != TopicSelectionChanged {
		t.Errorf("topics = %v, want two selection changes", topics)
	}
}

func TestSetView_DropsStaleContext(t *testing.T) {
	m, bus, _ := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	s, err := m.SetView(ctx, id, ViewRequest{View: models.ViewAlerts, AlertMetricID: "error_rate", SubscriberID: "hdfc"})
	if err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if s.View.AlertMetricID != "error_rate" || s.View.SubscriberID != "" {
		t.Errorf("alerts view = %+v", s.View)
	}

	s, _ = m.SetView(ctx, id, ViewRequest{View: models.ViewSubscriberDetail, SubscriberID: "hdfc"})
	if s.View.AlertMetricID != "" || s.View.SubscriberID != "hdfc" {
		t.Errorf("subscriber view = %+v", s.View)
	}

	s, _ = m.SetView(ctx, id, ViewRequest{View: models.ViewDia})
	if s.View != (models.ViewState{Current: models.ViewDia}) {
		t.Errorf("dia view kept context: %+v", s.View)
	}
}

func TestSetView_Invalid(t *testing.T) {
	m, bus, _ := newTestModule(t)
	id := session(t, m, bus)

	tests := []struct {
		name string
		req  ViewRequest
	}{
		{"unknown view", ViewRequest{View: "settings"}},
		{"alert on unknown metric", ViewRequest{View: models.ViewAlerts, AlertMetricID: "cpu"}},
		{"subscriber detail without subscriber", ViewRequest{View: models.ViewSubscriberDetail}},
		{"subscriber detail for all", ViewRequest{View: models.ViewSubscriberDetail, SubscriberID: "all"}},
		{"task detail without key", ViewRequest{View: models.ViewTaskDetail, TaskKey: " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.SetView(context.Background(), id, tt.req); !errors.Is(err, ErrInvalidState) {
				t.Errorf("err = %v, want ErrInvalidState", err)
			}
		})
	}
	if len(bus.Events()) != 0 {
		t.Errorf("rejected views published %v", bus.Topics())
	}
}

func TestDrilldown_OpenClose(t *testing.T) {
	m, bus, _ := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	if _, err := m.SetSelection(ctx, id, SelectionRequest{Subscribers: []string{"hdfc"}}); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	s, err := m.OpenDrilldown(ctx, id, DrilldownRequest{MetricID: "error_rate", Title: "Error Rate"})
	if err != nil {
		t.Fatalf("OpenDrilldown: %v", err)
	}
	if !s.Drilldown.IsOpen || s.Drilldown.Data == nil {
		t.Fatalf("drilldown = %+v", s.Drilldown)
	}
	if s.Drilldown.Data.MetricTitle != "Error Rate - HDFC" || len(s.Drilldown.Data.TrendData) != 30 {
		t.Errorf("drilldown data = %q, %d points", s.Drilldown.Data.MetricTitle, len(s.Drilldown.Data.TrendData))
	}

	s, err = m.CloseDrilldown(ctx, id)
	if err != nil {
		t.Fatalf("CloseDrilldown: %v", err)
	}
	if s.Drilldown.IsOpen || s.Drilldown.Data != nil {
		t.Errorf("closed drilldown = %+v", s.Drilldown)
	}

	if _, err := m.OpenDrilldown(ctx, id, DrilldownRequest{}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("missing metric err = %v", err)
	}

	want := []string{TopicSelectionChanged, TopicDrilldownChanged, TopicDrilldownChanged}
	if got := bus.Topics(); !equal(got, want) {
		t.Errorf("topics = %v, want %v", got, want)
	}
}

func TestJobRuns_OpenClose(t *testing.T) {
	m, bus, _ := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	s, err := m.OpenJobRuns(ctx, id, JobRunsRequest{FailureReason: "Timeout"})
	if err != nil {
		t.Fatalf("OpenJobRuns: %v", err)
	}
	if s.JobRuns != (models.JobRunsModal{IsOpen: true, Status: models.JobFailed, FailureReason: "Timeout"}) {
		t.Errorf("job runs = %+v", s.JobRuns)
	}

	s, _ = m.CloseJobRuns(ctx, id)
	if s.JobRuns != (models.JobRunsModal{}) {
		t.Errorf("closed job runs kept filters: %+v", s.JobRuns)
	}

	for _, req := range []JobRunsRequest{{}, {Status: "paused"}, {Status: models.JobSucceeded, FailureReason: "Timeout"}} {
		if _, err := m.OpenJobRuns(ctx, id, req); !errors.Is(err, ErrInvalidState) {
			t.Errorf("OpenJobRuns(%+v) err = %v", req, err)
		}
	}
	if n := len(bus.Events()); n != 2 {
		t.Errorf("%d events, want 2", n)
	}
}

func TestNotifications(t *testing.T) {
	m, bus, clock := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	n, err := m.PushNotification(ctx, id, NotificationRequest{Message: "Saved"})
	if err != nil {
		t.Fatalf("PushNotification: %v", err)
	}
	if n.Type != models.NotifySuccess || !n.ExpiresAt.Equal(clock.now().Add(5*time.Second)) {
		t.Errorf("notification = %+v", n)
	}
	second, _ := m.PushNotification(ctx, id, NotificationRequest{Message: "Oops", Type: models.NotifyError})

	s, err := m.DismissNotification(ctx, id, n.ID)
	if err != nil {
		t.Fatalf("DismissNotification: %v", err)
	}
	if len(s.Notifications) != 1 || s.Notifications[0].ID != second.ID {
		t.Errorf("after dismiss = %+v", s.Notifications)
	}
	if _, err := m.DismissNotification(ctx, id, n.ID); !errors.Is(err, ErrUnknownNotification) {
		t.Errorf("second dismiss err = %v", err)
	}

	clock.advance(6 * time.Second)
	s, _ = m.Session(id)
	if len(s.Notifications) != 0 {
		t.Errorf("expired toast still listed: %+v", s.Notifications)
	}

	for _, req := range []NotificationRequest{{Message: " "}, {Message: "x", Type: "warning"}} {
		if _, err := m.PushNotification(ctx, id, req); !errors.Is(err, ErrInvalidState) {
			t.Errorf("PushNotification(%+v) err = %v", req, err)
		}
	}
	if n := len(bus.Events()); n != 3 {
		t.Errorf("%d events, want 3", n)
	}
}

func TestExpireNotifications_Publishes(t *testing.T) {
	m, bus, clock := newTestModule(t)
	ctx := context.Background()
	id := session(t, m, bus)

	if _, err := m.PushNotification(ctx, id, NotificationRequest{Message: "Saved"}); err != nil {
		t.Fatalf("PushNotification: %v", err)
	}
	bus.Reset()
	clock.advance(10 * time.Second)
	m.expireNotifications(ctx)

	ev := bus.Events()
	if len(ev) != 1 || ev[0].Topic != TopicNotificationsChanged {
		t.Fatalf("topics = %v", bus.Topics())
	}
	if p := ev[0].Payload.(ChangedEvent); p.SessionID != id || p.EventSession() != id {
		t.Errorf("payload = %+v", p)
	}
}

func TestNotify_FillsNotifierRole(t *testing.T) {
	m, bus, _ := newTestModule(t)
	id := session(t, m, bus)

	var n roles.Notifier = m
	if err := n.Notify(context.Background(), id, "Task TASK-1 updated.", models.NotifySuccess); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := n.Notify(context.Background(), "gone", "x", models.NotifySuccess); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Notify(unknown) err = %v", err)
	}
	s, _ := m.Session(id)
	if len(s.Notifications) != 1 || s.Notifications[0].Message != "Task TASK-1 updated." {
		t.Errorf("notifications = %+v", s.Notifications)
	}
}

func TestStartStop_Janitor(t *testing.T) {
	m, _, _ := newTestModule(t)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	done := make(chan struct{})
	go func() {
		_ = m.Stop(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
