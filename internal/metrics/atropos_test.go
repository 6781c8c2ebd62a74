package metrics

import (
	"reflect"
	"testing"

	"github.com/HerbHall/olympushub/pkg/models"
)

func TestTopicMetrics_DeterministicPerID(t *testing.T) {
	sel := selection(models.Last24H, "hdfc")
	a := newTestEngine(t, 1).TopicMetrics("topic_2", sel)
	b := newTestEngine(t, 2).TopicMetrics("topic_2", sel)
	if !reflect.DeepEqual(a, b) {
		t.Error("topic metrics depend on the engine source")
	}

	c := newTestEngine(t, 1).TopicMetrics("topic_3", sel)
	if reflect.DeepEqual(a.REDMetrics, c.REDMetrics) {
		t.Error("different topics produced identical series")
	}
}

func TestTopicMetrics_Shape(t *testing.T) {
	tm := newTestEngine(t, 1).TopicMetrics("topic_1", selection(models.Last24H))
	if tm.Name != "_tenant_1_bot-evaluation.switch-authorization" {
		t.Errorf("Name = %q", tm.Name)
	}
	if len(tm.REDMetrics) != 20 {
		t.Fatalf("RED points = %d, want 20", len(tm.REDMetrics))
	}
	if tm.REDMetrics[0].Time != "14:05" || tm.REDMetrics[19].Time != "14:24" {
		t.Errorf("time labels = %q..%q, want 14:05..14:24", tm.REDMetrics[0].Time, tm.REDMetrics[19].Time)
	}
	for _, p := range tm.REDMetrics {
		if p.Success < 600 || p.Success >= 700 || p.AvgLatency < 400 || p.AvgLatency >= 700 {
			t.Errorf("point out of envelope: %+v", p)
		}
	}
	if s := tm.MessageMetrics.P99Latency.Status; s != models.StatusRed && s != models.StatusAmber {
		t.Errorf("p99 status = %s", s)
	}
}

func TestTopicMetrics_UnknownID(t *testing.T) {
	tm := newTestEngine(t, 1).TopicMetrics("topic_404", selection(models.Last24H))
	if tm.ID != "topic_404" || tm.Name != "_tenant_1_bot-evaluation.switch-authorization" {
		t.Errorf("unknown topic = (%q, %q)", tm.ID, tm.Name)
	}
}

func TestSubscriptionMetrics(t *testing.T) {
	e := newTestEngine(t, 1)
	sel := selection(models.Last24H)
	sm := e.SubscriptionMetrics("sub_2", sel)

	if sm.Name != "subscription_2_AUDIT_LOG_PROCESSOR" {
		t.Errorf("Name = %q", sm.Name)
	}
	if len(sm.SLOs) != 5 || sm.SLOs[0].Name != "Pipeline Availability" || sm.SLOs[4].Name != "Queue Depth" {
		t.Errorf("SLOs = %+v", sm.SLOs)
	}
	if len(sm.QueueDepthMetrics) != 20 || sm.QueueDepthMetrics[0].Name != "23:30" || sm.QueueDepthMetrics[19].Name != "23:49" {
		t.Errorf("queue depth labels = %+v", sm.QueueDepthMetrics)
	}
	if sm.DLQAge.Value != "-" || sm.MessageMetrics.DroppedEvents.Value != "-" {
		t.Errorf("placeholders = %+v / %+v", sm.DLQAge, sm.MessageMetrics.DroppedEvents)
	}
	if !reflect.DeepEqual(sm, e.SubscriptionMetrics("sub_2", sel)) {
		t.Error("subscription metrics not deterministic")
	}
}
