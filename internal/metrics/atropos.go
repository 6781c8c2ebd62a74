package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
)

const redPoints = 20

// Topics returns the Atropos topics.
func (e *Engine) Topics() []models.Topic {
	return e.cat.Topics()
}

// Subscriptions returns the Atropos topic subscriptions.
func (e *Engine) Subscriptions() []models.TopicSubscription {
	return e.cat.Subscriptions()
}

// TopicMetrics returns the drilldown for a topic. The series is a pure
// function of the id and the selection; time labels come from the clock.
// An unknown id borrows the first topic's name.
func (e *Engine) TopicMetrics(id string, sel models.Selection) models.TopicMetrics {
	e.observe("topic_metrics")
	ff, _ := factors(sel)
	sd := SafeDivisor(ff)
	seq := newSinSequence(id)

	name := ""
	if t, ok := e.cat.Topic(id); ok {
		name = t.Name
	} else if topics := e.cat.Topics(); len(topics) > 0 {
		name = topics[0].Name
	}

	tm := models.TopicMetrics{
		ID:   id,
		Name: name,
		LatencySLO: models.SLO{
			Name:   "Latency",
			Value:  fmt.Sprintf("%.2f%%", 99.5+seq.next()*0.5),
			Status: models.StatusGreen,
		},
	}

	now := e.now()
	tm.REDMetrics = make([]models.REDPoint, redPoints)
	for i := range tm.REDMetrics {
		tm.REDMetrics[i] = models.REDPoint{
			Time:       minuteLabel(now, redPoints-i),
			Success:    int(math.Floor((600 + seq.next()*100) * ff)),
			Failed:     int(math.Floor((2 + seq.next()*15) / sd)),
			AvgLatency: int(math.Floor(400 + seq.next()*300)),
		}
	}

	tm.MessageMetrics.DelayedEvents = models.SLO{
		Name:   "Delayed Events",
		Value:  fmt.Sprint(int(math.Floor(seq.next() * 5))),
		Status: models.StatusGreen,
	}
	p95 := 1.2 + seq.next()*0.5
	tm.MessageMetrics.P95Latency = models.SLO{Name: "Latency P95", Value: fmt.Sprintf("%.2fs", p95), Status: models.StatusGreen}
	if seq.next() > 0.5 {
		tm.MessageMetrics.P95Latency.Status = models.StatusAmber
	}
	p99 := 1.8 + seq.next()*0.5
	tm.MessageMetrics.P99Latency = models.SLO{Name: "Latency P99", Value: fmt.Sprintf("%.2fs", p99), Status: models.StatusAmber}
	if seq.next() > 0.3 {
		tm.MessageMetrics.P99Latency.Status = models.StatusRed
	}
	return tm
}

// SubscriptionMetrics returns the drilldown for a topic subscription. An
// unknown id borrows the first subscription's name.
func (e *Engine) SubscriptionMetrics(id string, sel models.Selection) models.SubscriptionMetrics {
	e.observe("subscription_metrics")
	ff, _ := factors(sel)
	seq := newSinSequence(id)

	name := ""
	if s, ok := e.cat.Subscription(id); ok {
		name = s.Name
	} else if subs := e.cat.Subscriptions(); len(subs) > 0 {
		name = subs[0].Name
	}

	green := func(label, value string) models.SLO {
		return models.SLO{Name: label, Value: value, Status: models.StatusGreen}
	}
	sm := models.SubscriptionMetrics{
		ID:   id,
		Name: name,
		SLOs: []models.SLO{
			green("Pipeline Availability", fmt.Sprintf("%.2f%%", 99.9+seq.next()*0.1)),
			green("Subscriber Availability", fmt.Sprintf("%.2f%%", 99.9+seq.next()*0.1)),
			green("Subscriber Latency", fmt.Sprintf("%.2fms", 20+seq.next()*10)),
			green("Pipeline Latency", fmt.Sprintf("%.2fms", 0.7+seq.next()*0.3)),
			green("Queue Depth", fmt.Sprint(int(math.Floor(seq.next()*50)))),
		},
	}

	now := e.now()
	sm.REDMetrics = make([]models.REDPoint, redPoints)
	for i := range sm.REDMetrics {
		sm.REDMetrics[i] = models.REDPoint{
			Time:       minuteLabel(now, redPoints-i),
			Success:    int(math.Floor((1400 + seq.next()*300) * ff)),
			Filtered:   int(math.Floor((150 + seq.next()*100) * ff)),
			AvgLatency: int(math.Floor(15 + seq.next()*15)),
		}
	}

	sm.QueueDepthMetrics = make([]models.Point, redPoints)
	for i := range sm.QueueDepthMetrics {
		sm.QueueDepthMetrics[i] = models.Point{
			Name:  fmt.Sprintf("23:%d", 30+i),
			Value: math.Floor(10 + seq.next()*80),
		}
	}

	dlq := "-"
	if seq.next() > 0.9 {
		dlq = fmt.Sprint(int(math.Floor(seq.next() * 5)))
	}
	sm.DLQDepth = models.SLO{Name: "DLQ Depth", Value: dlq, Status: models.StatusNeutral}
	sm.DLQAge = models.SLO{Name: "DLQ Age", Value: "-", Status: models.StatusNeutral}

	events := func(base float64) string {
		return FormatGrouped(base * (0.8 + seq.next()*0.4) * ff)
	}
	sm.MessageMetrics = models.SubscriptionMessageMetrics{
		TotalEvents:    models.SLO{Name: "Total Events", Value: events(50000), Status: models.StatusNeutral},
		FilteredEvents: models.SLO{Name: "Filtered Out Events", Value: events(45000), Status: models.StatusNeutral},
		DroppedEvents:  models.SLO{Name: "Dropped Events", Value: "-", Status: models.StatusNeutral},
		SuccessEvents:  models.SLO{Name: "Success Events", Value: events(5000), Status: models.StatusGreen},
	}
	return sm
}

// minuteLabel formats now minus ago minutes as "15:04".
func minuteLabel(now time.Time, ago int) string {
	return now.Add(-time.Duration(ago) * time.Minute).Format("15:04")
}
