package metrics

import (
	"fmt"
	"slices"

	"github.com/HerbHall/olympushub/pkg/models"
)

const (
	maxContributors  = 5
	maxDrilldownLogs = 3
)

// placeholderMetric stands in for a subscriber missing from the tenant table.
var placeholderMetric = models.SubscriberMetric{NSM: "N/A", Health: 100}

// Drilldown returns the detail bundle behind a KPI card. A single selected
// subscriber gets its key metrics; anything else gets a shuffled roster of
// top contributors. The trend always spans 30 days.
func (e *Engine) Drilldown(metricID, metricTitle string, sel models.Selection) models.Drilldown {
	e.observe("drilldown")
	d := models.Drilldown{MetricID: metricID}

	sub, single := sel.SingleSubscriber()
	if single {
		d.MetricTitle = fmt.Sprintf("%s - %s", metricTitle, sub.Name)
		d.ContributorTitle = "Key Metrics for " + sub.Name
		d.Contributors = e.keyMetrics(sub, sel)
	} else {
		d.MetricTitle = metricTitle + " - Details"
		d.ContributorTitle = "Top Contributing Subscribers"
		d.Contributors = e.topContributors(sel)
	}

	monthly := sel
	monthly.TimeRange = models.Last30D
	d.TrendData = e.trend(monthly)

	logs := e.logs(sel)
	if single {
		logs = slices.DeleteFunc(logs, func(l models.LogEntry) bool { return l.Subscriber != sub.Name })
	}
	d.Logs = logs[:min(len(logs), maxDrilldownLogs)]
	return d
}

func (e *Engine) keyMetrics(sub models.Subscriber, sel models.Selection) []models.Contributor {
	m, ok := e.cat.SubscriberMetric(sub.ID)
	if !ok {
		m = placeholderMetric
	}

	health := "Healthy"
	if m.Health < 99.9 {
		health = "Needs Attention"
	}
	errRate := "Normal"
	if m.ErrorRate > 1 {
		errRate = "High"
	}
	lag := "Normal"
	if m.Lag > 500 {
		lag = "High"
	}
	topReason := "N/A"
	if reasons := e.failureReasons(sel); len(reasons) > 0 {
		topReason = reasons[0].Reason
	}

	return []models.Contributor{
		{Name: "NSM (MFT/Events)", Value: m.NSM},
		{Name: "Health", Value: fmt.Sprintf("%.2f%%", m.Health), Change: health},
		{Name: "Error Rate", Value: fmt.Sprintf("%.2f%%", m.ErrorRate), Change: errRate},
		{Name: "Queue Lag", Value: fmt.Sprintf("%d items", m.Lag), Change: lag},
		{Name: "Top Failure Reason", Value: topReason},
	}
}

// topContributors scales the roster by the filter factor, keeps only the
// selected subscribers when a concrete selection exists, then shuffles and
// truncates it.
func (e *Engine) topContributors(sel models.Selection) []models.Contributor {
	ff, _ := factors(sel)
	keep := e.subscriberNameFilter(sel)

	roster := e.cat.Contributors()
	narrowed := roster[:0:0]
	for _, c := range roster {
		if keep(c.Name) {
			narrowed = append(narrowed, c)
		}
	}
	if len(narrowed) > 0 {
		roster = narrowed
	}

	out := make([]models.Contributor, len(roster))
	for i, c := range roster {
		out[i] = models.Contributor{
			Name:   c.Name,
			Value:  fmt.Sprintf("%.0fK", c.Base*ff),
			Change: c.Change,
		}
	}
	e.src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:min(len(out), maxContributors)]
}
