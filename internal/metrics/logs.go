package metrics

import (
	"slices"
	"strings"

	"github.com/HerbHall/olympushub/pkg/models"
)

// Logs returns the log lines of the selected subscribers. A zone selection
// keeps the subscribers hosted in those zones.
func (e *Engine) Logs(sel models.Selection) []models.LogEntry {
	e.observe("logs")
	return e.logs(sel)
}

func (e *Engine) logs(sel models.Selection) []models.LogEntry {
	keep := e.subscriberNameFilter(sel)
	return slices.DeleteFunc(e.cat.Logs(), func(l models.LogEntry) bool {
		return !keep(l.Subscriber)
	})
}

// ModuleLogs returns Logs restricted to lines tagged for module. Tags are
// compared case-insensitively, so "[Perseus]" matches PERSEUS.
func (e *Engine) ModuleLogs(module models.Module, sel models.Selection) []models.LogEntry {
	e.observe("module_logs")
	tag := strings.ToUpper(module.Tag())
	return slices.DeleteFunc(e.logs(sel), func(l models.LogEntry) bool {
		return !strings.HasPrefix(strings.ToUpper(l.Message), tag)
	})
}

// JobRuns returns the batch runs with status. A non-empty failureReason
// implies status failed and must match exactly.
func (e *Engine) JobRuns(sel models.Selection, status models.JobStatus, failureReason string) []models.JobRun {
	e.observe("job_runs")
	if failureReason != "" {
		status = models.JobFailed
	}
	keep := e.subscriberNameFilter(sel)
	return slices.DeleteFunc(e.cat.JobRuns(), func(r models.JobRun) bool {
		if r.Status != status {
			return true
		}
		if failureReason != "" && r.FailureReason != failureReason {
			return true
		}
		return !keep(r.SubscriberName)
	})
}

// Traces returns the recent traces. Traces carry no subscriber, so the
// selection does not narrow them.
func (e *Engine) Traces(_ models.Selection) []models.Trace {
	e.observe("traces")
	return e.cat.Traces()
}

// SubscriberMetrics returns the tenant table rows of the selection.
func (e *Engine) SubscriberMetrics(sel models.Selection) []models.SubscriberMetric {
	e.observe("subscriber_metrics")
	zoneIDs := e.zoneSubscriberIDs(sel)
	allSubs := models.IsAllSubscribers(sel.Subscribers)
	subIDs := sel.SubscriberIDs()
	return slices.DeleteFunc(e.cat.SubscriberMetrics(), func(m models.SubscriberMetric) bool {
		if zoneIDs != nil && !slices.Contains(zoneIDs, m.SubscriberID) {
			return true
		}
		return !allSubs && !slices.Contains(subIDs, m.SubscriberID)
	})
}

// subscriberNameFilter reports whether a subscriber display name passes
// both the zone and the subscriber side of sel.
func (e *Engine) subscriberNameFilter(sel models.Selection) func(name string) bool {
	var inZones []string
	if !models.IsAllZones(sel.Zones) {
		inZones = []string{}
		for _, s := range e.cat.SubscribersInZones(sel.ZoneIDs()) {
			inZones = append(inZones, s.Name)
		}
	}
	var selected []string
	if !models.IsAllSubscribers(sel.Subscribers) {
		for _, s := range sel.Subscribers {
			selected = append(selected, s.Name)
		}
	}
	return func(name string) bool {
		if inZones != nil && !slices.Contains(inZones, name) {
			return false
		}
		return selected == nil || slices.Contains(selected, name)
	}
}

// zoneSubscriberIDs returns the ids of subscribers in the selected zones,
// or nil when every zone is selected.
func (e *Engine) zoneSubscriberIDs(sel models.Selection) []string {
	if models.IsAllZones(sel.Zones) {
		return nil
	}
	ids := []string{}
	for _, s := range e.cat.SubscribersInZones(sel.ZoneIDs()) {
		ids = append(ids, s.ID)
	}
	return ids
}
