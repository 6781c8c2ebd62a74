// Package catalog is the static reference data behind the derivation
// engine: zones, subscribers, per-subscriber metrics, logs, job runs,
// Atropos topics, alert fixtures and T-sheet baselines.
package catalog

import (
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
)

// Contributor is a drilldown roster entry. Base is in thousands.
type Contributor struct {
	Name   string  `yaml:"name"`
	Base   float64 `yaml:"base"`
	Change string  `yaml:"change"`
}

// TriggeredAlertSeed is a notification-bell entry fixed relative to startup.
type TriggeredAlertSeed struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	Severity     models.Status `yaml:"severity"`
	Age          time.Duration `yaml:"age"`
	Read         bool          `yaml:"read"`
	SubscriberID string        `yaml:"subscriber_id"`
}

// TSheetSpec is the baseline for one application T-sheet. Columns are keyed
// by time range ("1h", "24h", "7d", "30d") and TillDateColumn.
type TSheetSpec struct {
	Metrics []models.TSheetMetric        `yaml:"metrics"`
	Columns map[string]map[string]string `yaml:"columns"`
}

// TillDateColumn keys the running-total T-sheet column.
const TillDateColumn = "till_date"

// document mirrors catalog.yaml.
type document struct {
	Zones              []models.Zone               `yaml:"zones"`
	Subscribers        []models.Subscriber         `yaml:"subscribers"`
	FileAppSubscribers []string                    `yaml:"file_app_subscribers"`
	SubscriberMetrics  []models.SubscriberMetric   `yaml:"subscriber_metrics"`
	Logs               []models.LogEntry           `yaml:"logs"`
	JobRuns            []models.JobRun             `yaml:"job_runs"`
	Traces             []models.Trace              `yaml:"traces"`
	FailureReasons     []models.FailureReason      `yaml:"failure_reasons"`
	LatencyBuckets     []models.LatencyBucket      `yaml:"latency_buckets"`
	Features           []models.FeatureAdoption    `yaml:"features"`
	Contributors       []Contributor               `yaml:"contributors"`
	Topics             []models.Topic              `yaml:"topics"`
	Subscriptions      []models.TopicSubscription  `yaml:"subscriptions"`
	AlertableMetrics   []models.AlertableMetric    `yaml:"alertable_metrics"`
	AlertRules         []models.AlertRule          `yaml:"alert_rules"`
	TriggeredAlerts    []TriggeredAlertSeed        `yaml:"triggered_alerts"`
	Tasks              []models.Task               `yaml:"tasks"`
	TSheets            map[string]TSheetSpec       `yaml:"tsheets"`
	ClusterKeys        []models.ClusterKey         `yaml:"cluster_keys"`
}
