package models

import "time"

// AlertableMetric is a metric alert rules can watch.
type AlertableMetric struct {
	ID   string `json:"id" yaml:"id" example:"error_rate"`
	Name string `json:"name" yaml:"name" example:"File App: Error Rate"`
	Unit string `json:"unit" yaml:"unit" example:"percent"`
}

// AlertCondition is how a rule compares the metric with its threshold.
type AlertCondition string

const (
	ConditionAbove   AlertCondition = "Is above"
	ConditionBelow   AlertCondition = "Is below"
	ConditionAnomaly AlertCondition = "Anomaly"
)

// Valid reports whether c is a known condition.
func (c AlertCondition) Valid() bool {
	switch c {
	case ConditionAbove, ConditionBelow, ConditionAnomaly:
		return true
	}
	return false
}

// AlertAction is a notification channel label. Nothing is delivered.
type AlertAction string

const (
	ActionPagerDuty AlertAction = "PagerDuty"
	ActionSlack     AlertAction = "Slack"
	ActionEmail     AlertAction = "Email"
	ActionWINTask   AlertAction = "WIN Task"
)

// Valid reports whether a is a known action.
func (a AlertAction) Valid() bool {
	switch a {
	case ActionPagerDuty, ActionSlack, ActionEmail, ActionWINTask:
		return true
	}
	return false
}

// AlertRule is a user-defined alert.
type AlertRule struct {
	ID        string         `json:"id" yaml:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string         `json:"name" yaml:"name" example:"High File App Error Rate"`
	MetricID  string         `json:"metric_id" yaml:"metric_id" example:"error_rate"`
	Condition AlertCondition `json:"condition" yaml:"condition" example:"Is above"`
	Threshold float64        `json:"threshold" yaml:"threshold" example:"5"`
	Duration  int            `json:"duration" yaml:"duration" example:"5"` // minutes
	Actions   []AlertAction  `json:"actions" yaml:"actions"`
	IsEnabled bool           `json:"is_enabled" yaml:"enabled" example:"true"`
	CreatedAt time.Time      `json:"created_at" yaml:"-"`
}

// TriggeredAlert is an entry in the notification bell.
type TriggeredAlert struct {
	ID             string    `json:"id" example:"alert_1"`
	Title          string    `json:"title" example:"High Error Rate (>5%)"`
	Severity       Status    `json:"severity" example:"red"`
	Timestamp      time.Time `json:"timestamp"`
	IsRead         bool      `json:"is_read"`
	SubscriberID   string    `json:"subscriber_id" example:"sparrow"`
	SubscriberName string    `json:"subscriber_name" example:"Sparrow"`
}
