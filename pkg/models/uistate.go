package models

import "time"

// View is a page of the dashboard.
type View string

const (
	ViewConsole          View = "console"
	ViewAlerts           View = "alerts"
	ViewSubscriberDetail View = "subscriber_detail"
	ViewDia              View = "dia"
	ViewPerseus          View = "perseus"
	ViewAtropos          View = "atropos"
	ViewAdoption         View = "adoption"
	ViewTasks            View = "tasks"
	ViewTaskDetail       View = "task_detail"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewConsole, ViewAlerts, ViewSubscriberDetail, ViewDia, ViewPerseus,
		ViewAtropos, ViewAdoption, ViewTasks, ViewTaskDetail:
		return true
	}
	return false
}

// ViewState is the current page plus the context it was opened with.
// Context only survives until the next view change.
type ViewState struct {
	Current       View   `json:"current" example:"console"`
	AlertMetricID string `json:"alert_metric_id,omitempty" example:"error_rate"`
	SubscriberID  string `json:"subscriber_id,omitempty" example:"hdfc"`
	TaskKey       string `json:"task_key,omitempty" example:"TASK-123"`
}

// DrilldownModal is the KPI detail modal. Data is nil while closed.
type DrilldownModal struct {
	IsOpen bool       `json:"is_open"`
	Data   *Drilldown `json:"data"`
}

// JobRunsModal is the batch job list modal and its filters.
type JobRunsModal struct {
	IsOpen        bool      `json:"is_open"`
	Status        JobStatus `json:"status,omitempty" example:"failed"`
	FailureReason string    `json:"failure_reason,omitempty" example:"Timeout"`
}

// NotificationType styles a toast.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Valid reports whether t is a known toast style.
func (t NotificationType) Valid() bool {
	return t == NotifySuccess || t == NotifyError
}

// Notification is a transient toast.
type Notification struct {
	ID        string           `json:"id" example:"6f1c..."`
	Message   string           `json:"message" example:"Alert rule created"`
	Type      NotificationType `json:"type" example:"success"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// SessionState is the full UI state of one dashboard session.
type SessionState struct {
	ID            string         `json:"id"`
	Revision      uint64         `json:"revision"`
	Selection     Selection      `json:"selection"`
	View          ViewState      `json:"view"`
	Drilldown     DrilldownModal `json:"drilldown"`
	JobRuns       JobRunsModal   `json:"job_runs"`
	Notifications []Notification `json:"notifications"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
