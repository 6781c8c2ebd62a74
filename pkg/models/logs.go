package models

// Severity is a log level.
type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// LogEntry is one platform log line. Message starts with a module tag
// such as "[DIA] ".
type LogEntry struct {
	ID         string   `json:"id" yaml:"id" example:"1"`
	Timestamp  string   `json:"timestamp" yaml:"timestamp" example:"2023-10-27T10:00:01Z"`
	Severity   Severity `json:"severity" yaml:"severity" example:"ERROR"`
	Message    string   `json:"message" yaml:"message" example:"[DIA] Failed to process file: connection refused by peer."`
	Subscriber string   `json:"subscriber" yaml:"subscriber" example:"HDFC"`
	TraceID    string   `json:"trace_id" yaml:"trace_id" example:"a1b2c3d4"`
}

// JobStatus is the outcome of a batch job run.
type JobStatus string

const (
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobSucceeded || s == JobFailed
}

// JobRun is one execution of a batch job.
type JobRun struct {
	ID             string    `json:"id" yaml:"id" example:"job_run_2"`
	Name           string    `json:"name" yaml:"name" example:"data-ingest-hdfc"`
	SubscriberName string    `json:"subscriber_name" yaml:"subscriber_name" example:"HDFC"`
	StartTime      string    `json:"start_time" yaml:"start_time" example:"2023-10-27T08:45:10Z"`
	Duration       string    `json:"duration" yaml:"duration" example:"1m 5s"`
	Status         JobStatus `json:"status" yaml:"status" example:"failed"`
	FailureReason  string    `json:"failure_reason,omitempty" yaml:"failure_reason" example:"Upstream service timeout"`
}

// Trace summarizes a distributed trace.
type Trace struct {
	TraceID       string `json:"trace_id" yaml:"trace_id" example:"a1b2c3d4"`
	RootService   string `json:"root_service" yaml:"root_service" example:"file-ingress"`
	RootOperation string `json:"root_operation" yaml:"root_operation" example:"upload"`
	Duration      string `json:"duration" yaml:"duration" example:"1.2s"`
	SpanCount     int    `json:"span_count" yaml:"span_count" example:"15"`
	Timestamp     string `json:"timestamp" yaml:"timestamp" example:"10:00:01Z"`
	Status        string `json:"status" yaml:"status" example:"error"`
}

// SubscriberMetric is one row of the tenant table.
type SubscriberMetric struct {
	SubscriberID   string  `json:"subscriber_id" yaml:"subscriber_id" example:"hdfc"`
	SubscriberName string  `json:"subscriber_name" yaml:"subscriber_name" example:"HDFC"`
	NSM            string  `json:"nsm" yaml:"nsm" example:"150K"`
	Health         float64 `json:"health" yaml:"health" example:"99.2"`
	ErrorRate      float64 `json:"error_rate" yaml:"error_rate" example:"4.5"`
	Lag            int     `json:"lag" yaml:"lag" example:"1500"`
	LastContact    string  `json:"last_contact" yaml:"last_contact" example:"3d ago"`
	MAU            int     `json:"mau" yaml:"mau" example:"500"`
	AdoptionRate   float64 `json:"adoption_rate" yaml:"adoption_rate" example:"60"`
}
