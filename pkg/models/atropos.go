package models

// Topic is an Atropos message topic.
type Topic struct {
	ID   string `json:"id" yaml:"id" example:"topic_1"`
	Name string `json:"name" yaml:"name" example:"global.payment-gateway.events"`
}

// TopicSubscription is a consumer subscription on an Atropos topic.
type TopicSubscription struct {
	ID   string `json:"id" yaml:"id" example:"sub_1"`
	Name string `json:"name" yaml:"name" example:"subscription_2_AUDIT_LOG_PROCESSOR"`
}

// SLO is a named service-level indicator.
type SLO struct {
	Name   string `json:"name" example:"Latency"`
	Value  string `json:"value" example:"99.73%"`
	Status Status `json:"status" example:"green"`
}

// REDPoint is one minute of rate/errors/duration data.
type REDPoint struct {
	Time       string `json:"time" example:"14:05"`
	Success    int    `json:"success" example:"640"`
	Failed     int    `json:"failed,omitempty" example:"9"`
	Filtered   int    `json:"filtered,omitempty" example:"180"`
	AvgLatency int    `json:"avg_latency" example:"512"`
}

// TopicMessageMetrics are the per-topic delivery indicators.
type TopicMessageMetrics struct {
	DelayedEvents SLO `json:"delayed_events"`
	P95Latency    SLO `json:"p95_latency"`
	P99Latency    SLO `json:"p99_latency"`
}

// TopicMetrics is the topic drilldown.
type TopicMetrics struct {
	ID             string              `json:"id" example:"topic_1"`
	Name           string              `json:"name"`
	LatencySLO     SLO                 `json:"latency_slo"`
	REDMetrics     []REDPoint          `json:"red_metrics"`
	MessageMetrics TopicMessageMetrics `json:"message_metrics"`
}

// SubscriptionMessageMetrics are the per-subscription event counters.
type SubscriptionMessageMetrics struct {
	TotalEvents    SLO `json:"total_events"`
	FilteredEvents SLO `json:"filtered_events"`
	DroppedEvents  SLO `json:"dropped_events"`
	SuccessEvents  SLO `json:"success_events"`
}

// SubscriptionMetrics is the subscription drilldown.
type SubscriptionMetrics struct {
	ID                string                     `json:"id" example:"sub_1"`
	Name              string                     `json:"name"`
	SLOs              []SLO                      `json:"slos"`
	REDMetrics        []REDPoint                 `json:"red_metrics"`
	QueueDepthMetrics []Point                    `json:"queue_depth_metrics"`
	DLQDepth          SLO                        `json:"dlq_depth"`
	DLQAge            SLO                        `json:"dlq_age"`
	MessageMetrics    SubscriptionMessageMetrics `json:"message_metrics"`
}
