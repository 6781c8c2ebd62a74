package models

// SubscriberDetail is everything the tenant detail page shows for one
// subscriber.
type SubscriberDetail struct {
	Subscriber    Subscriber   `json:"subscriber"`
	FileKPIs      []KPI        `json:"file_kpis"`
	MessageKPIs   []KPI        `json:"message_kpis"`
	TransferTrend []TrendPoint `json:"transfer_trend"`
	EventsTrend   []TrendPoint `json:"events_trend"`
	Logs          []LogEntry   `json:"logs"`
	FailedJobs    []JobRun     `json:"failed_jobs"`
}

// CatalogListing is the reference data the dashboard filters are built from.
type CatalogListing struct {
	Zones       []Zone       `json:"zones"`
	Subscribers []Subscriber `json:"subscribers"`
	TimeRanges  []TimeRange  `json:"time_ranges"`
}
