package models

// Status is the traffic-light state of a metric.
type Status string

const (
	StatusGreen   Status = "green"
	StatusAmber   Status = "amber"
	StatusRed     Status = "red"
	StatusNeutral Status = "neutral"
)

// ChangeType says which way a metric moved.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

// Point is a named value in a chart series.
type Point struct {
	Name  string  `json:"name" example:"t0"`
	Value float64 `json:"value" example:"42"`
}

// KPI is a headline card.
type KPI struct {
	ID          string     `json:"id" example:"files_processed"`
	Title       string     `json:"title" example:"Number of Files Processed"`
	Value       string     `json:"value" example:"1.4K"`
	Change      string     `json:"change" example:"+5.8%"`
	ChangeType  ChangeType `json:"change_type" example:"increase"`
	Sparkline   []Point    `json:"sparkline"`
	Status      Status     `json:"status" example:"green"`
	Description string     `json:"description,omitempty"`
	Unit        string     `json:"unit,omitempty"`
}

// ModuleMetric is a compact status row on a module page.
type ModuleMetric struct {
	ID          string `json:"id" example:"dia_downloads"`
	Name        string `json:"name" example:"File Downloads"`
	Value       string `json:"value" example:"900.0K"`
	Status      Status `json:"status" example:"green"`
	Description string `json:"description,omitempty"`
	Change      string `json:"change,omitempty" example:"+4.8%"`
}

// BatchJobSummary aggregates Perseus batch job counts.
type BatchJobSummary struct {
	JobsRun                int    `json:"jobs_run" example:"508"`
	JobsRunChange          string `json:"jobs_run_change" example:"+2.0%"`
	JobsFailed             int    `json:"jobs_failed" example:"3"`
	JobsFailedChange       string `json:"jobs_failed_change" example:"-5.0%"`
	JobsSucceeded          int    `json:"jobs_succeeded" example:"505"`
	JobsSucceededChange    string `json:"jobs_succeeded_change" example:"+2.2%"`
	RecordsProcessed       int    `json:"records_processed" example:"115226"`
	RecordsProcessedChange string `json:"records_processed_change" example:"+3.1%"`
	FilesProcessed         int    `json:"files_processed" example:"47"`
	FilesProcessedChange   string `json:"files_processed_change" example:"+5.8%"`
}

// PerseusCategorizedMetrics groups Perseus metrics by concern.
type PerseusCategorizedMetrics struct {
	Health       []ModuleMetric `json:"health"`
	Performance  []ModuleMetric `json:"performance"`
	Business     []ModuleMetric `json:"business"`
	FeatureUsage []ModuleMetric `json:"feature_usage"`
}

// NorthStarKPI is a DIA north-star headline without a sparkline.
type NorthStarKPI struct {
	ID         string     `json:"id" example:"file_downloads_nsm"`
	Title      string     `json:"title" example:"File Downloads"`
	Value      string     `json:"value" example:"915,400"`
	Change     string     `json:"change" example:"+2.2% vs last month"`
	ChangeType ChangeType `json:"change_type" example:"increase"`
}

// TrendPoint is one bucket of a current-vs-previous trend chart.
type TrendPoint struct {
	Name          string  `json:"name" example:"Hour 24"`
	Value         float64 `json:"value" example:"812"`
	PreviousValue float64 `json:"previous_value" example:"512"`
}

// FailureReason is one slice of the failure breakdown.
type FailureReason struct {
	Reason     string `json:"reason" yaml:"reason" example:"Schema validation failed"`
	Count      int    `json:"count" yaml:"count" example:"1204"`
	Percentage int    `json:"percentage" yaml:"percentage" example:"35"`
}

// LatencyBucket is one bar of the latency histogram.
type LatencyBucket struct {
	Name  string `json:"name" yaml:"name" example:"0-200ms"`
	Count int    `json:"count" yaml:"count" example:"1890"`
}

// FeatureAdoption is the adoption score of one platform feature.
type FeatureAdoption struct {
	Name        string  `json:"name" yaml:"name" example:"Custom Connectors"`
	Adoption    int     `json:"adoption" yaml:"adoption" example:"35"`
	Description string  `json:"description" yaml:"description"`
	Change      float64 `json:"change" yaml:"-" example:"1.5"`
}

// ClusterKey names one stack of the cluster cost chart. Base and Spread
// shape the synthetic monthly cost: base + rand*spread.
type ClusterKey struct {
	Key    string  `json:"key" yaml:"key" example:"HADES"`
	Color  string  `json:"color" yaml:"color" example:"#3B82F6"`
	Base   float64 `json:"-" yaml:"base"`
	Spread float64 `json:"-" yaml:"spread"`
}

// ClusterCostMonth is one month of stacked cluster costs keyed by cluster.
type ClusterCostMonth struct {
	Name  string             `json:"name" example:"Feb"`
	Costs map[string]float64 `json:"costs"`
}

// ClusterCost is the stacked monthly cluster cost chart.
type ClusterCost struct {
	Data []ClusterCostMonth `json:"data"`
	Keys []ClusterKey       `json:"keys"`
}

// DiaSupplementary holds the DIA yearly charts.
type DiaSupplementary struct {
	YearlyUptime       []Point     `json:"yearly_uptime"`
	ErrorRate          []Point     `json:"error_rate"`
	AvgTransferSpeed   []Point     `json:"avg_transfer_speed"`
	TransferLatency    []Point     `json:"transfer_latency"`
	MonthlyClusterCost ClusterCost `json:"monthly_cluster_cost"`
}
