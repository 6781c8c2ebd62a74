package models

// Contributor is a row of the drilldown breakdown. For a single subscriber
// the rows are key/value pairs and Change holds a status label.
type Contributor struct {
	Name   string `json:"name" example:"Health"`
	Value  string `json:"value" example:"99.20%"`
	Change string `json:"change" example:"Needs Attention"`
}

// Drilldown is the detail bundle behind a KPI card.
type Drilldown struct {
	MetricID         string        `json:"metric_id" example:"files_processed"`
	MetricTitle      string        `json:"metric_title" example:"Number of Files Processed - HDFC"`
	TrendData        []TrendPoint  `json:"trend_data"`
	Contributors     []Contributor `json:"contributors"`
	ContributorTitle string        `json:"contributor_title" example:"Key Metrics for HDFC"`
	Logs             []LogEntry    `json:"logs"`
}

// TSheetMetric is a row header of a T-sheet. Group headers carry no data.
type TSheetMetric struct {
	Key              string `json:"key" yaml:"key" example:"filesProcessed"`
	Label            string `json:"label" yaml:"label" example:"No of files processed"`
	IsGroupHeader    bool   `json:"is_group_header,omitempty" yaml:"group_header"`
	IsGroupSeparator bool   `json:"is_group_separator" yaml:"group_separator"`
	Color            string `json:"color,omitempty" yaml:"color"`
}

// TSheet is a metric-by-window table. Data is keyed by column label, then
// metric key.
type TSheet struct {
	Metrics    []TSheetMetric               `json:"metrics"`
	Data       map[string]map[string]string `json:"data"`
	TimeRanges []string                     `json:"time_ranges"`
}
