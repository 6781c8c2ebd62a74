package metrics

import (
	"fmt"

	"github.com/HerbHall/olympushub/pkg/models"
)

// DiaKPIs returns the DIA dashboard cards: the transfer volume and quality
// cards of the File Application console, retitled for the module.
func (e *Engine) DiaKPIs(sel models.Selection) []models.KPI {
	e.observe("dia_kpis")
	file := e.fileKPIs(sel)

	downloads := file[2]
	downloads.ID, downloads.Title = "dia_downloads_dash", "DIA File Downloads"
	uploads := file[3]
	uploads.ID, uploads.Title = "dia_uploads_dash", "DIA File Uploads"
	errRate := file[5]
	errRate.ID, errRate.Title = "dia_error_dash", "DIA Error Rate"
	latency := file[6]
	latency.ID, latency.Title = "dia_latency_dash", "DIA Avg. Transfer Latency"

	return []models.KPI{downloads, uploads, errRate, latency}
}

// DiaModuleMetrics returns the DIA status rows.
func (e *Engine) DiaModuleMetrics(sel models.Selection) []models.ModuleMetric {
	e.observe("dia_module_metrics")
	ff, tf := factors(sel)
	factor := ff * tf
	return []models.ModuleMetric{
		{ID: "dia_downloads", Name: "File Downloads", Value: FormatCompact(900000 * factor), Status: models.StatusGreen, Description: "Total files downloaded by the DIA module.", Change: fmt.Sprintf("+%.1f%%", 4.8*ff)},
		{ID: "dia_uploads", Name: "File Uploads", Value: FormatCompact(300000 * factor), Status: models.StatusGreen, Description: "Total files uploaded by the DIA module.", Change: fmt.Sprintf("+%.1f%%", 6.1*ff)},
		{ID: "dia_error_rate", Name: "Error Rate", Value: "0.85%", Status: models.StatusAmber, Description: "Percentage of failed transfers within the DIA module.", Change: "+15.0%"},
		{ID: "dia_latency", Name: "Avg Latency", Value: "1.2s", Status: models.StatusAmber, Description: "Average file transfer latency for the DIA module.", Change: "+12.1%"},
	}
}

// DiaNorthStarKPIs returns the DIA north-star headlines.
func (e *Engine) DiaNorthStarKPIs(sel models.Selection) []models.NorthStarKPI {
	e.observe("dia_north_star")
	ff, _ := factors(sel)
	nsm := func(id, title string, base, change float64) models.NorthStarKPI {
		return models.NorthStarKPI{
			ID:         id,
			Title:      title,
			Value:      FormatGrouped(base * ff),
			Change:     fmt.Sprintf("+%.1f%% vs last month", change*ff),
			ChangeType: models.ChangeIncrease,
		}
	}
	return []models.NorthStarKPI{
		nsm("file_downloads_nsm", "File Downloads", 915400, 2.2),
		nsm("file_uploads_nsm", "File Uploads", 300000, 3.1),
		nsm("active_users_nsm", "Active Users", 124, 2.5),
	}
}

// supplementaryMonths are the trailing twelve months the DIA yearly charts span.
var supplementaryMonths = []string{"Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan"}

// DiaSupplementary returns the DIA yearly uptime, error, speed, latency and
// cluster cost charts.
func (e *Engine) DiaSupplementary(sel models.Selection) models.DiaSupplementary {
	e.observe("dia_supplementary")
	ff, _ := factors(sel)
	sd := SafeDivisor(ff)

	series := func(f func(r float64) float64) []models.Point {
		pts := make([]models.Point, len(supplementaryMonths))
		for i, m := range supplementaryMonths {
			pts[i] = models.Point{Name: m, Value: f(e.src.Float64())}
		}
		return pts
	}

	keys := e.cat.ClusterKeys()
	costs := make([]models.ClusterCostMonth, len(supplementaryMonths))
	for i, m := range supplementaryMonths {
		month := models.ClusterCostMonth{Name: m, Costs: make(map[string]float64, len(keys))}
		for _, k := range keys {
			month.Costs[k.Key] = (k.Base + e.src.Float64()*k.Spread) * ff
		}
		costs[i] = month
	}

	return models.DiaSupplementary{
		YearlyUptime:       series(func(r float64) float64 { return (99.5 + (r-0.5)*0.3) * ff }),
		ErrorRate:          series(func(r float64) float64 { return (5 + (r-0.7)*4) / sd }),
		AvgTransferSpeed:   series(func(r float64) float64 { return (126 + (r-0.5)*50) * ff }),
		TransferLatency:    series(func(r float64) float64 { return (0.9 + (r-0.5)*0.5) / sd }),
		MonthlyClusterCost: models.ClusterCost{Data: costs, Keys: keys},
	}
}

// PerseusKPIs returns the Perseus dashboard cards, built over the first four
// File Application cards.
func (e *Engine) PerseusKPIs(sel models.Selection) []models.KPI {
	e.observe("perseus_kpis")
	ff, _ := factors(sel)
	file := e.fileKPIs(sel)

	runs := file[0]
	runs.ID, runs.Title, runs.Value = "perseus_mjr_dash", "Perseus Job Runs", "4.5M"
	health := file[1]
	health.ID, health.Title, health.Value = "perseus_health_dash", "Perseus Health", "99.99%"
	errRate := file[2]
	errRate.ID, errRate.Title, errRate.Value = "perseus_error_dash", "Perseus Error Rate", "0.21%"
	records := file[3]
	records.ID = "perseus_records_dash"
	records.Title = "Records Processed"
	records.Value = "1.2B"
	records.Change = fmt.Sprintf("+%.1f%%", 10.1*ff)
	records.ChangeType = models.ChangeIncrease
	records.Status = models.StatusGreen
	records.Description = "Total number of individual records processed by all jobs in the Perseus module."

	return []models.KPI{runs, health, errRate, records}
}

// PerseusModuleMetrics returns the Perseus status rows.
func (e *Engine) PerseusModuleMetrics(sel models.Selection) []models.ModuleMetric {
	e.observe("perseus_module_metrics")
	ff, tf := factors(sel)
	factor := ff * tf
	return []models.ModuleMetric{
		{ID: "perseus_mjr", Name: "Job Runs", Value: fmt.Sprintf("%.1fM", 4.5*factor*30), Status: models.StatusGreen, Description: "Total number of batch jobs executed by the Perseus module.", Change: fmt.Sprintf("+%.1f%%", 8.2*ff)},
		{ID: "perseus_records", Name: "Records Processed", Value: fmt.Sprintf("%.1fB", 1.2*factor*30), Status: models.StatusGreen, Description: "Total number of individual records processed by all jobs in the Perseus module.", Change: fmt.Sprintf("+%.1f%%", 10.1*ff)},
		{ID: "perseus_health", Name: "Health", Value: "99.99%", Status: models.StatusGreen, Description: "Uptime of the Perseus job processing engine.", Change: "+0.00%"},
		{ID: "perseus_error_rate", Name: "Error Rate", Value: "0.21%", Status: models.StatusGreen, Description: "Percentage of jobs that failed to complete successfully.", Change: "-2.0%"},
	}
}

// PerseusCategorizedMetrics returns the Perseus metrics grouped by concern.
func (e *Engine) PerseusCategorizedMetrics(sel models.Selection) models.PerseusCategorizedMetrics {
	e.observe("perseus_categorized")
	ff, tf := factors(sel)
	sd := SafeDivisor(ff)

	return models.PerseusCategorizedMetrics{
		Health: []models.ModuleMetric{
			{ID: "perseus_uptime", Name: "Uptime Percentage", Value: fmt.Sprintf("%.4f%%", 99.99-(1-ff)*0.05), Status: models.StatusGreen, Description: "Measures the availability of Perseus by tracking the percentage of time the service is available. Target: 99.99%."},
			{ID: "perseus_error_rate_detail", Name: "Error Rate", Value: fmt.Sprintf("%.2f%%", 0.21/sd), Status: models.StatusGreen, Description: "Tracks the percentage of records that fail to process due to system errors, indicating reliability and stability."},
		},
		Performance: []models.ModuleMetric{
			{ID: "perseus_throughput", Name: "Throughput (RPS)", Value: FormatCompact(float64(roundInt(2000 * ff))), Status: models.StatusNeutral, Description: "The number of records processed by Perseus per second (RPS), indicating the system's capacity to handle large volumes of data efficiently."},
		},
		Business: []models.ModuleMetric{
			{ID: "perseus_mcc", Name: "Monthly Cluster Cost (MCC)", Value: "$" + FormatCompact(float64(roundInt(15234*ff*tf*30))), Status: models.StatusNeutral, Description: "Total sum of compute, storage & network cost per month for the Perseus module."},
			{ID: "perseus_cost_per_record", Name: "Cost per Processed Record", Value: fmt.Sprintf("$%.5f", 0.00012/sd), Status: models.StatusNeutral, Description: "The cost associated with processing a single record, helping to measure the platform's cost-efficiency."},
		},
		FeatureUsage: []models.ModuleMetric{
			{ID: "perseus_operator_usage", Name: "Operator Usage", Value: FormatCompact(float64(roundInt(125 * ff))), Status: models.StatusNeutral, Description: "The number of new operator instances integrated with Perseus, indicating its growing adoption within the ecosystem."},
		},
	}
}

// AtroposKPIs returns the Atropos dashboard cards.
func (e *Engine) AtroposKPIs(sel models.Selection) []models.KPI {
	e.observe("atropos_kpis")
	msg := e.messageKPIs(sel)
	file := e.fileKPIs(sel)

	events := msg[0]
	events.ID, events.Title, events.Value = "atropos_events_dash", "Atropos Events Published", "25.4M"
	health := msg[1]
	health.ID, health.Title, health.Value, health.Status = "atropos_health_dash", "Atropos Health", "99.91%", models.StatusAmber
	css := file[3]
	css.ID = "atropos_css_dash"
	css.Title = "Customer Satisfaction"
	css.Value = "4.8/5"
	css.Change = "+0.1"
	css.ChangeType = models.ChangeIncrease
	css.Status = models.StatusGreen
	css.Description = "Quarterly customer satisfaction score."
	css.Unit = ""

	return []models.KPI{events, health, css}
}

// AtroposModuleMetrics returns the Atropos status rows.
func (e *Engine) AtroposModuleMetrics(sel models.Selection) []models.ModuleMetric {
	e.observe("atropos_module_metrics")
	ff, tf := factors(sel)
	factor := ff * tf
	sd := SafeDivisor(ff)
	p99 := 950 / sd
	return []models.ModuleMetric{
		{ID: "atropos_css", Name: "CSS", Value: "4.8/5", Status: models.StatusGreen, Description: "Customer Satisfaction Score (Quarterly). A measure of customer happiness with the message application features.", Change: "+0.1"},
		{ID: "atropos_events", Name: "Events Published", Value: fmt.Sprintf("%.1fM", 25.4*factor*30), Status: models.StatusGreen, Description: "Total number of events published via the Atropos module.", Change: fmt.Sprintf("+%.1f%%", 12.3*ff)},
		{ID: "atropos_latency", Name: "p99 Latency", Value: fmt.Sprintf("%.0fms", p99), Status: ceilingStatus(p99, 800, 2000), Description: "99th percentile publish latency for the Atropos module.", Change: fmt.Sprintf("+%.1f%%", 8.5/sd)},
	}
}
