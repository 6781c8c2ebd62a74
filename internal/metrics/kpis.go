package metrics

import (
	"fmt"

	"github.com/HerbHall/olympushub/pkg/models"
)

// FileKPIs returns the File Application console cards.
func (e *Engine) FileKPIs(sel models.Selection) []models.KPI {
	e.observe("file_kpis")
	return e.fileKPIs(sel)
}

func (e *Engine) fileKPIs(sel models.Selection) []models.KPI {
	ff, tf := factors(sel)
	factor := ff * tf
	batch := batchSummary(sel)
	sd := SafeDivisor(ff)

	errorRate := 0.85 / sd
	latency := 1.2 / sd

	return []models.KPI{
		{
			ID:          "num_file_apps",
			Title:       "Number of File applications",
			Value:       fmt.Sprint(e.fileAppCount(sel)),
			Change:      "+2 this month",
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(8),
			Status:      models.StatusGreen,
			Description: "Total count of distinct applications configured for file transfers.",
		},
		{
			ID:          "files_processed",
			Title:       "Number of Files Processed",
			Value:       FormatCompact(float64(batch.FilesProcessed)),
			Change:      batch.FilesProcessedChange,
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(100 * factor),
			Status:      volumeStatus(ff),
			Description: "Total number of files processed by file applications.",
		},
		{
			ID:          "file_downloads",
			Title:       "File Downloads",
			Value:       FormatCompact(900000 * factor),
			Change:      "+4.8%",
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(factor),
			Status:      volumeStatus(ff),
			Description: "Total number of successful file downloads in the selected period.",
		},
		{
			ID:          "file_uploads",
			Title:       "File Uploads",
			Value:       FormatCompact(300000 * factor),
			Change:      "+6.1%",
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(factor),
			Status:      volumeStatus(ff),
			Description: "Total number of successful file uploads in the selected period.",
		},
		{
			ID:          "job_runs",
			Title:       "Job Runs",
			Value:       FormatCompact(float64(batch.JobsRun)),
			Change:      batch.JobsRunChange,
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(500 * factor),
			Status:      volumeStatus(ff),
			Description: "Total number of batch jobs executed in the selected period. Primarily driven by the Perseus module.",
		},
		{
			ID:          "error_rate",
			Title:       "Error Rate",
			Value:       fmt.Sprintf("%.2f%%", errorRate),
			Change:      "+15.0%",
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(10),
			Status:      ceilingStatus(errorRate, 0.5, 2),
			Description: "The percentage of file transfer operations that resulted in a failure (5xx error code). Spikes can indicate systemic issues.",
			Unit:        "percent",
		},
		{
			ID:          "avg_latency",
			Title:       "Avg. Transfer Latency",
			Value:       fmt.Sprintf("%.1fs", latency),
			Change:      "+12.1%",
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(2000),
			Status:      ceilingStatus(latency, 1.0, 2),
			Description: "The average time taken for a file transfer to complete, from initiation to final confirmation.",
			Unit:        "seconds",
		},
	}
}

// fileAppCount is every file-app subscriber for "all", one for a single
// subscriber, and otherwise the selected subscribers that run file apps.
func (e *Engine) fileAppCount(sel models.Selection) int {
	if models.IsAllSubscribers(sel.Subscribers) {
		return e.cat.FileAppCount()
	}
	if len(sel.Subscribers) == 1 {
		return 1
	}
	n := 0
	for _, s := range sel.Subscribers {
		if e.cat.HasFileApp(s.Name) {
			n++
		}
	}
	return n
}

// MessageKPIs returns the Message Application console cards.
func (e *Engine) MessageKPIs(sel models.Selection) []models.KPI {
	e.observe("message_kpis")
	return e.messageKPIs(sel)
}

func (e *Engine) messageKPIs(sel models.Selection) []models.KPI {
	ff, tf := factors(sel)
	factor := ff * tf
	sd := SafeDivisor(ff)

	sign, direction := "+", models.ChangeIncrease
	if !models.IsAllSubscribers(sel.Subscribers) && ff < 0.5 {
		sign, direction = "-", models.ChangeDecrease
	}

	health := 99.91 - (1-ff)*0.5
	errorRate := 1.52 / sd
	p99 := 950 / sd

	healthSpark := e.sparkline(100)
	for i := range healthSpark {
		if healthSpark[i].Value > 5 {
			healthSpark[i].Value = 99.9 + e.src.Float64()*0.1
		} else {
			healthSpark[i].Value = 97
		}
	}

	return []models.KPI{
		{
			ID:          "events_published",
			Title:       "Events Published",
			Value:       fmt.Sprintf("%.1fM", 25.4*factor*30),
			Change:      fmt.Sprintf("%s%.1f%%", sign, 12.3*ff),
			ChangeType:  direction,
			Sparkline:   e.sparkline(8000 * factor),
			Status:      volumeStatus(ff),
			Description: "Total number of events successfully published to a topic in the selected period. This is the North-Star Metric (NSM) for the Message Application.",
		},
		{
			ID:          "health_msg",
			Title:       "Health",
			Value:       fmt.Sprintf("%.2f%%", health),
			Change:      fmt.Sprintf("-%.2f%%", 0.08*ff),
			ChangeType:  models.ChangeDecrease,
			Sparkline:   healthSpark,
			Status:      floorStatus(health, 99.95, 99.5),
			Description: "The uptime percentage of all services backing the Message Application. Target: 99.99%.",
			Unit:        "percent",
		},
		{
			ID:          "error_rate_msg",
			Title:       "Error Rate",
			Value:       fmt.Sprintf("%.2f%%", errorRate),
			Change:      fmt.Sprintf("+%.1f%%", 25.3/sd),
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(20 / sd),
			Status:      ceilingStatus(errorRate, 0.5, 1.0),
			Description: "The percentage of event processing operations that resulted in a failure.",
			Unit:        "percent",
		},
		{
			ID:          "p99_latency",
			Title:       "p99 Publish Latency",
			Value:       fmt.Sprintf("%.0fms", p99),
			Change:      fmt.Sprintf("+%.1f%%", 8.5/sd),
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(1500 / sd),
			Status:      ceilingStatus(p99, 800, 2000),
			Description: "The 99th percentile latency for publishing an event. This indicates the worst-case experience for the vast majority of requests.",
			Unit:        "ms",
		},
	}
}

// AdoptionKPIs returns the Adoption console cards.
func (e *Engine) AdoptionKPIs(sel models.Selection) []models.KPI {
	e.observe("adoption_kpis")
	ff, tf := factors(sel)
	factor := ff * tf

	far := 68 * ff
	stickiness := 45 - (1-ff)*10
	uptake := 35 * ff

	return []models.KPI{
		{
			ID:          "mau",
			Title:       "Active Users",
			Value:       fmt.Sprintf("%.1fK", 12.5*factor*30),
			Change:      fmt.Sprintf("+%.1f%%", 8.1*ff),
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(500 * factor),
			Status:      volumeStatus(ff),
			Description: "The number of unique users who have performed at least one significant action in the selected period.",
		},
		{
			ID:          "far",
			Title:       "Feature Adoption Rate",
			Value:       fmt.Sprintf("%.0f%%", far),
			Change:      fmt.Sprintf("+%.1f%%", 2.5*ff),
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(80 * ff),
			Status:      floorStatus(far, 60, 40),
			Description: "An overall score representing the percentage of key features being actively used by subscribers.",
			Unit:        "percent",
		},
		{
			ID:          "stickiness",
			Title:       "Stickiness (DAU/MAU)",
			Value:       fmt.Sprintf("%.0f%%", stickiness),
			Change:      fmt.Sprintf("-%.1f%%", 1.2*(1-ff)),
			ChangeType:  models.ChangeDecrease,
			Sparkline:   e.sparkline(50 * ff),
			Status:      floorStatus(stickiness, 50, 35),
			Description: "The ratio of Daily Active Users to Monthly Active Users, indicating how frequently users return.",
			Unit:        "percent",
		},
		{
			ID:          "new_feature_uptake",
			Title:       "New Feature Uptake",
			Value:       fmt.Sprintf("%.0f%%", uptake),
			Change:      fmt.Sprintf("+%.1f%%", 15*ff),
			ChangeType:  models.ChangeIncrease,
			Sparkline:   e.sparkline(40 * factor),
			Status:      floorStatus(uptake, 30, 15),
			Description: "Percentage of subscribers who have adopted the newest flagship feature within the first month of release.",
			Unit:        "percent",
		},
	}
}

// BatchJobSummary aggregates Perseus batch job counts for sel.
func (e *Engine) BatchJobSummary(sel models.Selection) models.BatchJobSummary {
	e.observe("batch_job_summary")
	return batchSummary(sel)
}

func batchSummary(sel models.Selection) models.BatchJobSummary {
	ff, tf := factors(sel)
	factor := ff * tf

	run := roundInt(508 * factor * 30)
	failed := roundInt(78 / SafeDivisor(ff) * tf)
	succeeded := 0
	if run > failed {
		succeeded = run - failed
	}

	return models.BatchJobSummary{
		JobsRun:                run,
		JobsRunChange:          "+2.0%",
		JobsFailed:             failed,
		JobsFailedChange:       fmt.Sprintf("-%.1f%%", 5*ff),
		JobsSucceeded:          succeeded,
		JobsSucceededChange:    fmt.Sprintf("+%.1f%%", 2.2*ff),
		RecordsProcessed:       roundInt(3456789 * factor),
		RecordsProcessedChange: fmt.Sprintf("+%.1f%%", 3.1*ff),
		FilesProcessed:         roundInt(47 * factor * 30),
		FilesProcessedChange:   "+5.8%",
	}
}
