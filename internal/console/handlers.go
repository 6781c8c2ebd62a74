package console

import (
	"encoding/json"
	"net/http"

	"github.com/HerbHall/olympushub/internal/metrics"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
)

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/catalog", Handler: m.handleCatalog},
		{Method: "GET", Path: "/kpis/{app}", Handler: m.handleKPIs},
		{Method: "GET", Path: "/trend", Handler: m.handleTrend},
		{Method: "GET", Path: "/failure-reasons", Handler: m.handleFailureReasons},
		{Method: "GET", Path: "/latency-distribution", Handler: m.handleLatencyDistribution},
		{Method: "GET", Path: "/traces", Handler: m.handleTraces},
		{Method: "GET", Path: "/batch-summary", Handler: m.handleBatchSummary},
		{Method: "GET", Path: "/feature-adoption", Handler: m.handleFeatureAdoption},
		{Method: "GET", Path: "/subscribers", Handler: m.handleSubscribers},
		{Method: "GET", Path: "/subscribers/{id}", Handler: m.handleSubscriberDetail},
		{Method: "GET", Path: "/logs", Handler: m.handleLogs},
		{Method: "GET", Path: "/job-runs", Handler: m.handleJobRuns},
		{Method: "GET", Path: "/tsheet/{app}", Handler: m.handleTSheet},
		{Method: "GET", Path: "/drilldown", Handler: m.handleDrilldown},
	}
}

// selection resolves the subscriber, zone and range query parameters.
func (m *Module) selection(r *http.Request) models.Selection {
	return m.cat.SelectionFromQuery(r.URL.Query(), m.timeRange)
}

// handleCatalog returns the zones, subscribers and windows the filters offer.
//
//	@Summary		Filter catalog
//	@Description	Returns every zone and subscriber (sentinels first) and the supported time ranges.
//	@Tags			console
//	@Produce		json
//	@Success		200 {object} models.CatalogListing
//	@Router			/console/catalog [get]
func (m *Module) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.CatalogListing{
		Zones:       m.cat.Zones(),
		Subscribers: m.cat.Subscribers(),
		TimeRanges:  models.TimeRanges,
	})
}

// handleKPIs returns the headline cards of one console.
//
//	@Summary		Console KPIs
//	@Description	Returns the KPI cards of the file, message or adoption console for the selection.
//	@Tags			console
//	@Produce		json
//	@Param			app path string true "Console" Enums(file, message, adoption)
//	@Param			subscriber query []string false "Subscriber ids" collectionFormat(multi)
//	@Param			zone query []string false "Zone ids" collectionFormat(multi)
//	@Param			range query string false "Time range" Enums(1h, 24h, 7d, 30d)
//	@Success		200 {array} models.KPI
//	@Failure		404 {object} models.Problem
//	@Router			/console/kpis/{app} [get]
func (m *Module) handleKPIs(w http.ResponseWriter, r *http.Request) {
	sel := m.selection(r)
	var kpis []models.KPI
	switch r.PathValue("app") {
	case "file":
		kpis = m.engine.FileKPIs(sel)
	case "message":
		kpis = m.engine.MessageKPIs(sel)
	case "adoption":
		kpis = m.engine.AdoptionKPIs(sel)
	default:
		writeError(w, http.StatusNotFound, "unknown console "+r.PathValue("app"))
		return
	}
	writeJSON(w, http.StatusOK, kpis)
}

// handleTrend returns a current-vs-previous series.
//
//	@Summary		Trend series
//	@Description	Returns the trend series for the selection; its length follows the time range.
//	@Tags			console
//	@Produce		json
//	@Param			name query string false "Series name"
//	@Param			range query string false "Time range" Enums(1h, 24h, 7d, 30d)
//	@Success		200 {array} models.TrendPoint
//	@Router			/console/trend [get]
func (m *Module) handleTrend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.Trend(r.URL.Query().Get("name"), m.selection(r)))
}

// handleFailureReasons returns the failure breakdown.
//
//	@Summary		Top failure reasons
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.FailureReason
//	@Router			/console/failure-reasons [get]
func (m *Module) handleFailureReasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.TopFailureReasons(m.selection(r)))
}

// handleLatencyDistribution returns the latency histogram.
//
//	@Summary		Latency distribution
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.LatencyBucket
//	@Router			/console/latency-distribution [get]
func (m *Module) handleLatencyDistribution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.LatencyDistribution(m.selection(r)))
}

// handleTraces returns recent message traces.
//
//	@Summary		Recent traces
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.Trace
//	@Router			/console/traces [get]
func (m *Module) handleTraces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.Traces(m.selection(r)))
}

// handleBatchSummary returns the batch job counters.
//
//	@Summary		Batch job summary
//	@Tags			console
//	@Produce		json
//	@Success		200 {object} models.BatchJobSummary
//	@Router			/console/batch-summary [get]
func (m *Module) handleBatchSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.BatchJobSummary(m.selection(r)))
}

// handleFeatureAdoption returns per-feature adoption, highest first.
//
//	@Summary		Feature adoption
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.FeatureAdoption
//	@Router			/console/feature-adoption [get]
func (m *Module) handleFeatureAdoption(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.FeatureAdoption(m.selection(r)))
}

// handleSubscribers returns the tenant table.
//
//	@Summary		Tenant table
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.SubscriberMetric
//	@Router			/console/subscribers [get]
func (m *Module) handleSubscribers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.SubscriberMetrics(m.selection(r)))
}

// handleSubscriberDetail returns the tenant detail page for one subscriber.
// The subscriber replaces any subscriber or zone filter; only the range
// parameter is honored.
//
//	@Summary		Tenant detail
//	@Tags			console
//	@Produce		json
//	@Param			id path string true "Subscriber id"
//	@Param			range query string false "Time range" Enums(1h, 24h, 7d, 30d)
//	@Success		200 {object} models.SubscriberDetail
//	@Failure		404 {object} models.Problem
//	@Router			/console/subscribers/{id} [get]
func (m *Module) handleSubscriberDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sub, ok := m.cat.Subscriber(id)
	if !ok || id == models.AllID {
		writeError(w, http.StatusNotFound, "subscriber "+id+" not found")
		return
	}
	sel := m.cat.Selection([]string{id}, nil, r.URL.Query().Get("range"), m.timeRange)
	writeJSON(w, http.StatusOK, subscriberDetail(m.engine, sub, sel))
}

func subscriberDetail(e *metrics.Engine, sub models.Subscriber, sel models.Selection) models.SubscriberDetail {
	return models.SubscriberDetail{
		Subscriber:    sub,
		FileKPIs:      e.FileKPIs(sel),
		MessageKPIs:   e.MessageKPIs(sel),
		TransferTrend: e.Trend("MFT Trend", sel),
		EventsTrend:   e.Trend("Events Published Trend", sel),
		Logs:          e.Logs(sel),
		FailedJobs:    e.JobRuns(sel, models.JobFailed, ""),
	}
}

// handleLogs returns the log lines of the selection.
//
//	@Summary		Logs
//	@Tags			console
//	@Produce		json
//	@Success		200 {array} models.LogEntry
//	@Router			/console/logs [get]
func (m *Module) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.Logs(m.selection(r)))
}

// handleJobRuns returns batch runs with a status. A reason implies failed.
//
//	@Summary		Job runs
//	@Tags			console
//	@Produce		json
//	@Param			status query string false "Run status" Enums(succeeded, failed)
//	@Param			reason query string false "Failure reason"
//	@Success		200 {array} models.JobRun
//	@Failure		400 {object} models.Problem
//	@Router			/console/job-runs [get]
func (m *Module) handleJobRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := models.JobStatus(q.Get("status"))
	reason := q.Get("reason")
	switch {
	case reason != "" && status != "" && status != models.JobFailed:
		writeError(w, http.StatusBadRequest, "a failure reason only applies to failed runs")
		return
	case reason == "" && !status.Valid():
		writeError(w, http.StatusBadRequest, "status must be succeeded or failed")
		return
	}
	writeJSON(w, http.StatusOK, m.engine.JobRuns(m.selection(r), status, reason))
}

// handleTSheet returns the metric-by-window table of one application.
//
//	@Summary		T-sheet
//	@Tags			console
//	@Produce		json
//	@Param			app path string true "Application" Enums(file, message)
//	@Success		200 {object} models.TSheet
//	@Failure		404 {object} models.Problem
//	@Router			/console/tsheet/{app} [get]
func (m *Module) handleTSheet(w http.ResponseWriter, r *http.Request) {
	sheet, ok := m.engine.TSheet(r.PathValue("app"))
	if !ok {
		writeError(w, http.StatusNotFound, "no t-sheet for "+r.PathValue("app"))
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

// handleDrilldown returns the detail bundle behind a KPI card.
//
//	@Summary		KPI drilldown
//	@Tags			console
//	@Produce		json
//	@Param			metric query string true "Metric id"
//	@Param			title query string false "Card title; defaults to the metric id"
//	@Success		200 {object} models.Drilldown
//	@Failure		400 {object} models.Problem
//	@Router			/console/drilldown [get]
func (m *Module) handleDrilldown(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	metric := q.Get("metric")
	if metric == "" {
		writeError(w, http.StatusBadRequest, "metric is required")
		return
	}
	title := q.Get("title")
	if title == "" {
		title = metric
	}
	writeJSON(w, http.StatusOK, m.engine.Drilldown(metric, title, m.selection(r)))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Problem{
		Type:   models.ProblemTypeFor(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
