package modules

import (
	"encoding/json"
	"net/http"

	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
)

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/{module}/kpis", Handler: m.handleKPIs},
		{Method: "GET", Path: "/{module}/metrics", Handler: m.handleMetrics},
		{Method: "GET", Path: "/{module}/logs", Handler: m.handleLogs},
		{Method: "GET", Path: "/dia/north-star", Handler: m.handleNorthStar},
		{Method: "GET", Path: "/dia/supplementary", Handler: m.handleSupplementary},
		{Method: "GET", Path: "/perseus/categorized", Handler: m.handleCategorized},
		{Method: "GET", Path: "/atropos/topics", Handler: m.handleListTopics},
		{Method: "GET", Path: "/atropos/topics/{id}", Handler: m.handleTopic},
		{Method: "GET", Path: "/atropos/subscriptions", Handler: m.handleListSubscriptions},
		{Method: "GET", Path: "/atropos/subscriptions/{id}", Handler: m.handleSubscription},
	}
}

func (m *Module) selection(r *http.Request) models.Selection {
	return m.cat.SelectionFromQuery(r.URL.Query(), m.timeRange)
}

// pathModule parses the {module} path value, writing a 404 when it names no
// vendor module.
func pathModule(w http.ResponseWriter, r *http.Request) (models.Module, bool) {
	mod, ok := models.ParseModule(r.PathValue("module"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown module "+r.PathValue("module"))
	}
	return mod, ok
}

// handleKPIs returns the dashboard cards of a vendor module.
//
//	@Summary		Module KPIs
//	@Description	Returns the headline cards of the DIA, Perseus or Atropos dashboard.
//	@Tags			modules
//	@Produce		json
//	@Param			module path string true "Module" Enums(dia, perseus, atropos)
//	@Param			subscriber query []string false "Subscriber ids" collectionFormat(multi)
//	@Param			zone query []string false "Zone ids" collectionFormat(multi)
//	@Param			range query string false "Time range" Enums(1h, 24h, 7d, 30d)
//	@Success		200 {array} models.KPI
//	@Failure		404 {object} models.Problem
//	@Router			/modules/{module}/kpis [get]
func (m *Module) handleKPIs(w http.ResponseWriter, r *http.Request) {
	mod, ok := pathModule(w, r)
	if !ok {
		return
	}
	sel := m.selection(r)
	var kpis []models.KPI
	switch mod {
	case models.ModuleDIA:
		kpis = m.engine.DiaKPIs(sel)
	case models.ModulePerseus:
		kpis = m.engine.PerseusKPIs(sel)
	case models.ModuleAtropos:
		kpis = m.engine.AtroposKPIs(sel)
	}
	writeJSON(w, http.StatusOK, kpis)
}

// handleMetrics returns the status rows of a vendor module.
//
//	@Summary		Module metrics
//	@Tags			modules
//	@Produce		json
//	@Param			module path string true "Module" Enums(dia, perseus, atropos)
//	@Success		200 {array} models.ModuleMetric
//	@Failure		404 {object} models.Problem
//	@Router			/modules/{module}/metrics [get]
func (m *Module) handleMetrics(w http.ResponseWriter, r *http.Request) {
	mod, ok := pathModule(w, r)
	if !ok {
		return
	}
	sel := m.selection(r)
	var rows []models.ModuleMetric
	switch mod {
	case models.ModuleDIA:
		rows = m.engine.DiaModuleMetrics(sel)
	case models.ModulePerseus:
		rows = m.engine.PerseusModuleMetrics(sel)
	case models.ModuleAtropos:
		rows = m.engine.AtroposModuleMetrics(sel)
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleLogs returns the log lines tagged for a vendor module.
//
//	@Summary		Module logs
//	@Tags			modules
//	@Produce		json
//	@Param			module path string true "Module" Enums(dia, perseus, atropos)
//	@Success		200 {array} models.LogEntry
//	@Failure		404 {object} models.Problem
//	@Router			/modules/{module}/logs [get]
func (m *Module) handleLogs(w http.ResponseWriter, r *http.Request) {
	mod, ok := pathModule(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, m.engine.ModuleLogs(mod, m.selection(r)))
}

// handleNorthStar returns the DIA north-star headlines.
//
//	@Summary		DIA north-star KPIs
//	@Tags			modules
//	@Produce		json
//	@Success		200 {array} models.NorthStarKPI
//	@Router			/modules/dia/north-star [get]
func (m *Module) handleNorthStar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.DiaNorthStarKPIs(m.selection(r)))
}

// handleSupplementary returns the DIA yearly charts.
//
//	@Summary		DIA supplementary charts
//	@Tags			modules
//	@Produce		json
//	@Success		200 {object} models.DiaSupplementary
//	@Router			/modules/dia/supplementary [get]
func (m *Module) handleSupplementary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.DiaSupplementary(m.selection(r)))
}

// handleCategorized returns the Perseus metrics grouped by concern.
//
//	@Summary		Perseus categorized metrics
//	@Tags			modules
//	@Produce		json
//	@Success		200 {object} models.PerseusCategorizedMetrics
//	@Router			/modules/perseus/categorized [get]
func (m *Module) handleCategorized(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.PerseusCategorizedMetrics(m.selection(r)))
}

// handleListTopics returns the Atropos topics.
//
//	@Summary		Atropos topics
//	@Tags			modules
//	@Produce		json
//	@Success		200 {array} models.Topic
//	@Router			/modules/atropos/topics [get]
func (m *Module) handleListTopics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.Topics())
}

// handleTopic returns the drilldown of one topic. Unknown ids borrow the
// first topic's name.
//
//	@Summary		Atropos topic metrics
//	@Tags			modules
//	@Produce		json
//	@Param			id path string true "Topic id"
//	@Success		200 {object} models.TopicMetrics
//	@Router			/modules/atropos/topics/{id} [get]
func (m *Module) handleTopic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.TopicMetrics(r.PathValue("id"), m.selection(r)))
}

// handleListSubscriptions returns the Atropos topic subscriptions.
//
//	@Summary		Atropos subscriptions
//	@Tags			modules
//	@Produce		json
//	@Success		200 {array} models.TopicSubscription
//	@Router			/modules/atropos/subscriptions [get]
func (m *Module) handleListSubscriptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.Subscriptions())
}

// handleSubscription returns the drilldown of one topic subscription.
//
//	@Summary		Atropos subscription metrics
//	@Tags			modules
//	@Produce		json
//	@Param			id path string true "Subscription id"
//	@Success		200 {object} models.SubscriptionMetrics
//	@Router			/modules/atropos/subscriptions/{id} [get]
func (m *Module) handleSubscription(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.engine.SubscriptionMetrics(r.PathValue("id"), m.selection(r)))
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
