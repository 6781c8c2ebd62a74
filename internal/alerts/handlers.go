package alerts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

// sessionHeader names the dashboard session that should receive toasts.
const sessionHeader = "X-Session-ID"

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/metrics", Handler: m.handleListMetrics},
		{Method: "GET", Path: "/rules", Handler: m.handleListRules},
		{Method: "POST", Path: "/rules", Handler: m.handleCreateRule},
		{Method: "PATCH", Path: "/rules/{id}", Handler: m.handleUpdateRule},
		{Method: "DELETE", Path: "/rules/{id}", Handler: m.handleDeleteRule},
		{Method: "GET", Path: "/triggered", Handler: m.handleListTriggered},
		{Method: "GET", Path: "/triggered/unread-count", Handler: m.handleUnreadCount},
		{Method: "POST", Path: "/triggered/read-all", Handler: m.handleReadAll},
		{Method: "POST", Path: "/triggered/{id}/read", Handler: m.handleMarkRead},
	}
}

// UpdateRuleRequest is the body of PATCH /rules/{id}.
type UpdateRuleRequest struct {
	IsEnabled *bool `json:"is_enabled"`
}

// UnreadResponse reports the unread bell count.
type UnreadResponse struct {
	Unread int `json:"unread" example:"2"`
}

// ReadAllResponse reports how many bell entries read-all changed.
type ReadAllResponse struct {
	Marked int `json:"marked" example:"2"`
	Unread int `json:"unread" example:"0"`
}

// handleListMetrics returns the metrics alert rules may watch.
//
//	@Summary		Alertable metrics
//	@Tags			alerts
//	@Produce		json
//	@Success		200 {array} models.AlertableMetric
//	@Router			/alerts/metrics [get]
func (m *Module) handleListMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, m.cat.AlertableMetrics())
}

// handleListRules returns every rule, newest first.
//
//	@Summary		List alert rules
//	@Tags			alerts
//	@Produce		json
//	@Success		200 {array} models.AlertRule
//	@Failure		500 {object} models.Problem
//	@Failure		503 {object} models.Problem
//	@Router			/alerts/rules [get]
func (m *Module) handleListRules(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	rules, err := m.store.ListRules(r.Context())
	if err != nil {
		m.logger.Warn("failed to list rules", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list rules")
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// handleCreateRule stores a new rule.
//
//	@Summary		Create alert rule
//	@Description	Creates a rule over an alertable metric. A session header receives a confirmation toast.
//	@Tags			alerts
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID header string false "Dashboard session"
//	@Param			rule body CreateRuleRequest true "Rule"
//	@Success		201 {object} models.AlertRule
//	@Failure		400 {object} models.Problem
//	@Failure		503 {object} models.Problem
//	@Router			/alerts/rules [post]
func (m *Module) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rule, err := m.CreateRule(r.Context(), req)
	if err != nil {
		m.writeStoreError(w, err, "failed to create rule")
		return
	}
	m.notify(r.Context(), r.Header.Get(sessionHeader),
		fmt.Sprintf("Alert rule %q created.", rule.Name), models.NotifySuccess)
	writeJSON(w, http.StatusCreated, rule)
}

// handleUpdateRule enables or disables a rule.
//
//	@Summary		Enable or disable alert rule
//	@Tags			alerts
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Rule ID"
//	@Param			update body UpdateRuleRequest true "Enabled flag"
//	@Success		200 {object} models.AlertRule
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/alerts/rules/{id} [patch]
func (m *Module) handleUpdateRule(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	var req UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsEnabled == nil {
		writeError(w, http.StatusBadRequest, "is_enabled is required")
		return
	}
	rule, err := m.SetRuleEnabled(r.Context(), r.PathValue("id"), *req.IsEnabled)
	if err != nil {
		m.writeStoreError(w, err, "failed to update rule")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// handleDeleteRule removes a rule.
//
//	@Summary		Delete alert rule
//	@Tags			alerts
//	@Param			id path string true "Rule ID"
//	@Param			X-Session-ID header string false "Dashboard session"
//	@Success		204
//	@Failure		404 {object} models.Problem
//	@Router			/alerts/rules/{id} [delete]
func (m *Module) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	rule, err := m.DeleteRule(r.Context(), r.PathValue("id"))
	if err != nil {
		m.writeStoreError(w, err, "failed to delete rule")
		return
	}
	m.notify(r.Context(), r.Header.Get(sessionHeader),
		fmt.Sprintf("Alert rule %q deleted.", rule.Name), models.NotifySuccess)
	w.WriteHeader(http.StatusNoContent)
}

// handleListTriggered returns the bell entries, newest first.
//
//	@Summary		Triggered alerts
//	@Tags			alerts
//	@Produce		json
//	@Success		200 {array} models.TriggeredAlert
//	@Router			/alerts/triggered [get]
func (m *Module) handleListTriggered(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	alerts, err := m.store.ListTriggered(r.Context())
	if err != nil {
		m.logger.Warn("failed to list triggered alerts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list triggered alerts")
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// handleUnreadCount returns the bell badge count.
//
//	@Summary		Unread alert count
//	@Tags			alerts
//	@Produce		json
//	@Success		200 {object} UnreadResponse
//	@Router			/alerts/triggered/unread-count [get]
func (m *Module) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	n, err := m.store.UnreadCount(r.Context())
	if err != nil {
		m.logger.Warn("failed to count unread alerts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to count unread alerts")
		return
	}
	writeJSON(w, http.StatusOK, UnreadResponse{Unread: n})
}

// handleMarkRead marks one bell entry read.
//
//	@Summary		Mark alert read
//	@Tags			alerts
//	@Produce		json
//	@Param			id path string true "Triggered alert ID"
//	@Success		200 {object} UnreadResponse
//	@Failure		404 {object} models.Problem
//	@Router			/alerts/triggered/{id}/read [post]
func (m *Module) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	unread, err := m.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		m.writeStoreError(w, err, "failed to mark alert read")
		return
	}
	writeJSON(w, http.StatusOK, UnreadResponse{Unread: unread})
}

// handleReadAll marks every bell entry read.
//
//	@Summary		Mark all alerts read
//	@Tags			alerts
//	@Produce		json
//	@Success		200 {object} ReadAllResponse
//	@Router			/alerts/triggered/read-all [post]
func (m *Module) handleReadAll(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	n, err := m.MarkAllRead(r.Context())
	if err != nil {
		m.writeStoreError(w, err, "failed to mark alerts read")
		return
	}
	writeJSON(w, http.StatusOK, ReadAllResponse{Marked: n})
}

func (m *Module) storeReady(w http.ResponseWriter) bool {
	if m.store == nil {
		writeError(w, http.StatusServiceUnavailable, "alerts store not available")
		return false
	}
	return true
}

// writeStoreError maps module errors to problem responses.
func (m *Module) writeStoreError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidRule):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		m.logger.Warn(msg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, msg)
	}
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
