package uistate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

// SessionHeader carries the dashboard session id on every request.
const SessionHeader = "X-Session-ID"

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/session", Handler: m.handleCurrentSession},
		{Method: "POST", Path: "/sessions", Handler: m.handleCreateSession},
		{Method: "GET", Path: "/sessions/{id}", Handler: m.handleGetSession},
		{Method: "PUT", Path: "/sessions/{id}/selection", Handler: m.handleSetSelection},
		{Method: "PUT", Path: "/sessions/{id}/view", Handler: m.handleSetView},
		{Method: "POST", Path: "/sessions/{id}/drilldown", Handler: m.handleOpenDrilldown},
		{Method: "DELETE", Path: "/sessions/{id}/drilldown", Handler: m.handleCloseDrilldown},
		{Method: "POST", Path: "/sessions/{id}/job-runs", Handler: m.handleOpenJobRuns},
		{Method: "DELETE", Path: "/sessions/{id}/job-runs", Handler: m.handleCloseJobRuns},
		{Method: "POST", Path: "/sessions/{id}/notifications", Handler: m.handlePushNotification},
		{Method: "DELETE", Path: "/sessions/{id}/notifications/{nid}", Handler: m.handleDismissNotification},
	}
}

// SessionID returns the session named by the X-Session-ID header or, for
// clients that cannot set headers, the session query parameter.
func SessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	return r.URL.Query().Get("session")
}

// handleCurrentSession returns the caller's session, starting a new one
// when the caller names none or an expired one.
//
//	@Summary		Current session
//	@Description	Resolves the session from the X-Session-ID header or session query; creates one when missing.
//	@Tags			state
//	@Produce		json
//	@Param			X-Session-ID header string false "Dashboard session"
//	@Param			session query string false "Dashboard session"
//	@Success		200 {object} models.SessionState
//	@Success		201 {object} models.SessionState
//	@Router			/state/session [get]
func (m *Module) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	if id := SessionID(r); id != "" {
		if s, err := m.Session(id); err == nil {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	s := m.CreateSession(r.Context())
	w.Header().Set(SessionHeader, s.ID)
	writeJSON(w, http.StatusCreated, s)
}

// handleCreateSession starts a session.
//
//	@Summary		Create session
//	@Tags			state
//	@Produce		json
//	@Success		201 {object} models.SessionState
//	@Router			/state/sessions [post]
func (m *Module) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := m.CreateSession(r.Context())
	w.Header().Set(SessionHeader, s.ID)
	writeJSON(w, http.StatusCreated, s)
}

// handleGetSession returns the full state snapshot of a session.
//
//	@Summary		Get session
//	@Tags			state
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Success		200 {object} models.SessionState
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id} [get]
func (m *Module) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, err := m.Session(r.PathValue("id"))
	m.respond(w, s, err)
}

// handleSetSelection replaces the filter selection.
//
//	@Summary		Set selection
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			selection body SelectionRequest true "Selection"
//	@Success		200 {object} models.SessionState
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/selection [put]
func (m *Module) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s, err := m.SetSelection(r.Context(), r.PathValue("id"), req)
	m.respond(w, s, err)
}

// handleSetView navigates to another page.
//
//	@Summary		Set view
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			view body ViewRequest true "View"
//	@Success		200 {object} models.SessionState
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/view [put]
func (m *Module) handleSetView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s, err := m.SetView(r.Context(), r.PathValue("id"), req)
	m.respond(w, s, err)
}

// handleOpenDrilldown opens the KPI drilldown modal.
//
//	@Summary		Open drilldown
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			drilldown body DrilldownRequest true "KPI card"
//	@Success		200 {object} models.SessionState
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/drilldown [post]
func (m *Module) handleOpenDrilldown(w http.ResponseWriter, r *http.Request) {
	var req DrilldownRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s, err := m.OpenDrilldown(r.Context(), r.PathValue("id"), req)
	m.respond(w, s, err)
}

// handleCloseDrilldown closes the KPI drilldown modal.
//
//	@Summary		Close drilldown
//	@Tags			state
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Success		200 {object} models.SessionState
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/drilldown [delete]
func (m *Module) handleCloseDrilldown(w http.ResponseWriter, r *http.Request) {
	s, err := m.CloseDrilldown(r.Context(), r.PathValue("id"))
	m.respond(w, s, err)
}

// handleOpenJobRuns opens the job runs modal.
//
//	@Summary		Open job runs
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			filters body JobRunsRequest true "Filters"
//	@Success		200 {object} models.SessionState
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/job-runs [post]
func (m *Module) handleOpenJobRuns(w http.ResponseWriter, r *http.Request) {
	var req JobRunsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s, err := m.OpenJobRuns(r.Context(), r.PathValue("id"), req)
	m.respond(w, s, err)
}

// handleCloseJobRuns closes the job runs modal.
//
//	@Summary		Close job runs
//	@Tags			state
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Success		200 {object} models.SessionState
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/job-runs [delete]
func (m *Module) handleCloseJobRuns(w http.ResponseWriter, r *http.Request) {
	s, err := m.CloseJobRuns(r.Context(), r.PathValue("id"))
	m.respond(w, s, err)
}

// handlePushNotification shows a toast.
//
//	@Summary		Push notification
//	@Tags			state
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			notification body NotificationRequest true "Toast"
//	@Success		201 {object} models.Notification
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/notifications [post]
func (m *Module) handlePushNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	n, err := m.PushNotification(r.Context(), r.PathValue("id"), req)
	if err != nil {
		m.writeStateError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// handleDismissNotification removes a toast.
//
//	@Summary		Dismiss notification
//	@Tags			state
//	@Produce		json
//	@Param			id path string true "Session ID"
//	@Param			nid path string true "Notification ID"
//	@Success		200 {object} models.SessionState
//	@Failure		404 {object} models.Problem
//	@Router			/state/sessions/{id}/notifications/{nid} [delete]
func (m *Module) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	s, err := m.DismissNotification(r.Context(), r.PathValue("id"), r.PathValue("nid"))
	m.respond(w, s, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (m *Module) respond(w http.ResponseWriter, s models.SessionState, err error) {
	if err != nil {
		m.writeStateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (m *Module) writeStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidState):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownSession), errors.Is(err, ErrUnknownNotification):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		m.logger.Warn("state change failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "state change failed")
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
