package workbench

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
)

const sessionHeader = "X-Session-ID"

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/tasks", Handler: m.handleListTasks},
		{Method: "GET", Path: "/tasks/{key}", Handler: m.handleGetTask},
		{Method: "PATCH", Path: "/tasks/{key}", Handler: m.handleUpdateTask},
	}
}

// handleListTasks returns a task queue.
//
//	@Summary		List tasks
//	@Description	Returns the tasks of a queue, optionally for one assignee and ordered by due date.
//	@Tags			workbench
//	@Produce		json
//	@Param			queue query string false "Queue" Enums(tasks-all, tasks-assigned, tasks-open)
//	@Param			assignee query string false "Assignee name"
//	@Param			sort query string false "Sort key" Enums(due)
//	@Param			order query string false "Sort order" Enums(asc, desc)
//	@Success		200 {array} models.Task
//	@Failure		400 {object} models.Problem
//	@Failure		503 {object} models.Problem
//	@Router			/workbench/tasks [get]
func (m *Module) handleListTasks(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tasks, err := m.ListTasks(r.Context(), q)
	if err != nil {
		m.logger.Warn("failed to list tasks", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func parseQuery(r *http.Request) (Query, error) {
	v := r.URL.Query()
	queue, err := ParseQueue(v.Get("queue"))
	if err != nil {
		return Query{}, err
	}
	q := Query{Queue: queue, Assignee: v.Get("assignee")}
	switch v.Get("sort") {
	case "":
	case "due":
		q.SortByDue = true
	default:
		return Query{}, errors.New("sort must be due")
	}
	switch v.Get("order") {
	case "", "asc":
	case "desc":
		q.Desc = true
	default:
		return Query{}, errors.New("order must be asc or desc")
	}
	return q, nil
}

// handleGetTask returns one task.
//
//	@Summary		Get task
//	@Tags			workbench
//	@Produce		json
//	@Param			key path string true "Task key"
//	@Success		200 {object} models.Task
//	@Failure		404 {object} models.Problem
//	@Router			/workbench/tasks/{key} [get]
func (m *Module) handleGetTask(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	task, err := m.store.GetTask(r.Context(), r.PathValue("key"))
	if err != nil {
		m.writeTaskError(w, err, "failed to get task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleUpdateTask changes a task's status or assignee.
//
//	@Summary		Update task
//	@Tags			workbench
//	@Accept			json
//	@Produce		json
//	@Param			key path string true "Task key"
//	@Param			X-Session-ID header string false "Dashboard session"
//	@Param			update body UpdateTaskRequest true "Changes"
//	@Success		200 {object} models.Task
//	@Failure		400 {object} models.Problem
//	@Failure		404 {object} models.Problem
//	@Router			/workbench/tasks/{key} [patch]
func (m *Module) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if !m.storeReady(w) {
		return
	}
	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task, err := m.UpdateTask(r.Context(), r.PathValue("key"), req)
	if err != nil {
		m.writeTaskError(w, err, "failed to update task")
		return
	}
	m.notify(r.Context(), r.Header.Get(sessionHeader), "Task "+task.Key+" updated.", models.NotifySuccess)
	writeJSON(w, http.StatusOK, task)
}

func (m *Module) storeReady(w http.ResponseWriter) bool {
	if m.store == nil {
		writeError(w, http.StatusServiceUnavailable, "workbench store not available")
		return false
	}
	return true
}

func (m *Module) writeTaskError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidUpdate):
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
