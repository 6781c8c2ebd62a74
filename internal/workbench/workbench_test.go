package workbench

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/HerbHall/olympushub/internal/store"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/plugin/plugintest"
	"go.uber.org/zap"
)

func TestPluginContract(t *testing.T) {
	plugintest.TestPluginContract(t, func() plugin.Plugin { return New() })
}

func newTestModule(t *testing.T) (*Module, *plugintest.RecordingBus) {
	t.Helper()
	db, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bus := &plugintest.RecordingBus{}
	m := New()
	if err := m.Init(context.Background(), plugin.Dependencies{Logger: zap.NewNop(), Store: db, Bus: bus}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return m, bus
}

func ptr[T any](v T) *T { return &v }

func TestUpdateTask(t *testing.T) {
	m, bus := newTestModule(t)
	ctx := context.Background()

	task, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{
		Status:   ptr(models.TaskInProgress),
		Assignee: ptr("Jane Doe"),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if task.Status != models.TaskInProgress || task.Assignee != "Jane Doe" {
		t.Errorf("task = %+v", task)
	}
	stored, _ := m.store.GetTask(ctx, "ABHI-1")
	if stored != task {
		t.Errorf("stored = %+v, want %+v", stored, task)
	}

	ev := bus.Events()
	if len(ev) != 1 || ev[0].Topic != TopicTaskUpdated {
		t.Fatalf("events = %v", bus.Topics())
	}
	payload := ev[0].Payload.(TaskUpdatedEvent)
	if payload.PreviousStatus != models.TaskOpen || payload.PreviousAssignee != models.Unassigned {
		t.Errorf("payload = %+v", payload)
	}

	// Clearing the assignee unassigns; an identical update publishes nothing.
	task, _ = m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{Assignee: ptr(" ")})
	if task.Assignee != models.Unassigned {
		t.Errorf("assignee = %q, want Unassigned", task.Assignee)
	}
	bus.Reset()
	if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{Status: ptr(models.TaskInProgress)}); err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if len(bus.Events()) != 0 {
		t.Errorf("no-op update published %v", bus.Topics())
	}
}

func TestUpdateTask_Errors(t *testing.T) {
	m, _ := newTestModule(t)
	ctx := context.Background()

	if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{}); !errors.Is(err, ErrInvalidUpdate) {
		t.Errorf("empty update err = %v", err)
	}
	if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{Status: ptr(models.TaskStatus("BLOCKED"))}); !errors.Is(err, ErrInvalidUpdate) {
		t.Errorf("bad status err = %v", err)
	}
	if _, err := m.UpdateTask(ctx, "NOPE-1", UpdateTaskRequest{Status: ptr(models.TaskDone)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown key err = %v", err)
	}
}

func TestUpdateTask_ConcurrentFieldsBothLand(t *testing.T) {
	m, _ := newTestModule(t)
	ctx := context.Background()

	for round := range 50 {
		if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{
			Status:   ptr(models.TaskOpen),
			Assignee: ptr(""),
		}); err != nil {
			t.Fatalf("reset: %v", err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{Status: ptr(models.TaskDone)}); err != nil {
				t.Errorf("status update: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := m.UpdateTask(ctx, "ABHI-1", UpdateTaskRequest{Assignee: ptr("Jane Doe")}); err != nil {
				t.Errorf("assignee update: %v", err)
			}
		}()
		wg.Wait()

		got, err := m.store.GetTask(ctx, "ABHI-1")
		if err != nil {
			t.Fatalf("GetTask: %v", err)
		}
		if got.Status != models.TaskDone || got.Assignee != "Jane Doe" {
			t.Fatalf("round %d: task = %+v, want both fields applied", round, got)
		}
	}
}

func TestPatchTask(t *testing.T) {
	m, _ := newTestModule(t)
	ctx := context.Background()
	at := time.Date(2025, time.September, 5, 14, 25, 0, 0, time.UTC)

	prev, next, err := m.store.PatchTask(ctx, "ABHI-1", TaskPatch{Status: ptr(models.TaskInProgress)}, at)
	if err != nil {
		t.Fatalf("PatchTask: %v", err)
	}
	if prev.Status != models.TaskOpen || next.Status != models.TaskInProgress || next.Assignee != prev.Assignee {
		t.Errorf("prev = %+v, next = %+v", prev, next)
	}

	prev, next, err = m.store.PatchTask(ctx, "ABHI-1", TaskPatch{Status: ptr(models.TaskInProgress)}, at)
	if err != nil || prev != next {
		t.Errorf("no-op patch: prev = %+v, next = %+v, err = %v", prev, next, err)
	}

	if _, _, err := m.store.PatchTask(ctx, "NOPE-1", TaskPatch{Status: ptr(models.TaskDone)}, at); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown key err = %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	m, _ := newTestModule(t)
	if err := m.seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n, _ := m.store.CountTasks(context.Background()); n != 4 {
		t.Errorf("tasks = %d, want 4", n)
	}
}

func serve(m *Module, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	for _, r := range m.Routes() {
		mux.HandleFunc(r.Method+" "+r.Path, r.Handler)
	}
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, rd))
	return w
}

func TestHandleListTasks(t *testing.T) {
	m, _ := newTestModule(t)

	tests := []struct {
		target string
		code   int
		want   string
	}{
		{"/tasks", http.StatusOK, "ABHI-1,TASK-123,TASK-122,TASK-121"},
		{"/tasks?queue=tasks-open&sort=due", http.StatusOK, "TASK-122,ABHI-1"},
		{"/tasks?sort=due&order=desc", http.StatusOK, "ABHI-1,TASK-122,TASK-123,TASK-121"},
		{"/tasks?queue=tasks-assigned&assignee=John+Smith", http.StatusOK, "TASK-123"},
		{"/tasks?queue=bogus", http.StatusBadRequest, ""},
		{"/tasks?sort=created", http.StatusBadRequest, ""},
		{"/tasks?sort=due&order=up", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		w := serve(m, "GET", tt.target, "")
		if w.Code != tt.code {
			t.Errorf("%s: status = %d, want %d", tt.target, w.Code, tt.code)
			continue
		}
		if tt.code != http.StatusOK {
			continue
		}
		var tasks []models.Task
		if err := json.NewDecoder(w.Body).Decode(&tasks); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got := strings.Join(keys(tasks), ","); got != tt.want {
			t.Errorf("%s: %s, want %s", tt.target, got, tt.want)
		}
	}
}

func TestHandleTask(t *testing.T) {
	m, _ := newTestModule(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"get", "GET", "/tasks/TASK-123", "", http.StatusOK},
		{"get unknown", "GET", "/tasks/TASK-1", "", http.StatusNotFound},
		{"patch ok", "PATCH", "/tasks/TASK-123", `{"status":"DONE"}`, http.StatusOK},
		{"patch bad json", "PATCH", "/tasks/TASK-123", `{`, http.StatusBadRequest},
		{"patch empty", "PATCH", "/tasks/TASK-123", `{}`, http.StatusBadRequest},
		{"patch bad status", "PATCH", "/tasks/TASK-123", `{"status":"LATER"}`, http.StatusBadRequest},
		{"patch unknown", "PATCH", "/tasks/TASK-1", `{"status":"DONE"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(m, tt.method, tt.target, tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d; body %s", w.Code, tt.want, w.Body.String())
			}
		})
	}

	w := serve(m, "GET", "/tasks/TASK-123", "")
	var task models.Task
	if err := json.NewDecoder(w.Body).Decode(&task); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if task.Status != models.TaskDone {
		t.Errorf("status after patch = %q", task.Status)
	}
}

func TestHandlers_NoStore(t *testing.T) {
	m := New()
	if err := m.Init(context.Background(), plugintest.Deps("workbench")); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if w := serve(m, "GET", "/tasks", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
