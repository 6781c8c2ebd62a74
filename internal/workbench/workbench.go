// Package workbench serves the task queue.
package workbench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"github.com/HerbHall/olympushub/pkg/roles"
	"go.uber.org/zap"
)

// TopicTaskUpdated is published after a task's status or assignee changes.
const TopicTaskUpdated = "workbench.task.updated"

// ErrInvalidUpdate is returned when a task update names nothing valid to change.
var ErrInvalidUpdate = errors.New("invalid task update")

// TaskUpdatedEvent is the payload of TopicTaskUpdated.
type TaskUpdatedEvent struct {
	Task             models.Task       `json:"task"`
	PreviousStatus   models.TaskStatus `json:"previous_status"`
	PreviousAssignee string            `json:"previous_assignee"`
}

// Compile-time interface guards.
var (
	_ plugin.Plugin        = (*Module)(nil)
	_ plugin.HTTPProvider  = (*Module)(nil)
	_ plugin.HealthChecker = (*Module)(nil)
)

// Module implements the workbench plugin.
type Module struct {
	logger  *zap.Logger
	cfg     Config
	store   *TaskStore
	bus     plugin.EventBus
	plugins plugin.PluginResolver
	now     func() time.Time
}

// New creates a new workbench plugin instance.
func New() *Module {
	return &Module{now: time.Now}
}

func (m *Module) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "workbench",
		Version:     "0.1.0",
		Description: "Task queue",
		APIVersion:  plugin.APIVersionCurrent,
	}
}

func (m *Module) Init(ctx context.Context, deps plugin.Dependencies) error {
	m.logger = deps.Logger
	m.bus = deps.Bus
	m.plugins = deps.Plugins

	m.cfg = DefaultConfig()
	if deps.Config != nil {
		if err := deps.Config.Unmarshal(&m.cfg); err != nil {
			return fmt.Errorf("unmarshal workbench config: %w", err)
		}
	}

	if deps.Store == nil {
		m.logger.Warn("workbench store not available, task endpoints disabled")
		return nil
	}
	if err := deps.Store.Migrate(ctx, "workbench", migrations()); err != nil {
		return fmt.Errorf("workbench migrations: %w", err)
	}
	m.store = NewTaskStore(deps.Store.DB())

	if m.cfg.SeedDefaults {
		if err := m.seed(ctx); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}
	m.logger.Info("workbench module initialized")
	return nil
}

func (m *Module) Start(_ context.Context) error { return nil }

func (m *Module) Stop(_ context.Context) error { return nil }

// Health implements plugin.HealthChecker.
func (m *Module) Health(ctx context.Context) plugin.HealthStatus {
	if m.store == nil {
		return plugin.HealthStatus{Status: "degraded", Message: "store not available"}
	}
	n, err := m.store.CountTasks(ctx)
	if err != nil {
		return plugin.HealthStatus{Status: "unhealthy", Message: err.Error()}
	}
	return plugin.HealthStatus{Status: "healthy", Details: map[string]string{"tasks": fmt.Sprint(n)}}
}

func (m *Module) seed(ctx context.Context) error {
	n, err := m.store.CountTasks(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, t := range catalog.Default().Tasks() {
		if err := m.store.InsertTask(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

// ListTasks returns the tasks q selects, in q's order.
func (m *Module) ListTasks(ctx context.Context, q Query) ([]models.Task, error) {
	tasks, err := m.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return q.Apply(tasks), nil
}

// UpdateTaskRequest is the body of PATCH /tasks/{key}. Omitted fields are
// left unchanged; an empty assignee unassigns the task.
type UpdateTaskRequest struct {
	Status   *models.TaskStatus `json:"status,omitempty" example:"IN_PROGRESS"`
	Assignee *string            `json:"assignee,omitempty" example:"Jane Doe"`
}

// UpdateTask applies req to the task with key and publishes the change.
func (m *Module) UpdateTask(ctx context.Context, key string, req UpdateTaskRequest) (models.Task, error) {
	if req.Status == nil && req.Assignee == nil {
		return models.Task{}, fmt.Errorf("%w: status or assignee is required", ErrInvalidUpdate)
	}
	if req.Status != nil && !req.Status.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidUpdate, *req.Status)
	}

	patch := TaskPatch{Status: req.Status}
	if req.Assignee != nil {
		assignee := strings.TrimSpace(*req.Assignee)
		if assignee == "" {
			assignee = models.Unassigned
		}
		patch.Assignee = &assignee
	}
	prev, task, err := m.store.PatchTask(ctx, key, patch, m.now())
	if err != nil {
		return models.Task{}, err
	}
	if task == prev {
		return task, nil
	}

	if m.bus != nil {
		err := m.bus.Publish(ctx, plugin.Event{
			Topic:     TopicTaskUpdated,
			Source:    "workbench",
			Timestamp: m.now(),
			Payload: TaskUpdatedEvent{
				Task:             task,
				PreviousStatus:   prev.Status,
				PreviousAssignee: prev.Assignee,
			},
		})
		if err != nil {
			m.logger.Warn("publish task update", zap.String("key", task.Key), zap.Error(err))
		}
	}
	m.logger.Info("task updated",
		zap.String("key", task.Key),
		zap.String("status", string(task.Status)),
		zap.String("assignee", task.Assignee),
	)
	return task, nil
}

// notify shows a toast in the caller's dashboard session, if it named one.
func (m *Module) notify(ctx context.Context, sessionID, message string, kind models.NotificationType) {
	if sessionID == "" {
		return
	}
	for _, n := range roles.Notifiers(m.plugins) {
		if err := n.Notify(ctx, sessionID, message, kind); err != nil {
			m.logger.Debug("toast not delivered", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
}
