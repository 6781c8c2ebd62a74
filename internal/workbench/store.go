package workbench

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
)

// ErrNotFound is returned when a task key does not exist.
var ErrNotFound = errors.New("task not found")

// TaskStore provides database access for the workbench module.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore creates a new TaskStore backed by the given database.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// InsertTask inserts a task.
func (s *TaskStore) InsertTask(ctx context.Context, t *models.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workbench_tasks (key, summary, reporter, assignee, status, created, due)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Key, t.Summary, t.Reporter, t.Assignee, string(t.Status), t.Created, t.Due,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ListTasks returns every task in insertion order.
func (s *TaskStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, summary, reporter, assignee, status, created, due
		FROM workbench_tasks ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns a task by key, or ErrNotFound.
func (s *TaskStore) GetTask(ctx context.Context, key string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, summary, reporter, assignee, status, created, due
		FROM workbench_tasks WHERE key = ?`,
		key,
	)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return t, err
}

// TaskPatch names the fields of a task to change. Nil fields are kept.
type TaskPatch struct {
	Status   *models.TaskStatus
	Assignee *string
}

func (p TaskPatch) apply(t models.Task) models.Task {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	return t
}

// PatchTask applies p to the task with key in one transaction and returns
// the task before and after. Only the patched columns are written, so
// concurrent patches of different fields both land. When p changes
// nothing, nothing is written and prev equals next.
func (s *TaskStore) PatchTask(ctx context.Context, key string, p TaskPatch, at time.Time) (prev, next models.Task, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return prev, next, fmt.Errorf("begin patch task: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	prev, err = scanTask(tx.QueryRowContext(ctx, `
		SELECT key, summary, reporter, assignee, status, created, due
		FROM workbench_tasks WHERE key = ?`,
		key,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return prev, next, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return prev, next, err
	}
	next = p.apply(prev)
	if next == prev {
		return prev, next, tx.Commit()
	}

	var status, assignee any
	if p.Status != nil {
		status = string(*p.Status)
	}
	if p.Assignee != nil {
		assignee = *p.Assignee
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE workbench_tasks
		SET status = COALESCE(?, status), assignee = COALESCE(?, assignee), updated_at = ?
		WHERE key = ?`,
		status, assignee, at.UTC(), key,
	)
	if err != nil {
		return prev, next, fmt.Errorf("patch task: %w", err)
	}
	return prev, next, tx.Commit()
}

// CountTasks returns the number of stored tasks.
func (s *TaskStore) CountTasks(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workbench_tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (models.Task, error) {
	var (
		t      models.Task
		status string
	)
	err := sc.Scan(&t.Key, &t.Summary, &t.Reporter, &t.Assignee, &status, &t.Created, &t.Due)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, err
		}
		return t, fmt.Errorf("scan task row: %w", err)
	}
	t.Status = models.TaskStatus(status)
	return t, nil
}
