package alerts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HerbHall/olympushub/pkg/models"
)

// ErrNotFound is returned when a rule or triggered alert does not exist.
var ErrNotFound = errors.New("not found")

// AlertStore provides database access for the alerts module.
type AlertStore struct {
	db *sql.DB
}

// NewAlertStore creates a new AlertStore backed by the given database.
func NewAlertStore(db *sql.DB) *AlertStore {
	return &AlertStore{db: db}
}

// -- Rules --

// InsertRule inserts a new alert rule.
func (s *AlertStore) InsertRule(ctx context.Context, r *models.AlertRule) error {
	actions, err := json.Marshal(r.Actions)
	if err != nil {
		return fmt.Errorf("encode actions: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO alerts_rules (
			id, name, metric_id, condition, threshold, duration_minutes, actions, enabled, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.MetricID, string(r.Condition), r.Threshold, r.Duration,
		string(actions), boolInt(r.IsEnabled), r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

// ListRules returns every rule, most recently created first.
func (s *AlertStore) ListRules(ctx context.Context) ([]models.AlertRule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, metric_id, condition, threshold, duration_minutes, actions, enabled, created_at
		FROM alerts_rules ORDER BY rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()

	rules := []models.AlertRule{}
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// GetRule returns a rule by ID, or ErrNotFound.
func (s *AlertStore) GetRule(ctx context.Context, id string) (models.AlertRule, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, metric_id, condition, threshold, duration_minutes, actions, enabled, created_at
		FROM alerts_rules WHERE id = ?`,
		id,
	)
	r, err := scanRule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AlertRule{}, fmt.Errorf("rule %s: %w", id, ErrNotFound)
	}
	return r, err
}

// SetRuleEnabled switches a rule on or off.
func (s *AlertStore) SetRuleEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE alerts_rules SET enabled = ? WHERE id = ?`, boolInt(enabled), id)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	return expectRow(res, "rule", id)
}

// DeleteRule removes a rule.
func (s *AlertStore) DeleteRule(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM alerts_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return expectRow(res, "rule", id)
}

// CountRules returns the number of stored rules.
func (s *AlertStore) CountRules(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts_rules`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rules: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRule(sc scanner) (models.AlertRule, error) {
	var (
		r         models.AlertRule
		condition string
		actions   string
		enabled   int
	)
	err := sc.Scan(&r.ID, &r.Name, &r.MetricID, &condition, &r.Threshold, &r.Duration,
		&actions, &enabled, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("scan rule row: %w", err)
	}
	r.Condition = models.AlertCondition(condition)
	r.IsEnabled = enabled != 0
	if err := json.Unmarshal([]byte(actions), &r.Actions); err != nil {
		return r, fmt.Errorf("decode actions of rule %s: %w", r.ID, err)
	}
	if r.Actions == nil {
		r.Actions = []models.AlertAction{}
	}
	return r, nil
}

// -- Triggered alerts --

// InsertTriggered inserts a bell entry.
func (s *AlertStore) InsertTriggered(ctx context.Context, a *models.TriggeredAlert) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alerts_triggered (
			id, title, severity, triggered_at, is_read, subscriber_id, subscriber_name
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, string(a.Severity), a.Timestamp.UTC(), boolInt(a.IsRead),
		a.SubscriberID, a.SubscriberName,
	)
	if err != nil {
		return fmt.Errorf("insert triggered alert: %w", err)
	}
	return nil
}

// ListTriggered returns the bell entries, newest first.
func (s *AlertStore) ListTriggered(ctx context.Context) ([]models.TriggeredAlert, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, severity, triggered_at, is_read, subscriber_id, subscriber_name
		FROM alerts_triggered ORDER BY triggered_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list triggered alerts: %w", err)
	}
	defer rows.Close()

	alerts := []models.TriggeredAlert{}
	for rows.Next() {
		var (
			a        models.TriggeredAlert
			severity string
			read     int
		)
		if err := rows.Scan(&a.ID, &a.Title, &severity, &a.Timestamp, &read,
			&a.SubscriberID, &a.SubscriberName); err != nil {
			return nil, fmt.Errorf("scan triggered alert row: %w", err)
		}
		a.Severity = models.Status(severity)
		a.IsRead = read != 0
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// MarkRead marks one alert read. It reports whether the alert was unread.
func (s *AlertStore) MarkRead(ctx context.Context, id string) (bool, error) {
	var read int
	err := s.db.QueryRowContext(ctx, `SELECT is_read FROM alerts_triggered WHERE id = ?`, id).Scan(&read)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("triggered alert %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("get triggered alert: %w", err)
	}
	if read != 0 {
		return false, nil
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE alerts_triggered SET is_read = 1 WHERE id = ?`, id); err != nil {
		return false, fmt.Errorf("mark alert read: %w", err)
	}
	return true, nil
}

// MarkAllRead marks every alert read and returns the IDs that changed.
func (s *AlertStore) MarkAllRead(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.tx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM alerts_triggered WHERE is_read = 0 ORDER BY rowid`)
		if err != nil {
			return err
		}
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE alerts_triggered SET is_read = 1 WHERE is_read = 0`)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("mark all alerts read: %w", err)
	}
	return ids, nil
}

// UnreadCount returns the number of unread bell entries.
func (s *AlertStore) UnreadCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts_triggered WHERE is_read = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return n, nil
}

// CountTriggered returns the number of bell entries.
func (s *AlertStore) CountTriggered(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts_triggered`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count triggered alerts: %w", err)
	}
	return n, nil
}

func (s *AlertStore) tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func expectRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s rows affected: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// seedTime places a seed row age before start.
func seedTime(start time.Time, age time.Duration) time.Time {
	return start.Add(-age).UTC()
}
