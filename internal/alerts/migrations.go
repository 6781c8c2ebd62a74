package alerts

import (
	"database/sql"

	"github.com/HerbHall/olympushub/pkg/plugin"
)

func migrations() []plugin.Migration {
	return []plugin.Migration{
		{
			Version:     1,
			Description: "create alert rule and triggered alert tables",
			Up: func(tx *sql.Tx) error {
				stmts := []string{
					`CREATE TABLE IF NOT EXISTS alerts_rules (
						id TEXT PRIMARY KEY,
						name TEXT NOT NULL,
						metric_id TEXT NOT NULL,
						condition TEXT NOT NULL,
						threshold REAL NOT NULL DEFAULT 0,
						duration_minutes INTEGER NOT NULL DEFAULT 0,
						actions TEXT NOT NULL DEFAULT '[]',
						enabled INTEGER NOT NULL DEFAULT 1,
						created_at DATETIME NOT NULL
					)`,
					`CREATE INDEX IF NOT EXISTS idx_alerts_rules_created ON alerts_rules(created_at)`,

					`CREATE TABLE IF NOT EXISTS alerts_triggered (
						id TEXT PRIMARY KEY,
						title TEXT NOT NULL,
						severity TEXT NOT NULL,
						triggered_at DATETIME NOT NULL,
						is_read INTEGER NOT NULL DEFAULT 0,
						subscriber_id TEXT NOT NULL DEFAULT '',
						subscriber_name TEXT NOT NULL DEFAULT ''
					)`,
					`CREATE INDEX IF NOT EXISTS idx_alerts_triggered_read ON alerts_triggered(is_read)`,
				}
				for _, stmt := range stmts {
					if _, err := tx.Exec(stmt); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
