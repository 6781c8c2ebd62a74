package workbench

import (
	"database/sql"

	"github.com/HerbHall/olympushub/pkg/plugin"
)

func migrations() []plugin.Migration {
	return []plugin.Migration{
		{
			Version:     1,
			Description: "create workbench task table",
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS workbench_tasks (
					key TEXT PRIMARY KEY,
					summary TEXT NOT NULL,
					reporter TEXT NOT NULL DEFAULT '',
					assignee TEXT NOT NULL DEFAULT 'Unassigned',
					status TEXT NOT NULL DEFAULT 'OPEN',
					created TEXT NOT NULL DEFAULT '',
					due TEXT NOT NULL DEFAULT '',
					updated_at DATETIME
				)`)
				return err
			},
		},
	}
}
