package workbench

import (
	"fmt"
	"slices"
	"strings"

	"github.com/HerbHall/olympushub/pkg/models"
)

// Queue names a sidebar task list.
type Queue string

const (
	QueueAll      Queue = "tasks-all"
	QueueAssigned Queue = "tasks-assigned"
	QueueOpen     Queue = "tasks-open"
)

// ParseQueue maps a queue name to a Queue. Empty means QueueAll.
func ParseQueue(s string) (Queue, error) {
	switch q := Queue(strings.ToLower(strings.TrimSpace(s))); q {
	case "":
		return QueueAll, nil
	case QueueAll, QueueAssigned, QueueOpen:
		return q, nil
	}
	return "", fmt.Errorf("unknown queue %q", s)
}

// Query selects and orders tasks.
type Query struct {
	Queue Queue
	// Assignee keeps only tasks assigned to this person when set.
	Assignee string
	// SortByDue orders by due date; Desc reverses it.
	SortByDue bool
	Desc      bool
}

// Apply filters and orders tasks in place and returns the result.
//
// tasks-assigned keeps tasks someone has picked up, tasks-open keeps tasks
// in the OPEN state. Due dates that do not parse sort after every valid date
// in either direction.
func (q Query) Apply(tasks []models.Task) []models.Task {
	tasks = slices.DeleteFunc(tasks, func(t models.Task) bool {
		switch q.Queue {
		case QueueAssigned:
			if t.Assignee == "" || t.Assignee == models.Unassigned {
				return true
			}
		case QueueOpen:
			if t.Status != models.TaskOpen {
				return true
			}
		}
		return q.Assignee != "" && !strings.EqualFold(t.Assignee, q.Assignee)
	})

	if q.SortByDue {
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			ta, okA := a.DueTime()
			tb, okB := b.DueTime()
			switch {
			case !okA && !okB:
				return 0
			case !okA:
				return 1
			case !okB:
				return -1
			}
			if q.Desc {
				return tb.Compare(ta)
			}
			return ta.Compare(tb)
		})
	}
	return tasks
}
