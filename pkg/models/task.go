package models

import "time"

// TaskDateLayout is the dd/Mon/yy form tasks are displayed in.
const TaskDateLayout = "02/Jan/06"

// TaskStatus is a task's workflow state.
type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Unassigned is the assignee of a task nobody has picked up.
const Unassigned = "Unassigned"

// Task is a work item in the workbench queue.
type Task struct {
	Key      string     `json:"key" yaml:"key" example:"TASK-123"`
	Summary  string     `json:"summary" yaml:"summary" example:"Fix login button alignment"`
	Reporter string     `json:"reporter" yaml:"reporter" example:"Jane Doe"`
	Assignee string     `json:"assignee" yaml:"assignee" example:"John Smith"`
	Status   TaskStatus `json:"status" yaml:"status" example:"IN_PROGRESS"`
	Created  string     `json:"created" yaml:"created" example:"01/Sep/25"`
	Due      string     `json:"due" yaml:"due" example:"05/Sep/25"`
}

// DueTime parses Due. ok is false when Due is not in TaskDateLayout.
func (t Task) DueTime() (time.Time, bool) {
	ts, err := time.Parse(TaskDateLayout, t.Due)
	return ts, err == nil
}
