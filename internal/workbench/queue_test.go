package workbench

import (
	"slices"
	"testing"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
)

func keys(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Key
	}
	return out
}

func TestParseQueue(t *testing.T) {
	tests := []struct {
		in      string
		want    Queue
		wantErr bool
	}{
		{"", QueueAll, false},
		{"tasks-all", QueueAll, false},
		{" Tasks-Open ", QueueOpen, false},
		{"tasks-assigned", QueueAssigned, false},
		{"tasks-mine", "", true},
	}
	for _, tt := range tests {
		got, err := ParseQueue(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseQueue(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestQueryApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"all in catalog order", Query{Queue: QueueAll}, []string{"ABHI-1", "TASK-123", "TASK-122", "TASK-121"}},
		{"due ascending", Query{Queue: QueueAll, SortByDue: true}, []string{"TASK-121", "TASK-123", "TASK-122", "ABHI-1"}},
		{"due descending", Query{Queue: QueueAll, SortByDue: true, Desc: true}, []string{"ABHI-1", "TASK-122", "TASK-123", "TASK-121"}},
		{"assigned", Query{Queue: QueueAssigned}, []string{"TASK-123", "TASK-122"}},
		{"open", Query{Queue: QueueOpen}, []string{"ABHI-1", "TASK-122"}},
		{"assignee any case", Query{Queue: QueueAll, Assignee: "jane doe"}, []string{"TASK-122"}},
		{"open for unassigned", Query{Queue: QueueOpen, Assignee: models.Unassigned}, []string{"ABHI-1"}},
		{"assigned to nobody known", Query{Queue: QueueAssigned, Assignee: "Ghost"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys(tt.query.Apply(catalog.Default().Tasks()))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryApply_UnparseableDueSortsLast(t *testing.T) {
	tasks := []models.Task{
		{Key: "A", Due: "someday"},
		{Key: "B", Due: "02/Jan/25"},
		{Key: "C", Due: "01/Jan/25"},
	}
	for _, desc := range []bool{false, true} {
		got := keys(Query{SortByDue: true, Desc: desc}.Apply(slices.Clone(tasks)))
		if got[2] != "A" {
			t.Errorf("desc=%v: order %v, want A last", desc, got)
		}
	}
}
