package scheduler

import (
	"testing"

	"github.com/julianstephens/pomoplan/internal/models"
)

func TestTaskPriority(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		day  int
		want float64
	}{
		{
			name: "no deadline",
			task: models.Task{Urgency: 3, EstimatedHours: 2},
			day:  0,
			want: 320,
		},
		{
			name: "future deadline",
			task: models.Task{Urgency: 1, EstimatedHours: 1, DeadlineDayIndex: intPtr(2)},
			day:  0,
			want: 100 + 250 + 10,
		},
		{
			name: "deadline today",
			task: models.Task{Urgency: 0, EstimatedHours: 0, DeadlineDayIndex: intPtr(3)},
			day:  3,
			want: 10000,
		},
		{
			name: "deadline passed",
			task: models.Task{Urgency: 2, EstimatedHours: 0.5, DeadlineDayIndex: intPtr(1)},
			day:  4,
			want: 200 + 10000 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskPriority(tt.task, tt.day); !approxEqual(got, tt.want) {
				t.Errorf("TaskPriority() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPrioritizeTasks_DeadlineTodayBeatsUrgency(t *testing.T) {
	tasks := []models.Task{
		{ID: "urgent", Urgency: 5, EstimatedHours: 1, DeadlineDayIndex: intPtr(1)},
		{ID: "due", Urgency: 4, EstimatedHours: 1, DeadlineDayIndex: intPtr(0)},
	}

	ordered := PrioritizeTasks(tasks, 0)

	if ordered[0].ID != "due" {
		t.Errorf("expected task due today first, got %s", ordered[0].ID)
	}
	if tasks[0].ID != "urgent" {
		t.Error("expected input order to be untouched")
	}
}

func TestPrioritizeTasks_StableForTies(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Urgency: 1, EstimatedHours: 1},
		{ID: "b", Urgency: 2, EstimatedHours: 1},
		{ID: "c", Urgency: 1, EstimatedHours: 1},
		{ID: "d", Urgency: 1, EstimatedHours: 1},
	}

	ordered := PrioritizeTasks(tasks, 0)

	want := []string{"b", "a", "c", "d"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ordered[i].ID)
		}
	}
}

func TestPrioritizeTasks_Empty(t *testing.T) {
	if got := PrioritizeTasks(nil, 0); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
