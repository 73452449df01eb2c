package scheduler

import (
	"sort"

	"github.com/julianstephens/pomoplan/internal/models"
)

const (
	urgencyWeight    = 100.0
	sizeWeight       = 10.0
	deadlinePressure = 500.0
	overdueBonus     = 10000.0
)

// TaskPriority scores a task for scheduling order relative to currentDay.
func TaskPriority(task models.Task, currentDay int) float64 {
	score := task.Urgency*urgencyWeight + task.EstimatedHours*sizeWeight

	if task.HasDeadline() {
		daysUntil := *task.DeadlineDayIndex - currentDay
		if daysUntil > 0 {
			score += deadlinePressure / float64(daysUntil)
		} else {
			score += overdueBonus
		}
	}

	return score
}

type scoredTask struct {
	task  models.Task
	score float64
}

// PrioritizeTasks returns a copy of tasks ordered by descending priority.
// Ties keep their input order.
func PrioritizeTasks(tasks []models.Task, currentDay int) []models.Task {
	scored := make([]scoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = scoredTask{task: t, score: TaskPriority(t, currentDay)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]models.Task, len(scored))
	for i, st := range scored {
		ordered[i] = st.task
	}
	return ordered
}
