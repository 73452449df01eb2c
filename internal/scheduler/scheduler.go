// Package scheduler turns tasks, weekly availability, and focus history into
// a capacity-bounded week of pomodoro sessions.
//
// Every function here is pure: inputs are never mutated and each call
// returns freshly allocated results, so calls for independent users or
// planning cycles need no coordination.
package scheduler

import (
	"errors"

	"github.com/julianstephens/pomoplan/internal/models"
)

// ErrInvalidPomodoroLength is returned when the pomodoro length is not positive.
var ErrInvalidPomodoroLength = errors.New("pomodoro length must be positive")

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Plan builds a cold-start schedule with no history.
func (s *Scheduler) Plan(tasks []models.Task, prefs models.UserPreferences, currentDay int, pomodoroMinutes int) (models.ScheduleProposal, error) {
	if pomodoroMinutes <= 0 {
		return models.ScheduleProposal{}, ErrInvalidPomodoroLength
	}

	week := WeightedWeek(prefs, pomodoroMinutes, BuildFocusProfile(nil))
	ceiling := AdjustCapacity(totalMinutes(week), nil, 0)

	return PackSessions(
		PrioritizeTasks(tasks, currentDay),
		week,
		ceiling,
		pomodoroMinutes,
		prefs.MaxConsecutivePomodoros,
	), nil
}

// WeightedWeek computes and weights the free blocks of every day.
func WeightedWeek(prefs models.UserPreferences, pomodoroMinutes int, profile models.FocusProfile) [models.DaysPerWeek][]models.WeightedTimeBlock {
	var week [models.DaysPerWeek][]models.WeightedTimeBlock
	for day := 0; day < models.DaysPerWeek; day++ {
		week[day] = WeightBlocks(CalculateAvailableBlocks(day, prefs, pomodoroMinutes), profile)
	}
	return week
}
