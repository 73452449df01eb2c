package scheduler

import (
	"github.com/julianstephens/pomoplan/internal/metrics"
	"github.com/julianstephens/pomoplan/internal/models"
)

// RollingRequest carries everything a re-planning pass needs.
type RollingRequest struct {
	RemainingTasks    []models.Task
	CompletedSessions []models.CompletedSession
	// FocusHistory feeds the focus profile. When nil, CompletedSessions is
	// used instead.
	FocusHistory []models.CompletedSession
	// PreviousSessions is the prior cycle's plan. When empty, no daily
	// adjustment is applied.
	PreviousSessions []models.ScheduledSession
	Preferences      models.UserPreferences
	CurrentDay       int
	PomodoroMinutes  int
	// WeeklyMetrics supplies the fatigue indicator. Nil means no fatigue.
	WeeklyMetrics *models.WeeklyMetrics
}

// RollingCycle explains how a rolling plan was sized.
type RollingCycle struct {
	Tasks              []models.Task
	DailyMetrics       []models.DailyMetrics
	FocusProfile       models.FocusProfile
	AvailableMinutes   int
	CapacityMultiplier float64
	Proposal           models.ScheduleProposal
}

// PlanRolling re-plans the next cycle from actual progress.
func (s *Scheduler) PlanRolling(req RollingRequest) (models.ScheduleProposal, error) {
	cycle, err := s.RollingCycle(req)
	if err != nil {
		return models.ScheduleProposal{}, err
	}
	return cycle.Proposal, nil
}

// RollingCycle runs a rolling re-plan and returns its intermediate signals
// alongside the proposal.
func (s *Scheduler) RollingCycle(req RollingRequest) (RollingCycle, error) {
	if req.PomodoroMinutes <= 0 {
		return RollingCycle{}, ErrInvalidPomodoroLength
	}

	tasks := ApplyProgress(req.RemainingTasks, req.CompletedSessions)

	var daily []models.DailyMetrics
	if len(req.PreviousSessions) > 0 {
		week := metrics.RollingWeek(req.PreviousSessions, req.CompletedSessions)
		daily = week[:]
	}

	fatigue := 0.0
	if req.WeeklyMetrics != nil {
		fatigue = req.WeeklyMetrics.FatigueIndicator
	}

	history := req.FocusHistory
	if history == nil {
		history = req.CompletedSessions
	}
	profile := BuildFocusProfile(history)
	week := WeightedWeek(req.Preferences, req.PomodoroMinutes, profile)
	available := totalMinutes(week)
	ceiling := AdjustCapacity(available, daily, fatigue)

	proposal := PackSessions(
		PrioritizeTasks(tasks, req.CurrentDay),
		week,
		ceiling,
		req.PomodoroMinutes,
		req.Preferences.MaxConsecutivePomodoros,
	)

	return RollingCycle{
		Tasks:              tasks,
		DailyMetrics:       daily,
		FocusProfile:       profile,
		AvailableMinutes:   available,
		CapacityMultiplier: CapacityMultiplier(daily, fatigue),
		Proposal:           proposal,
	}, nil
}

// ApplyProgress subtracts logged hours from each task's estimate and drops
// tasks with nothing left. The input slice is not modified.
func ApplyProgress(tasks []models.Task, completed []models.CompletedSession) []models.Task {
	logged := make(map[string]int)
	for _, c := range completed {
		logged[c.TaskID] += c.DurationMinutes
	}

	remaining := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		hours := t.EstimatedHours - float64(logged[t.ID])/60
		if hours <= 0 {
			continue
		}
		t.EstimatedHours = hours
		remaining = append(remaining, t)
	}
	return remaining
}
