package scheduler

import (
	"errors"
	"testing"

	"github.com/julianstephens/pomoplan/internal/models"
)

func TestApplyProgress(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", EstimatedHours: 2},
		{ID: "b", EstimatedHours: 1},
		{ID: "c", EstimatedHours: 3},
	}
	completed := []models.CompletedSession{
		{TaskID: "a", DurationMinutes: 30},
		{TaskID: "a", DurationMinutes: 30},
		{TaskID: "b", DurationMinutes: 75},
		{TaskID: "unknown", DurationMinutes: 25},
	}

	remaining := ApplyProgress(tasks, completed)

	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining tasks, got %d: %+v", len(remaining), remaining)
	}
	if remaining[0].ID != "a" || !approxEqual(remaining[0].EstimatedHours, 1) {
		t.Errorf("expected a with 1 hour left, got %+v", remaining[0])
	}
	if remaining[1].ID != "c" || remaining[1].EstimatedHours != 3 {
		t.Errorf("expected c untouched, got %+v", remaining[1])
	}
	if tasks[0].EstimatedHours != 2 {
		t.Error("expected input tasks to be untouched")
	}
}

func TestPlanRolling_NoHistoryMatchesColdStart(t *testing.T) {
	s := New()
	tasks := []models.Task{{ID: "a", EstimatedHours: 3, Urgency: 2}}

	cold, err := s.Plan(tasks, defaultPrefs(), 0, 25)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	rolling, err := s.PlanRolling(RollingRequest{
		RemainingTasks:  tasks,
		Preferences:     defaultPrefs(),
		CurrentDay:      0,
		PomodoroMinutes: 25,
	})
	if err != nil {
		t.Fatalf("PlanRolling failed: %v", err)
	}

	if !approxEqual(cold.CapacityMinutes, rolling.CapacityMinutes) {
		t.Errorf("expected equal ceilings, got %f vs %f", cold.CapacityMinutes, rolling.CapacityMinutes)
	}
	if len(cold.Sessions) != len(rolling.Sessions) {
		t.Errorf("expected equal session counts, got %d vs %d", len(cold.Sessions), len(rolling.Sessions))
	}
}

func TestRollingCycle_FatiguedHistoryShrinksCapacity(t *testing.T) {
	s := New()
	var previous []models.ScheduledSession
	for day := 0; day < models.DaysPerWeek; day++ {
		previous = append(previous, models.ScheduledSession{
			ID: "prev", TaskID: "a", DayOfWeek: day, StartMinutes: 480, EndMinutes: 505,
		})
	}
	completed := []models.CompletedSession{
		{TaskID: "a", DurationMinutes: 5, FocusRating: 4, DayOfWeek: 0, TimeOfDay: models.TimeOfDayDawn},
	}

	cycle, err := s.RollingCycle(RollingRequest{
		RemainingTasks:    []models.Task{{ID: "a", EstimatedHours: 200}},
		CompletedSessions: completed,
		PreviousSessions:  previous,
		Preferences:       defaultPrefs(),
		CurrentDay:        0,
		PomodoroMinutes:   25,
	})
	if err != nil {
		t.Fatalf("RollingCycle failed: %v", err)
	}

	if len(cycle.DailyMetrics) != models.DaysPerWeek {
		t.Fatalf("expected 7 daily metrics, got %d", len(cycle.DailyMetrics))
	}
	for _, d := range cycle.DailyMetrics {
		if d.Status != models.StatusFatigued {
			t.Errorf("day %d: expected fatigued, got %s", d.DayOfWeek, d.Status)
		}
	}
	if !approxEqual(cycle.CapacityMultiplier, 0.7) {
		t.Errorf("expected multiplier 0.7, got %f", cycle.CapacityMultiplier)
	}
	if cycle.AvailableMinutes != 5880 {
		t.Errorf("expected 5880 available minutes, got %d", cycle.AvailableMinutes)
	}
	if !approxEqual(cycle.Proposal.CapacityMinutes, 5880*0.75*0.7) {
		t.Errorf("expected ceiling %f, got %f", 5880*0.75*0.7, cycle.Proposal.CapacityMinutes)
	}
	if cycle.Proposal.TotalPlannedHours*60 > cycle.Proposal.CapacityMinutes {
		t.Errorf("planned minutes exceed ceiling")
	}
	if cycle.FocusProfile.SampleCount != 1 {
		t.Errorf("expected focus profile from 1 completed session, got %d", cycle.FocusProfile.SampleCount)
	}
}

func TestRollingCycle_AdHocWorkIsNotPenalized(t *testing.T) {
	s := New()
	previous := []models.ScheduledSession{
		{ID: "p1", TaskID: "a", DayOfWeek: 0, StartMinutes: 480, EndMinutes: 505},
	}
	var completed []models.CompletedSession
	for day := 0; day < models.DaysPerWeek; day++ {
		completed = append(completed, models.CompletedSession{
			TaskID: "a", DurationMinutes: 25, FocusRating: 4, DayOfWeek: day, TimeOfDay: models.TimeOfDayDawn,
		})
	}

	cycle, err := s.RollingCycle(RollingRequest{
		RemainingTasks:    []models.Task{{ID: "a", EstimatedHours: 10}},
		CompletedSessions: completed,
		PreviousSessions:  previous,
		Preferences:       defaultPrefs(),
		PomodoroMinutes:   25,
	})
	if err != nil {
		t.Fatalf("RollingCycle failed: %v", err)
	}

	for _, d := range cycle.DailyMetrics {
		if d.AdherenceScore != 1.0 || d.Status != models.StatusOnTrack {
			t.Errorf("day %d: expected on-track adherence 1.0, got %+v", d.DayOfWeek, d)
		}
	}
	if !approxEqual(cycle.CapacityMultiplier, 1.0) {
		t.Errorf("expected full capacity, got %f", cycle.CapacityMultiplier)
	}
	if len(cycle.Tasks) != 1 || !approxEqual(cycle.Tasks[0].EstimatedHours, 10-175.0/60) {
		t.Errorf("expected logged hours subtracted, got %+v", cycle.Tasks)
	}
}

func TestRollingCycle_WeeklyFatigueDiscount(t *testing.T) {
	s := New()

	cycle, err := s.RollingCycle(RollingRequest{
		RemainingTasks:  []models.Task{{ID: "a", EstimatedHours: 1}},
		Preferences:     defaultPrefs(),
		PomodoroMinutes: 25,
		WeeklyMetrics:   &models.WeeklyMetrics{FatigueIndicator: 0.5},
	})
	if err != nil {
		t.Fatalf("RollingCycle failed: %v", err)
	}

	if !approxEqual(cycle.CapacityMultiplier, 0.85) {
		t.Errorf("expected multiplier 0.85, got %f", cycle.CapacityMultiplier)
	}
}

func TestPlanRolling_InvalidPomodoro(t *testing.T) {
	_, err := New().PlanRolling(RollingRequest{Preferences: defaultPrefs()})
	if !errors.Is(err, ErrInvalidPomodoroLength) {
		t.Errorf("expected ErrInvalidPomodoroLength, got %v", err)
	}
}

func TestRollingCycle_FocusHistoryOverridesCompleted(t *testing.T) {
	s := New()
	history := []models.CompletedSession{
		{TaskID: "a", DurationMinutes: 25, FocusRating: 5, TimeOfDay: models.TimeOfDayNight},
		{TaskID: "a", DurationMinutes: 25, FocusRating: 5, TimeOfDay: models.TimeOfDayNight},
		{TaskID: "a", DurationMinutes: 25, FocusRating: 1, TimeOfDay: models.TimeOfDayDawn},
	}

	cycle, err := s.RollingCycle(RollingRequest{
		RemainingTasks:  []models.Task{{ID: "a", EstimatedHours: 4}},
		FocusHistory:    history,
		Preferences:     defaultPrefs(),
		PomodoroMinutes: 25,
	})
	if err != nil {
		t.Fatalf("RollingCycle failed: %v", err)
	}

	if cycle.FocusProfile.SampleCount != 3 {
		t.Errorf("expected 3 focus samples, got %d", cycle.FocusProfile.SampleCount)
	}
	if got := cycle.FocusProfile.Scores[models.TimeOfDayNight.Index()]; got != 5 {
		t.Errorf("expected night focus 5, got %v", got)
	}
	// Focus history does not count as progress.
	if len(cycle.Tasks) != 1 || cycle.Tasks[0].EstimatedHours != 4 {
		t.Errorf("expected task untouched, got %+v", cycle.Tasks)
	}
}
