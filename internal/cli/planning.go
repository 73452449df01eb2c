package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/metrics"
	"github.com/julianstephens/pomoplan/internal/scheduler"
	"github.com/julianstephens/pomoplan/internal/storage"
)

// ErrPlanningTimeout is returned when a planning call outlives its deadline.
var ErrPlanningTimeout = errors.New("planning timed out")

// RunPlanning runs fn on its own goroutine and waits for it until ctx is
// done or timeout elapses. A late result is discarded. A non-positive
// timeout waits on ctx alone.
func RunPlanning[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w after %s", ErrPlanningTimeout, timeout)
		}
		return zero, ctx.Err()
	}
}

// PlanWeek builds a cold-start plan from the remaining work and saves it as
// the start of a new cycle. Logged sessions only reduce task estimates.
func (c *Context) PlanWeek(ctx context.Context) (storage.StoredProposal, error) {
	cycle, err := storage.LoadCycle(c.Store, c.UserID)
	if err != nil {
		return storage.StoredProposal{}, err
	}
	prefs, err := cycle.Preferences()
	if err != nil {
		return storage.StoredProposal{}, err
	}

	today := c.Today()
	pomodoro := cycle.Settings.PomodoroMin
	remaining := scheduler.ApplyProgress(cycle.Tasks, cycle.History())
	timeout := time.Duration(cycle.Settings.PlanningTimeoutSec) * time.Second

	logger.Debug("Planning week", "tasks", len(remaining), "day", today, "pomodoro", pomodoro)
	proposal, err := RunPlanning(ctx, timeout, func() (storage.StoredProposal, error) {
		p, err := c.Scheduler.Plan(remaining, prefs, today, pomodoro)
		return storage.StoredProposal{Proposal: p, CurrentDay: today, PomodoroMinutes: pomodoro}, err
	})
	if err != nil {
		return storage.StoredProposal{}, err
	}

	return proposal, c.saveProposal(proposal)
}

// Replan re-plans from the current cycle's outcome and saves the result as
// the start of the next cycle. Without a saved plan it behaves like a cold
// start with history.
func (c *Context) Replan(ctx context.Context) (scheduler.RollingCycle, storage.StoredProposal, error) {
	cycle, err := storage.LoadCycle(c.Store, c.UserID)
	if err != nil {
		return scheduler.RollingCycle{}, storage.StoredProposal{}, err
	}
	prefs, err := cycle.Preferences()
	if err != nil {
		return scheduler.RollingCycle{}, storage.StoredProposal{}, err
	}

	today := c.Today()
	pomodoro := cycle.Settings.PomodoroMin
	previous := cycle.Proposal.Proposal.Sessions
	weekly := metrics.Weekly(cycle.Tasks, previous, cycle.Current)

	req := scheduler.RollingRequest{
		// The current cycle's sessions are subtracted by the planner itself.
		RemainingTasks:    scheduler.ApplyProgress(cycle.Tasks, cycle.Earlier),
		CompletedSessions: cycle.Current,
		FocusHistory:      cycle.History(),
		PreviousSessions:  previous,
		Preferences:       prefs,
		CurrentDay:        today,
		PomodoroMinutes:   pomodoro,
		WeeklyMetrics:     &weekly,
	}
	timeout := time.Duration(cycle.Settings.PlanningTimeoutSec) * time.Second

	logger.Debug("Re-planning week", "previous_sessions", len(previous), "completed", len(cycle.Current), "fatigue", weekly.FatigueIndicator)
	rolling, err := RunPlanning(ctx, timeout, func() (scheduler.RollingCycle, error) {
		return c.Scheduler.RollingCycle(req)
	})
	if err != nil {
		return scheduler.RollingCycle{}, storage.StoredProposal{}, err
	}

	stored := storage.StoredProposal{Proposal: rolling.Proposal, CurrentDay: today, PomodoroMinutes: pomodoro}
	return rolling, stored, c.saveProposal(stored)
}

func (c *Context) saveProposal(p storage.StoredProposal) error {
	if err := storage.SaveProposal(c.Store, c.UserID, p); err != nil {
		return err
	}
	logger.Info("Saved plan", "sessions", len(p.Proposal.Sessions), "planned_hours", p.Proposal.TotalPlannedHours)
	return nil
}
