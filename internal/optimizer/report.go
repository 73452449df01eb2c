package optimizer

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/metrics"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/storage"
)

// Report is the outcome of the current planning cycle.
type Report struct {
	HasProposal     bool
	Proposal        storage.StoredProposal
	Weekly          models.WeeklyMetrics
	Performance     []models.TaskPerformance
	Recommendations []models.Recommendation
	CurrentMax      int
}

// Analyzer compares the latest saved plan against logged sessions and
// suggests tuning changes.
type Analyzer struct {
	store  storage.Provider
	userID string
}

// NewAnalyzer creates a new Analyzer for userID.
func NewAnalyzer(store storage.Provider, userID string) *Analyzer {
	return &Analyzer{store: store, userID: userID}
}

// Report computes weekly metrics for the current cycle and the
// recommendations that follow from them. Task performance covers the whole
// session history so estimates are judged against all logged work.
func (a *Analyzer) Report() (Report, error) {
	cycle, err := storage.LoadCycle(a.store, a.userID)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(cycle), nil
}

// BuildReport derives a Report from an already loaded cycle.
func BuildReport(cycle storage.Cycle) Report {
	weekly := metrics.Weekly(cycle.Tasks, cycle.Proposal.Proposal.Sessions, cycle.Current)
	performance := metrics.TaskPerformance(cycle.Tasks, cycle.History())
	currentMax := cycle.Settings.MaxConsecutivePomodoros

	return Report{
		HasProposal:     cycle.HasProposal,
		Proposal:        cycle.Proposal,
		Weekly:          weekly,
		Performance:     performance,
		Recommendations: Analyze(cycle.History(), performance, currentMax, weekly, weekly.Days[:]),
		CurrentMax:      currentMax,
	}
}

// Apply persists a recommendation. Estimate adjustments scale the task's
// estimate and consecutive limits rewrite the setting. Load reductions are
// advisory, so applied is false for them.
func (a *Analyzer) Apply(rec models.Recommendation) (applied bool, err error) {
	switch rec.Type {
	case models.RecommendEstimateAdjustment:
		task, err := a.store.GetTask(rec.TaskID)
		if err != nil {
			return false, fmt.Errorf("failed to get task %s: %w", rec.TaskID, err)
		}
		if rec.Value <= 0 {
			return false, nil
		}
		task.EstimatedHours *= rec.Value
		if err := a.store.UpdateTask(task); err != nil {
			return false, fmt.Errorf("failed to update task %s: %w", rec.TaskID, err)
		}
		return true, nil

	case models.RecommendConsecutiveLimit:
		settings, err := a.store.GetSettings()
		if err != nil {
			return false, fmt.Errorf("failed to get settings: %w", err)
		}
		models.ApplyDefaultSettings(&settings)
		limit := int(rec.Value)
		if limit < 1 || limit == settings.MaxConsecutivePomodoros {
			return false, nil
		}
		settings.MaxConsecutivePomodoros = limit
		if err := a.store.SaveSettings(settings); err != nil {
			return false, fmt.Errorf("failed to save settings: %w", err)
		}
		return true, nil
	}
	return false, nil
}
