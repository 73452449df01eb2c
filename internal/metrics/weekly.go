package metrics

import (
	"math"

	"github.com/julianstephens/pomoplan/internal/models"
)

const (
	maxEstimationAccuracy = 2.0
	healthyAdherence      = 0.6
)

// Weekly aggregates a week of planned and completed sessions. Calling it twice
// with the same inputs yields identical results.
func Weekly(tasks []models.Task, scheduled []models.ScheduledSession, completed []models.CompletedSession) models.WeeklyMetrics {
	wm := models.WeeklyMetrics{
		Days: Week(scheduled, completed),
	}

	plannedMinutes := 0
	for _, s := range scheduled {
		plannedMinutes += s.Duration()
	}
	actualMinutes := 0
	focusSum := 0.0
	for _, c := range completed {
		actualMinutes += c.DurationMinutes
		focusSum += c.FocusRating
	}

	wm.PlannedHours = float64(plannedMinutes) / 60
	wm.ActualHours = float64(actualMinutes) / 60

	if wm.PlannedHours > 0 {
		wm.EstimationAccuracy = math.Min(wm.ActualHours/wm.PlannedHours, maxEstimationAccuracy)
	}
	if len(completed) > 0 {
		wm.AverageFocus = focusSum / float64(len(completed))
	}

	wm.BestFocusTime, wm.WorstFocusTime = focusExtremes(completed)
	wm.FatigueIndicator = FatigueIndicator(wm.Days[:])
	wm.TaskPerformance = TaskPerformance(tasks, completed)

	return wm
}

// FatigueIndicator is 1 minus the mean adherence when that mean drops below
// the healthy threshold, and 0 otherwise.
func FatigueIndicator(days []models.DailyMetrics) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range days {
		sum += d.AdherenceScore
	}
	avg := sum / float64(len(days))
	if avg < healthyAdherence {
		return 1 - avg
	}
	return 0
}

// TaskPerformance reports logged effort and focus for each task, in task order.
func TaskPerformance(tasks []models.Task, completed []models.CompletedSession) []models.TaskPerformance {
	minutes := make(map[string]int)
	focusSum := make(map[string]float64)
	count := make(map[string]int)
	for _, c := range completed {
		minutes[c.TaskID] += c.DurationMinutes
		focusSum[c.TaskID] += c.FocusRating
		count[c.TaskID]++
	}

	perf := make([]models.TaskPerformance, 0, len(tasks))
	for _, t := range tasks {
		tp := models.TaskPerformance{
			TaskID:         t.ID,
			EstimatedHours: t.EstimatedHours,
			ActualHours:    float64(minutes[t.ID]) / 60,
		}
		if n := count[t.ID]; n > 0 {
			tp.AverageFocus = focusSum[t.ID] / float64(n)
		}
		if tp.ActualHours > 0 {
			tp.Efficiency = (tp.AverageFocus / maxFocusRating) * (tp.EstimatedHours / tp.ActualHours)
		}
		perf = append(perf, tp)
	}
	return perf
}

// focusExtremes finds the sampled buckets with the strictly highest and lowest
// mean focus. Unsampled buckets are skipped and earlier buckets win ties.
func focusExtremes(completed []models.CompletedSession) (best, worst models.TimeOfDay) {
	var sums [models.TimeOfDayCount]float64
	var counts [models.TimeOfDayCount]int
	for _, c := range completed {
		if i := c.TimeOfDay.Index(); i >= 0 {
			sums[i] += c.FocusRating
			counts[i]++
		}
	}

	bestIdx, worstIdx := -1, -1
	var bestAvg, worstAvg float64
	for i := range models.TimesOfDay {
		if counts[i] == 0 {
			continue
		}
		avg := sums[i] / float64(counts[i])
		if bestIdx < 0 || avg > bestAvg {
			bestIdx, bestAvg = i, avg
		}
		if worstIdx < 0 || avg < worstAvg {
			worstIdx, worstAvg = i, avg
		}
	}

	if bestIdx >= 0 {
		best = models.TimesOfDay[bestIdx]
	}
	if worstIdx >= 0 {
		worst = models.TimesOfDay[worstIdx]
	}
	return best, worst
}
