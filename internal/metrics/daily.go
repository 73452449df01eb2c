// Package metrics derives adherence, focus, and fatigue signals by comparing
// planned sessions with completed ones.
package metrics

import "github.com/julianstephens/pomoplan/internal/models"

const (
	fatiguedAdherence       = 0.5
	fatiguedFocus           = 0.4
	behindAdherence         = 0.75
	overperformingAdherence = 1.1

	fatiguedFactor = 0.7
	behindFactor   = 0.9
	neutralFactor  = 1.0

	// behindFocusFloor is the focus needed for a behind day to be discounted.
	behindFocusFloor = 0.6

	maxFocusRating = 5.0
)

// Daily computes one day's metrics. A day with nothing planned has zero
// adherence.
func Daily(day int, scheduled []models.ScheduledSession, completed []models.CompletedSession) models.DailyMetrics {
	return daily(day, scheduled, completed, false)
}

// RollingDaily computes one day's metrics against the previous cycle's plan.
// Unlike Daily, a day with nothing planned but work logged counts as fully
// adherent, so ad-hoc work is not penalized.
func RollingDaily(day int, previous []models.ScheduledSession, completed []models.CompletedSession) models.DailyMetrics {
	return daily(day, previous, completed, true)
}

// Week computes Daily for all seven days.
func Week(scheduled []models.ScheduledSession, completed []models.CompletedSession) [models.DaysPerWeek]models.DailyMetrics {
	var days [models.DaysPerWeek]models.DailyMetrics
	for day := range days {
		days[day] = Daily(day, scheduled, completed)
	}
	return days
}

// RollingWeek computes RollingDaily for all seven days.
func RollingWeek(previous []models.ScheduledSession, completed []models.CompletedSession) [models.DaysPerWeek]models.DailyMetrics {
	var days [models.DaysPerWeek]models.DailyMetrics
	for day := range days {
		days[day] = RollingDaily(day, previous, completed)
	}
	return days
}

func daily(day int, scheduled []models.ScheduledSession, completed []models.CompletedSession, adHocCounts bool) models.DailyMetrics {
	planned := 0
	for _, s := range scheduled {
		if s.DayOfWeek == day {
			planned += s.Duration()
		}
	}

	actual := 0
	focusSum := 0.0
	focusCount := 0
	for _, c := range completed {
		if c.DayOfWeek != day {
			continue
		}
		actual += c.DurationMinutes
		focusSum += c.FocusRating
		focusCount++
	}

	adherence := 0.0
	switch {
	case planned > 0:
		adherence = float64(actual) / float64(planned)
	case adHocCounts && actual > 0:
		adherence = 1.0
	}

	focus := 0.0
	if focusCount > 0 {
		focus = focusSum / float64(focusCount) / maxFocusRating
	}

	status := Classify(adherence, focus)

	return models.DailyMetrics{
		DayOfWeek:        day,
		Status:           status,
		PlannedMinutes:   planned,
		ActualMinutes:    actual,
		AdherenceScore:   adherence,
		FocusScore:       focus,
		AdjustmentFactor: AdjustmentFactor(status, focus),
	}
}

// Classify maps adherence and focus to a day status. Rules are evaluated in
// order: fatigued, behind, overperforming, on track.
func Classify(adherence, focus float64) models.DailyStatus {
	switch {
	case adherence < fatiguedAdherence || focus < fatiguedFocus:
		return models.StatusFatigued
	case adherence < behindAdherence:
		return models.StatusBehind
	case adherence > overperformingAdherence:
		return models.StatusOverperforming
	default:
		return models.StatusOnTrack
	}
}

// AdjustmentFactor returns the capacity factor a day contributes.
func AdjustmentFactor(status models.DailyStatus, focus float64) float64 {
	switch {
	case status == models.StatusFatigued:
		return fatiguedFactor
	case status == models.StatusBehind && focus > behindFocusFloor:
		return behindFactor
	default:
		return neutralFactor
	}
}
