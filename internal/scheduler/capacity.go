package scheduler

import "github.com/julianstephens/pomoplan/internal/models"

const (
	// safetyMargin is the share of raw free time the packer may ever use.
	safetyMargin = 0.75

	fatigueThreshold = 0.3
	fatigueDiscount  = 0.3

	minCapacityMultiplier = 0.5
	maxCapacityMultiplier = 1.0
)

// CapacityMultiplier derives the usable share of free time from recent daily
// adjustment factors and the weekly fatigue indicator.
func CapacityMultiplier(daily []models.DailyMetrics, fatigueIndicator float64) float64 {
	multiplier := 1.0
	if len(daily) > 0 {
		sum := 0.0
		for _, d := range daily {
			sum += d.AdjustmentFactor
		}
		multiplier = sum / float64(len(daily))
	}

	if fatigueIndicator > fatigueThreshold {
		multiplier *= 1 - fatigueIndicator*fatigueDiscount
	}

	if multiplier < minCapacityMultiplier {
		multiplier = minCapacityMultiplier
	}
	if multiplier > maxCapacityMultiplier {
		multiplier = maxCapacityMultiplier
	}
	return multiplier
}

// AdjustCapacity returns the usable-minutes ceiling for a planning cycle.
// The packer never schedules past it.
func AdjustCapacity(totalAvailableMinutes int, daily []models.DailyMetrics, fatigueIndicator float64) float64 {
	return float64(totalAvailableMinutes) * safetyMargin * CapacityMultiplier(daily, fatigueIndicator)
}
