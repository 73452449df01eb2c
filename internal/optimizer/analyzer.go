package optimizer

import "github.com/julianstephens/pomoplan/internal/models"

const (
	// focusDropRatio is how far a position's average focus must fall relative
	// to the previous position to count as a drop (25% lower).
	focusDropRatio = 0.75

	// confidentSampleSize is the history needed for a confident limit.
	confidentSampleSize = 10

	lowFocusFactor      = 0.6
	lowFocusInflation   = 1.2
	underestimatedRatio = 1.2
	overestimatedRatio  = 0.8

	criticalFatigue   = 0.5
	lowAverageFocus   = 2.5
	strainedDaysLimit = 4

	baseLoadReduction  = 0.7
	focusLoadAllowance = 0.15

	maxFocusRating = 5.0
)

// Analyze runs every heuristic and combines their suggestions in a fixed
// order: consecutive limit, per-task estimates, load reduction.
func Analyze(
	completed []models.CompletedSession,
	performance []models.TaskPerformance,
	currentMaxConsecutive int,
	weekly models.WeeklyMetrics,
	daily []models.DailyMetrics,
) []models.Recommendation {
	recs := []models.Recommendation{ConsecutiveLimit(completed, currentMaxConsecutive)}
	recs = append(recs, EstimateAdjustments(performance)...)
	if rec, ok := LoadReduction(weekly, daily); ok {
		recs = append(recs, rec)
	}
	return recs
}

// ConsecutiveLimit suggests a new maximum run length from the first sequence
// position where average focus drops sharply. Without a drop the current
// maximum is suggested unchanged.
func ConsecutiveLimit(completed []models.CompletedSession, currentMax int) models.Recommendation {
	if currentMax < 1 {
		currentMax = 1
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, c := range completed {
		if c.SequenceNumber == nil || *c.SequenceNumber < 0 {
			continue
		}
		sums[*c.SequenceNumber] += c.FocusRating
		counts[*c.SequenceNumber]++
	}

	suggested := currentMax
	reason := models.ReasonNoFocusDrop
	for pos := 1; pos < currentMax; pos++ {
		if counts[pos-1] == 0 || counts[pos] == 0 {
			continue
		}
		prev := sums[pos-1] / float64(counts[pos-1])
		cur := sums[pos] / float64(counts[pos])
		if cur <= prev*focusDropRatio {
			suggested = pos
			reason = models.ReasonFocusDrop
			break
		}
	}

	if suggested < 1 {
		suggested = 1
	}
	if suggested > currentMax {
		suggested = currentMax
	}

	confidence := 0.5
	if len(completed) >= confidentSampleSize {
		confidence = 0.8
	}

	return models.Recommendation{
		Type:       models.RecommendConsecutiveLimit,
		Value:      float64(suggested),
		Confidence: confidence,
		Reason:     reason,
	}
}

// EstimateAdjustments suggests per-task estimate multipliers for tasks with
// logged time. Tasks whose estimates were close enough get nothing.
func EstimateAdjustments(performance []models.TaskPerformance) []models.Recommendation {
	var recs []models.Recommendation
	for _, tp := range performance {
		if tp.ActualHours <= 0 || tp.EstimatedHours <= 0 {
			continue
		}

		ratio := tp.ActualHours / tp.EstimatedHours
		focusFactor := tp.AverageFocus / maxFocusRating

		rec := models.Recommendation{
			Type:   models.RecommendEstimateAdjustment,
			TaskID: tp.TaskID,
		}
		switch {
		case focusFactor < lowFocusFactor:
			rec.Value = ratio * lowFocusInflation
			rec.Confidence = 0.7
			rec.Reason = models.ReasonLowFocusOverrun
		case ratio > underestimatedRatio:
			rec.Value = ratio
			rec.Confidence = 0.8
			rec.Reason = models.ReasonUnderestimated
		case ratio < overestimatedRatio:
			rec.Value = ratio
			rec.Confidence = 0.6
			rec.Reason = models.ReasonOverestimated
		default:
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}

// LoadReduction suggests shrinking the weekly load under critical fatigue or
// a sustained run of low-focus, strained days.
func LoadReduction(weekly models.WeeklyMetrics, daily []models.DailyMetrics) (models.Recommendation, bool) {
	strained := 0
	for _, d := range daily {
		if d.Status == models.StatusBehind || d.Status == models.StatusFatigued {
			strained++
		}
	}

	critical := weekly.FatigueIndicator > criticalFatigue
	sustained := weekly.AverageFocus < lowAverageFocus && strained >= strainedDaysLimit
	if !critical && !sustained {
		return models.Recommendation{}, false
	}

	rec := models.Recommendation{
		Type:       models.RecommendLoadReduction,
		Value:      baseLoadReduction + (weekly.AverageFocus/maxFocusRating)*focusLoadAllowance,
		Confidence: 0.7,
		Reason:     models.ReasonSustainedLowFocus,
	}
	if critical {
		rec.Confidence = 0.9
		rec.Reason = models.ReasonCriticalFatigue
	}
	return rec, true
}
