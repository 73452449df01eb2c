package models

type DailyStatus string

const (
	StatusOnTrack        DailyStatus = "on_track"
	StatusBehind         DailyStatus = "behind"
	StatusFatigued       DailyStatus = "fatigued"
	StatusOverperforming DailyStatus = "overperforming"
)

// DailyMetrics compares one day's plan against what was completed.
type DailyMetrics struct {
	DayOfWeek        int         `json:"day_of_week"`
	Status           DailyStatus `json:"status"`
	PlannedMinutes   int         `json:"planned_minutes"`
	ActualMinutes    int         `json:"actual_minutes"`
	AdherenceScore   float64     `json:"adherence_score"`
	FocusScore       float64     `json:"focus_score"` // 0-1
	AdjustmentFactor float64     `json:"adjustment_factor"`
}

// TaskPerformance summarizes estimated versus logged effort for one task.
type TaskPerformance struct {
	TaskID         string  `json:"task_id"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	AverageFocus   float64 `json:"average_focus"`
	Efficiency     float64 `json:"efficiency"`
}

// WeeklyMetrics aggregates a week of DailyMetrics.
type WeeklyMetrics struct {
	Days               [DaysPerWeek]DailyMetrics `json:"days"`
	PlannedHours       float64                   `json:"planned_hours"`
	ActualHours        float64                   `json:"actual_hours"`
	EstimationAccuracy float64                   `json:"estimation_accuracy"`
	AverageFocus       float64                   `json:"average_focus"`
	BestFocusTime      TimeOfDay                 `json:"best_focus_time,omitempty"`
	WorstFocusTime     TimeOfDay                 `json:"worst_focus_time,omitempty"`
	FatigueIndicator   float64                   `json:"fatigue_indicator"`
	TaskPerformance    []TaskPerformance         `json:"task_performance"`
}

// FocusProfile holds mean focus per time-of-day bucket.
type FocusProfile struct {
	Scores      [TimeOfDayCount]float64 `json:"scores"`
	Samples     [TimeOfDayCount]int     `json:"samples"`
	SampleCount int                     `json:"sample_count"`
}

// Score returns the mean focus for a bucket.
func (p FocusProfile) Score(tod TimeOfDay) float64 {
	i := tod.Index()
	if i < 0 {
		return 0
	}
	return p.Scores[i]
}

// Best returns the sampled bucket with the strictly highest mean focus.
// The first bucket in TimesOfDay order wins ties. ok is false when no
// bucket has samples.
func (p FocusProfile) Best() (tod TimeOfDay, ok bool) {
	best := -1
	for i := range TimesOfDay {
		if p.Samples[i] == 0 {
			continue
		}
		if best < 0 || p.Scores[i] > p.Scores[best] {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return TimesOfDay[best], true
}
