package models

type RecommendationType string

const (
	RecommendConsecutiveLimit   RecommendationType = "consecutive_limit"
	RecommendEstimateAdjustment RecommendationType = "estimate_adjustment"
	RecommendLoadReduction      RecommendationType = "load_reduction"
)

type RecommendationReason string

const (
	ReasonFocusDrop         RecommendationReason = "focus_drop"
	ReasonNoFocusDrop       RecommendationReason = "no_focus_drop"
	ReasonLowFocusOverrun   RecommendationReason = "low_focus_overrun"
	ReasonUnderestimated    RecommendationReason = "underestimated"
	ReasonOverestimated     RecommendationReason = "overestimated"
	ReasonCriticalFatigue   RecommendationReason = "critical_fatigue"
	ReasonSustainedLowFocus RecommendationReason = "sustained_low_focus"
)

// Recommendation is a tunable suggestion derived from metrics.
type Recommendation struct {
	Type       RecommendationType   `json:"type"`
	TaskID     string               `json:"task_id,omitempty"`
	Value      float64              `json:"value"`
	Confidence float64              `json:"confidence"`
	Reason     RecommendationReason `json:"reason"`
}
