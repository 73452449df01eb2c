package models

// MinutesPerDay bounds every minute-of-day value to [0, MinutesPerDay).
const MinutesPerDay = 1440

// DaysPerWeek is the planning horizon in days.
const DaysPerWeek = 7

type SlotType string

const (
	SlotTypeUnavailable  SlotType = "unavailable"
	SlotTypeNotPreferred SlotType = "not_preferred"
)

// UnavailableSlot carves time out of a day.
type UnavailableSlot struct {
	ID           string   `json:"id,omitempty" yaml:"-"`
	DayOfWeek    int      `json:"day_of_week" yaml:"day_of_week"`
	StartMinutes int      `json:"start_minutes" yaml:"start_minutes"`
	EndMinutes   int      `json:"end_minutes" yaml:"end_minutes"`
	Type         SlotType `json:"type" yaml:"type"`
}

// Valid reports whether the slot describes a usable carve-out.
func (s UnavailableSlot) Valid() bool {
	if s.DayOfWeek < 0 || s.DayOfWeek >= DaysPerWeek {
		return false
	}
	if s.StartMinutes < 0 || s.EndMinutes > MinutesPerDay {
		return false
	}
	return s.StartMinutes < s.EndMinutes
}

// UserPreferences describes a user's weekly availability.
type UserPreferences struct {
	WakeMinutes             int               `json:"wake_minutes"`
	SleepMinutes            int               `json:"sleep_minutes"`
	PreferredActivityTime   TimeOfDay         `json:"preferred_activity_time"`
	MaxConsecutivePomodoros int               `json:"max_consecutive_pomodoros"`
	UnavailableSlots        []UnavailableSlot `json:"unavailable_slots"`
}

// TimeBlock is a contiguous span of free time on one day.
type TimeBlock struct {
	DayOfWeek    int  `json:"day_of_week"`
	StartMinutes int  `json:"start_minutes"`
	EndMinutes   int  `json:"end_minutes"`
	IsPreferred  bool `json:"is_preferred"`
}

// Duration returns the block length in minutes.
func (b TimeBlock) Duration() int {
	return b.EndMinutes - b.StartMinutes
}

// WeightedTimeBlock is a TimeBlock scored for scan order.
type WeightedTimeBlock struct {
	TimeBlock
	Weight float64 `json:"weight"`
}
