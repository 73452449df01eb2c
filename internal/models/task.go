package models

// Task is a unit of pending work to be split into pomodoro sessions.
type Task struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	EstimatedHours   float64 `json:"estimated_hours" yaml:"estimated_hours"`
	Urgency          float64 `json:"urgency" yaml:"urgency"`
	DeadlineDayIndex *int    `json:"deadline_day_index,omitempty" yaml:"deadline_day_index,omitempty"`
	DeletedAt        *string `json:"deleted_at,omitempty" yaml:"-"` // RFC3339 timestamp
}

// HasDeadline reports whether the task carries a deadline day.
func (t Task) HasDeadline() bool {
	return t.DeadlineDayIndex != nil
}
