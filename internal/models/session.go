package models

import "sort"

// ScheduledSession is one proposed pomodoro.
type ScheduledSession struct {
	ID             string `json:"id"`
	TaskID         string `json:"task_id"`
	DayOfWeek      int    `json:"day_of_week"`
	StartMinutes   int    `json:"start_minutes"`
	EndMinutes     int    `json:"end_minutes"`
	SequenceNumber int    `json:"sequence_number"` // 0-based position within an unbroken run
}

// Duration returns the session length in minutes.
func (s ScheduledSession) Duration() int {
	return s.EndMinutes - s.StartMinutes
}

// CompletedSession is a ground-truth record of focused work.
type CompletedSession struct {
	TaskID          string    `json:"task_id"`
	DurationMinutes int       `json:"duration_minutes"`
	FocusRating     float64   `json:"focus_rating"` // 0-5
	DayOfWeek       int       `json:"day_of_week"`
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	SequenceNumber  *int      `json:"sequence_number,omitempty"`
}

// ScheduleProposal is the packer's output.
type ScheduleProposal struct {
	Sessions          []ScheduledSession `json:"sessions"`
	TotalPlannedHours float64            `json:"total_planned_hours"`
	UtilizationRate   float64            `json:"utilization_rate"`
	CapacityMinutes   float64            `json:"capacity_minutes"`
}

// SessionsForDay returns the proposal's sessions on the given day ordered by
// start time.
func (p ScheduleProposal) SessionsForDay(day int) []ScheduledSession {
	var out []ScheduledSession
	for _, s := range p.Sessions {
		if s.DayOfWeek == day {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartMinutes < out[j].StartMinutes
	})
	return out
}
