package models

// Settings represents application-wide settings
type Settings struct {
	WakeTime                string `json:"wake_time"`                 // the time the day starts, e.g. "08:00"
	SleepTime               string `json:"sleep_time"`                // the time the day ends, e.g. "22:00"
	PreferredActivityTime   string `json:"preferred_activity_time"`   // dawn, morning, evening or night
	MaxConsecutivePomodoros int    `json:"max_consecutive_pomodoros"` // sessions before a break is forced
	PomodoroMin             int    `json:"pomodoro_min"`              // the pomodoro length in minutes
	PlanningTimeoutSec      int    `json:"planning_timeout_sec"`      // deadline for a single planning call
}
