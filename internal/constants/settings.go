package constants

const (
	// General Settings
	SettingWakeTime                = "wake_time"
	SettingSleepTime               = "sleep_time"
	SettingPreferredActivityTime   = "preferred_activity_time"
	SettingMaxConsecutivePomodoros = "max_consecutive_pomodoros"
	SettingPomodoroMin             = "pomodoro_min"
	SettingPlanningTimeoutSec      = "planning_timeout_sec"

	// Default Settings Values
	DefaultWakeTime                = "08:00"
	DefaultSleepTime               = "22:00"
	DefaultPreferredActivityTime   = "dawn"
	DefaultMaxConsecutivePomodoros = 4
	DefaultPomodoroMin             = 25
	DefaultPlanningTimeoutSec      = 10
)
