package models

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/utils"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingWakeTime:
			settings.WakeTime = value
		case constants.SettingSleepTime:
			settings.SleepTime = value
		case constants.SettingPreferredActivityTime:
			settings.PreferredActivityTime = value
		case constants.SettingMaxConsecutivePomodoros:
			if _, err := fmt.Sscanf(value, "%d", &settings.MaxConsecutivePomodoros); err != nil {
				return Settings{}, fmt.Errorf("parsing max_consecutive_pomodoros: %w", err)
			}
		case constants.SettingPomodoroMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.PomodoroMin); err != nil {
				return Settings{}, fmt.Errorf("parsing pomodoro_min: %w", err)
			}
		case constants.SettingPlanningTimeoutSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.PlanningTimeoutSec); err != nil {
				return Settings{}, fmt.Errorf("parsing planning_timeout_sec: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingWakeTime:                settings.WakeTime,
		constants.SettingSleepTime:               settings.SleepTime,
		constants.SettingPreferredActivityTime:   settings.PreferredActivityTime,
		constants.SettingMaxConsecutivePomodoros: fmt.Sprintf("%d", settings.MaxConsecutivePomodoros),
		constants.SettingPomodoroMin:             fmt.Sprintf("%d", settings.PomodoroMin),
		constants.SettingPlanningTimeoutSec:      fmt.Sprintf("%d", settings.PlanningTimeoutSec),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WakeTime == "" {
		settings.WakeTime = constants.DefaultWakeTime
	}
	if settings.SleepTime == "" {
		settings.SleepTime = constants.DefaultSleepTime
	}
	if settings.PreferredActivityTime == "" {
		settings.PreferredActivityTime = constants.DefaultPreferredActivityTime
	}
	if settings.MaxConsecutivePomodoros == 0 {
		settings.MaxConsecutivePomodoros = constants.DefaultMaxConsecutivePomodoros
	}
	if settings.PomodoroMin == 0 {
		settings.PomodoroMin = constants.DefaultPomodoroMin
	}
	if settings.PlanningTimeoutSec == 0 {
		settings.PlanningTimeoutSec = constants.DefaultPlanningTimeoutSec
	}
}

// Preferences builds the planner's view of the settings combined with the
// stored unavailable slots.
func (s Settings) Preferences(slots []UnavailableSlot) (UserPreferences, error) {
	wake, err := utils.ParseTimeToMinutes(s.WakeTime)
	if err != nil {
		return UserPreferences{}, fmt.Errorf("invalid wake time %q: %w", s.WakeTime, err)
	}
	sleep, err := utils.ParseTimeToMinutes(s.SleepTime)
	if err != nil {
		return UserPreferences{}, fmt.Errorf("invalid sleep time %q: %w", s.SleepTime, err)
	}

	return UserPreferences{
		WakeMinutes:             wake,
		SleepMinutes:            sleep,
		PreferredActivityTime:   TimeOfDay(s.PreferredActivityTime),
		MaxConsecutivePomodoros: s.MaxConsecutivePomodoros,
		UnavailableSlots:        append([]UnavailableSlot(nil), slots...),
	}, nil
}
