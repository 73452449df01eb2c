package settings

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WakeTime                *string `help:"Time the day starts (HH:MM)."`
	SleepTime               *string `help:"Time the day ends (HH:MM)."`
	PreferredActivityTime   *string `help:"Preferred time of day (dawn, morning, evening, night)."`
	MaxConsecutivePomodoros *int    `help:"Pomodoros allowed before a long break."`
	PomodoroMin             *int    `help:"Pomodoro length in minutes."`
	PlanningTimeoutSec      *int    `help:"Seconds a planning run may take."`
}

func (c *SettingsCmd) Validate() error {
	if c.WakeTime != nil && !utils.ValidateTimeFormat(*c.WakeTime) {
		return fmt.Errorf("invalid wake time format (expected HH:MM): %s", *c.WakeTime)
	}
	if c.SleepTime != nil && !utils.ValidateTimeFormat(*c.SleepTime) {
		return fmt.Errorf("invalid sleep time format (expected HH:MM): %s", *c.SleepTime)
	}
	if c.PreferredActivityTime != nil && !models.TimeOfDay(*c.PreferredActivityTime).Valid() {
		return fmt.Errorf("preferred activity time must be one of dawn, morning, evening, night")
	}
	if c.MaxConsecutivePomodoros != nil && *c.MaxConsecutivePomodoros < 1 {
		return fmt.Errorf("max consecutive pomodoros must be at least 1")
	}
	if c.PomodoroMin != nil && *c.PomodoroMin < 1 {
		return fmt.Errorf("pomodoro length must be at least 1 minute")
	}
	if c.PlanningTimeoutSec != nil && *c.PlanningTimeoutSec < 1 {
		return fmt.Errorf("planning timeout must be at least 1 second")
	}
	return nil
}

// apply copies the requested changes into settings and reports whether
// anything changed.
func (c *SettingsCmd) apply(settings *models.Settings) (bool, error) {
	updated := false
	if c.WakeTime != nil {
		settings.WakeTime = *c.WakeTime
		updated = true
	}
	if c.SleepTime != nil {
		settings.SleepTime = *c.SleepTime
		updated = true
	}
	if c.PreferredActivityTime != nil {
		settings.PreferredActivityTime = *c.PreferredActivityTime
		updated = true
	}
	if c.MaxConsecutivePomodoros != nil {
		settings.MaxConsecutivePomodoros = *c.MaxConsecutivePomodoros
		updated = true
	}
	if c.PomodoroMin != nil {
		settings.PomodoroMin = *c.PomodoroMin
		updated = true
	}
	if c.PlanningTimeoutSec != nil {
		settings.PlanningTimeoutSec = *c.PlanningTimeoutSec
		updated = true
	}

	wake, _ := utils.ParseTimeToMinutes(settings.WakeTime)
	sleep, _ := utils.ParseTimeToMinutes(settings.SleepTime)
	if updated && wake >= sleep {
		return false, fmt.Errorf("wake time %s must be before sleep time %s", settings.WakeTime, settings.SleepTime)
	}
	return updated, nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Wake Time:                 %s\n", settings.WakeTime)
		fmt.Printf("  Sleep Time:                %s\n", settings.SleepTime)
		fmt.Printf("  Preferred Activity Time:   %s\n", settings.PreferredActivityTime)
		fmt.Printf("  Max Consecutive Pomodoros: %d\n", settings.MaxConsecutivePomodoros)
		fmt.Printf("  Pomodoro Length:           %d min\n", settings.PomodoroMin)
		fmt.Printf("  Planning Timeout:          %d sec\n", settings.PlanningTimeoutSec)
		return nil
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
