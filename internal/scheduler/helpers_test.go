package scheduler

import (
	"math"

	"github.com/julianstephens/pomoplan/internal/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func intPtr(v int) *int {
	return &v
}

func defaultPrefs() models.UserPreferences {
	return models.UserPreferences{
		WakeMinutes:             480,
		SleepMinutes:            1320,
		PreferredActivityTime:   models.TimeOfDayDawn,
		MaxConsecutivePomodoros: 4,
	}
}
