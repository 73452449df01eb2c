package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/pomoplan/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes from midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the short name for a planning day index (0 = Monday).
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "?"
	}
	return dayNames[day]
}

// ParseDay parses a planning day given as an index (0-6) or a weekday name.
// Day 0 is Monday.
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	dayMap := map[string]int{
		"mon":       0,
		"monday":    0,
		"tue":       1,
		"tuesday":   1,
		"wed":       2,
		"wednesday": 2,
		"thu":       3,
		"thursday":  3,
		"fri":       4,
		"friday":    4,
		"sat":       5,
		"saturday":  5,
		"sun":       6,
		"sunday":    6,
	}

	if day, ok := dayMap[s]; ok {
		return day, nil
	}
	num, err := strconv.Atoi(s)
	if err == nil && num >= 0 && num <= 6 {
		return num, nil
	}
	return 0, fmt.Errorf("invalid day: %s", s)
}

// TodayIndex returns the planning day index for t (0 = Monday).
func TodayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
