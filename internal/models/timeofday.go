package models

// TimeOfDay is one of four fixed clock ranges used to aggregate focus.
type TimeOfDay string

const (
	TimeOfDayDawn    TimeOfDay = "dawn"    // 04:00-11:59
	TimeOfDayMorning TimeOfDay = "morning" // 12:00-16:59
	TimeOfDayEvening TimeOfDay = "evening" // 17:00-20:59
	TimeOfDayNight   TimeOfDay = "night"   // everything else, wrapping midnight
)

// TimeOfDayCount is the number of time-of-day buckets.
const TimeOfDayCount = 4

// TimesOfDay lists every bucket in index order. Tie-breaking over buckets
// always follows this order.
var TimesOfDay = [TimeOfDayCount]TimeOfDay{
	TimeOfDayDawn,
	TimeOfDayMorning,
	TimeOfDayEvening,
	TimeOfDayNight,
}

// TimeOfDayFor classifies a minute-of-day into its bucket.
func TimeOfDayFor(minutes int) TimeOfDay {
	switch {
	case minutes >= 240 && minutes < 720:
		return TimeOfDayDawn
	case minutes >= 720 && minutes < 1020:
		return TimeOfDayMorning
	case minutes >= 1020 && minutes < 1260:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// Index returns the bucket's position in TimesOfDay, or -1 if unknown.
func (t TimeOfDay) Index() int {
	for i, tod := range TimesOfDay {
		if tod == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t names a known bucket.
func (t TimeOfDay) Valid() bool {
	return t.Index() >= 0
}
