package scheduler

import "github.com/julianstephens/pomoplan/internal/models"

// neutralFocus is assigned to buckets without history.
const neutralFocus = 3.0

// BuildFocusProfile averages historical focus ratings per time-of-day bucket.
func BuildFocusProfile(completed []models.CompletedSession) models.FocusProfile {
	var sums [models.TimeOfDayCount]float64
	var profile models.FocusProfile

	for _, s := range completed {
		i := s.TimeOfDay.Index()
		if i < 0 {
			continue
		}
		sums[i] += s.FocusRating
		profile.Samples[i]++
		profile.SampleCount++
	}

	for i := range profile.Scores {
		if profile.Samples[i] == 0 {
			profile.Scores[i] = neutralFocus
			continue
		}
		profile.Scores[i] = sums[i] / float64(profile.Samples[i])
	}

	return profile
}
