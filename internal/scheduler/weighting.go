package scheduler

import (
	"sort"

	"github.com/julianstephens/pomoplan/internal/models"
)

const (
	preferredWeight    = 1.4
	notPreferredWeight = 0.6
	bestTimeBonus      = 1.3

	// minFocusSamples is the history needed before focus adjusts weights.
	minFocusSamples = 5
)

// WeightBlocks scores blocks by preference and historical focus, then orders
// them by descending weight. Equal weights keep their input order.
func WeightBlocks(blocks []models.TimeBlock, profile models.FocusProfile) []models.WeightedTimeBlock {
	best, hasBest := profile.Best()

	weighted := make([]models.WeightedTimeBlock, 0, len(blocks))
	for _, b := range blocks {
		weighted = append(weighted, models.WeightedTimeBlock{
			TimeBlock: b,
			Weight:    blockWeight(b, profile, best, hasBest),
		})
	}

	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Weight > weighted[j].Weight
	})

	return weighted
}

func blockWeight(b models.TimeBlock, profile models.FocusProfile, best models.TimeOfDay, hasBest bool) float64 {
	weight := notPreferredWeight
	if b.IsPreferred {
		weight = preferredWeight
	}

	tod := models.TimeOfDayFor(b.StartMinutes)

	focusAdjustment := 1.0
	if profile.SampleCount >= minFocusSamples {
		focusAdjustment = 0.7 + 0.6*(profile.Score(tod)/5)
	}

	bonus := 1.0
	if hasBest && tod == best {
		bonus = bestTimeBonus
	}

	return weight * focusAdjustment * bonus
}
