package scheduler

import (
	"sort"

	"github.com/julianstephens/pomoplan/internal/models"
)

// CalculateAvailableBlocks carves a day's waking window around its
// unavailable slots and returns the free blocks that can hold at least
// minSession minutes.
//
// A block is preferred unless the slot that ends it is tagged not_preferred.
// Overlapping and nested slots are merged by the running cursor. Slots that
// are malformed or belong to other days contribute nothing, and slots
// starting at or after sleep never extend a block past it.
func CalculateAvailableBlocks(day int, prefs models.UserPreferences, minSession int) []models.TimeBlock {
	if prefs.WakeMinutes >= prefs.SleepMinutes {
		return nil
	}

	var slots []models.UnavailableSlot
	for _, slot := range prefs.UnavailableSlots {
		if slot.DayOfWeek == day && slot.Valid() {
			slots = append(slots, slot)
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartMinutes < slots[j].StartMinutes
	})

	var blocks []models.TimeBlock
	cursor := prefs.WakeMinutes

	for _, slot := range slots {
		if slot.StartMinutes >= prefs.SleepMinutes {
			break
		}
		if slot.StartMinutes-cursor >= minSession {
			blocks = append(blocks, models.TimeBlock{
				DayOfWeek:    day,
				StartMinutes: cursor,
				EndMinutes:   slot.StartMinutes,
				IsPreferred:  slot.Type != models.SlotTypeNotPreferred,
			})
		}
		if slot.EndMinutes > cursor {
			cursor = slot.EndMinutes
		}
	}

	if prefs.SleepMinutes-cursor >= minSession {
		blocks = append(blocks, models.TimeBlock{
			DayOfWeek:    day,
			StartMinutes: cursor,
			EndMinutes:   prefs.SleepMinutes,
			IsPreferred:  true,
		})
	}

	return blocks
}

// totalMinutes sums the length of every block across the week.
func totalMinutes(week [models.DaysPerWeek][]models.WeightedTimeBlock) int {
	total := 0
	for _, blocks := range week {
		for _, b := range blocks {
			total += b.Duration()
		}
	}
	return total
}
