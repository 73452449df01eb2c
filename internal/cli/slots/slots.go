package slots

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type SlotAddCmd struct {
	Day          string `arg:"" help:"Day of week (mon-sun or 0-6)."`
	Start        string `arg:"" help:"Start time (HH:MM)."`
	End          string `arg:"" help:"End time (HH:MM)."`
	NotPreferred bool   `help:"Mark the time as usable but not preferred instead of unavailable."`
}

// Slot parses the command's arguments.
func (c *SlotAddCmd) Slot() (models.UnavailableSlot, error) {
	day, err := utils.ParseDay(c.Day)
	if err != nil {
		return models.UnavailableSlot{}, err
	}
	start, err := utils.ParseTimeToMinutes(c.Start)
	if err != nil {
		return models.UnavailableSlot{}, fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
	}
	end, err := utils.ParseTimeToMinutes(c.End)
	if err != nil {
		return models.UnavailableSlot{}, fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
	}

	slotType := models.SlotTypeUnavailable
	if c.NotPreferred {
		slotType = models.SlotTypeNotPreferred
	}
	slot := models.UnavailableSlot{
		DayOfWeek:    day,
		StartMinutes: start,
		EndMinutes:   end,
		Type:         slotType,
	}
	if !slot.Valid() {
		return models.UnavailableSlot{}, fmt.Errorf("start must be before end")
	}
	return slot, nil
}

func (c *SlotAddCmd) Validate() error {
	_, err := c.Slot()
	return err
}

func (c *SlotAddCmd) Run(ctx *cli.Context) error {
	slot, err := c.Slot()
	if err != nil {
		return err
	}
	slot.ID = uuid.New().String()

	if err := ctx.Store.AddUnavailableSlot(slot); err != nil {
		return fmt.Errorf("failed to add slot: %w", err)
	}

	fmt.Printf("Added %s slot: %s %s-%s (ID: %s)\n", slot.Type, utils.DayName(slot.DayOfWeek),
		utils.FormatMinutes(slot.StartMinutes), utils.FormatMinutes(slot.EndMinutes), slot.ID)
	return nil
}

type SlotListCmd struct{}

func (c *SlotListCmd) Run(ctx *cli.Context) error {
	slots, err := ctx.Store.GetUnavailableSlots()
	if err != nil {
		return fmt.Errorf("failed to get slots: %w", err)
	}
	if len(slots) == 0 {
		fmt.Println("No slots found")
		return nil
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		return slots[i].StartMinutes < slots[j].StartMinutes
	})

	fmt.Println("Slots:")
	for _, s := range slots {
		fmt.Printf("  %s %s-%s  %-13s (ID: %s)\n", utils.DayName(s.DayOfWeek),
			utils.FormatMinutes(s.StartMinutes), utils.FormatMinutes(s.EndMinutes), s.Type, s.ID)
	}
	return nil
}

type SlotDeleteCmd struct {
	ID string `arg:"" help:"Slot ID to delete."`
}

func (c *SlotDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteUnavailableSlot(c.ID); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	fmt.Printf("Deleted slot: %s\n", c.ID)
	return nil
}
