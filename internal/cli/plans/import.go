package plans

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/planfile"
)

type ImportCmd struct {
	File         string `arg:"" help:"YAML request file to import." type:"existingfile"`
	SkipSettings bool   `help:"Keep the stored preferences."`
	ReplaceSlots bool   `help:"Delete existing unavailable slots before importing."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	req, err := planfile.Load(c.File)
	if err != nil {
		return err
	}

	if !c.SkipSettings {
		current, err := ctx.Settings()
		if err != nil {
			return err
		}
		imported := req.Settings()
		imported.PlanningTimeoutSec = current.PlanningTimeoutSec
		if err := ctx.Store.SaveSettings(imported); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("  Imported preferences")
	}

	if c.ReplaceSlots {
		existing, err := ctx.Store.GetUnavailableSlots()
		if err != nil {
			return fmt.Errorf("failed to get slots: %w", err)
		}
		for _, s := range existing {
			if err := ctx.Store.DeleteUnavailableSlot(s.ID); err != nil {
				return fmt.Errorf("failed to delete slot %s: %w", s.ID, err)
			}
		}
	}
	for _, s := range req.Preferences.UnavailableSlots {
		if err := ctx.Store.AddUnavailableSlot(s); err != nil {
			return fmt.Errorf("failed to add slot: %w", err)
		}
	}
	fmt.Printf("  Imported %d slots\n", len(req.Preferences.UnavailableSlots))

	added, updated := 0, 0
	for _, t := range req.Tasks {
		if _, err := ctx.Store.GetTask(t.ID); err == nil {
			if err := ctx.Store.UpdateTask(t); err != nil {
				return fmt.Errorf("failed to update task %s: %w", t.ID, err)
			}
			updated++
			continue
		}
		if err := ctx.Store.AddTask(t); err != nil {
			return fmt.Errorf("failed to add task %s: %w", t.ID, err)
		}
		added++
	}
	fmt.Printf("  Imported tasks: %d added, %d updated\n", added, updated)

	logger.Info("Imported plan request", "file", c.File, "tasks", len(req.Tasks), "slots", len(req.Preferences.UnavailableSlots))
	return nil
}
