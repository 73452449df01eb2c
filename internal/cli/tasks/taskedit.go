package tasks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type TaskEditCmd struct {
	ID            string   `arg:"" help:"Task ID to edit."`
	Name          *string  `help:"New task name."`
	Hours         *float64 `short:"H" help:"New estimated hours."`
	Urgency       *float64 `short:"u" help:"New urgency weight."`
	Deadline      *string  `short:"d" help:"New deadline day (mon-sun or 0-6)."`
	ClearDeadline bool     `help:"Remove the task's deadline."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if c.Hours != nil && *c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if c.Deadline != nil {
		if c.ClearDeadline {
			return fmt.Errorf("--deadline and --clear-deadline are mutually exclusive")
		}
		if _, err := utils.ParseDay(*c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline: %w", err)
		}
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task with ID %s: %w", c.ID, err)
	}

	if c.Name != nil {
		task.Name = strings.TrimSpace(*c.Name)
	}
	if c.Hours != nil {
		task.EstimatedHours = *c.Hours
	}
	if c.Urgency != nil {
		task.Urgency = *c.Urgency
	}
	if c.Deadline != nil {
		day, _ := utils.ParseDay(*c.Deadline) // validated above
		task.DeadlineDayIndex = &day
	}
	if c.ClearDeadline {
		task.DeadlineDayIndex = nil
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Updated task: %s (ID: %s)\n", task.Name, task.ID)
	return nil
}
