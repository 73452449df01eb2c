package tasks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type TaskAddCmd struct {
	Name     string  `arg:"" help:"Task name."`
	Hours    float64 `short:"H" help:"Estimated hours of work." required:""`
	Urgency  float64 `short:"u" help:"Urgency weight, typically 0-1." default:"0.5"`
	Deadline string  `short:"d" help:"Deadline day (mon-sun or 0-6)."`
}

func (c *TaskAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if c.Deadline != "" {
		if _, err := utils.ParseDay(c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline: %w", err)
		}
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task := models.Task{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(c.Name),
		EstimatedHours: c.Hours,
		Urgency:        c.Urgency,
	}
	if c.Deadline != "" {
		day, _ := utils.ParseDay(c.Deadline) // validated above
		task.DeadlineDayIndex = &day
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Name, task.ID)
	return nil
}
