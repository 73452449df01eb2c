package tasks

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type TaskListCmd struct {
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, task := range tasks {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", task.ID)
		}
		deadline := ""
		if task.HasDeadline() {
			deadline = ", due " + utils.DayName(*task.DeadlineDayIndex)
		}
		fmt.Printf("  %s%s - %.1fh (urgency %.2f%s)\n", task.Name, idStr, task.EstimatedHours, task.Urgency, deadline)
	}
	return nil
}
