package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/planfile"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type PlanCmd struct {
	File string `short:"f" help:"Plan a YAML request file without touching stored data." type:"existingfile"`
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	if c.File != "" {
		return c.planFile(ctx)
	}

	stored, err := ctx.PlanWeek(context.Background())
	if err != nil {
		return fmt.Errorf("failed to plan week: %w", err)
	}

	fmt.Printf("Planned week starting %s\n", utils.DayName(stored.CurrentDay))
	fmt.Print(cli.RenderProposal(stored.Proposal, ctx.TaskNames()))
	return nil
}

func (c *PlanCmd) planFile(ctx *cli.Context) error {
	req, err := planfile.Load(c.File)
	if err != nil {
		return err
	}

	timeout := time.Duration(constants.DefaultPlanningTimeoutSec) * time.Second
	proposal, err := cli.RunPlanning(context.Background(), timeout, func() (models.ScheduleProposal, error) {
		return ctx.Scheduler.Plan(req.Tasks, req.Preferences, req.CurrentDay, req.PomodoroMinutes)
	})
	if err != nil {
		return fmt.Errorf("failed to plan %s: %w", c.File, err)
	}

	names := make(map[string]string, len(req.Tasks))
	for _, t := range req.Tasks {
		names[t.ID] = t.Name
	}
	fmt.Print(cli.RenderProposal(proposal, names))
	return nil
}

type ReplanCmd struct {
	Verbose bool `short:"v" help:"Show the daily metrics and capacity used for sizing."`
}

func (c *ReplanCmd) Run(ctx *cli.Context) error {
	rolling, stored, err := ctx.Replan(context.Background())
	if err != nil {
		return fmt.Errorf("failed to re-plan: %w", err)
	}

	if c.Verbose {
		fmt.Println(cli.HeaderStyle.Render("Previous cycle"))
		fmt.Print(cli.RenderDailyMetrics(rolling.DailyMetrics))
		fmt.Printf("Available: %d min, capacity multiplier x%.2f\n\n", rolling.AvailableMinutes, rolling.CapacityMultiplier)
	}

	fmt.Printf("Re-planned from %s\n", utils.DayName(stored.CurrentDay))
	fmt.Print(cli.RenderProposal(stored.Proposal, ctx.TaskNames()))
	return nil
}
