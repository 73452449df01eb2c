package optimize

import (
	"fmt"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/optimizer"
)

type MetricsCmd struct{}

func (c *MetricsCmd) Run(ctx *cli.Context) error {
	report, err := optimizer.NewAnalyzer(ctx.Store, ctx.UserID).Report()
	if err != nil {
		return fmt.Errorf("failed to compute metrics: %w", err)
	}
	if !report.HasProposal {
		fmt.Println("No plan yet, comparing logged sessions against an empty week.")
	}

	fmt.Print(cli.RenderWeekly(report.Weekly, ctx.TaskNames()))
	return nil
}
