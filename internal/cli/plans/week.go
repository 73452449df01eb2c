package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type WeekCmd struct {
	Day string `arg:"" optional:"" help:"Only show one day (mon-sun or 0-6)."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	stored, err := storage.LatestProposal(ctx.Store, ctx.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No plan yet. Run 'pomoplan plan' to create one.")
		return nil
	}
	if err != nil {
		return err
	}

	proposal := stored.Proposal
	if c.Day != "" {
		day, err := utils.ParseDay(c.Day)
		if err != nil {
			return err
		}
		proposal.Sessions = proposal.SessionsForDay(day)
	}

	fmt.Printf("Plan from %s\n", stored.CreatedAt.Local().Format("Mon Jan 2 15:04"))
	fmt.Print(cli.RenderProposal(proposal, ctx.TaskNames()))
	return nil
}
