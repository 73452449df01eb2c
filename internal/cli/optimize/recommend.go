package optimize

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/optimizer"
)

type RecommendCmd struct {
	Interactive bool `short:"i" help:"Interactively review and apply recommendations." xor:"mode"`
	AutoApply   bool `help:"Apply every actionable recommendation without confirmation." xor:"mode"`
}

// applier persists recommendations.
type applier interface {
	Apply(models.Recommendation) (bool, error)
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	analyzer := optimizer.NewAnalyzer(ctx.Store, ctx.UserID)
	report, err := analyzer.Report()
	if err != nil {
		return fmt.Errorf("failed to analyze history: %w", err)
	}

	names := ctx.TaskNames()
	recs := report.Recommendations

	fmt.Printf("%s\n", cli.HeaderStyle.Render(fmt.Sprintf("%d recommendation(s)", len(recs))))
	for i, rec := range recs {
		fmt.Printf("%d. %s\n", i+1, cli.DescribeRecommendation(rec, names, report.CurrentMax))
	}

	switch {
	case c.AutoApply:
		applied := applyAll(analyzer, recs)
		fmt.Printf("\nApplied %d recommendation(s).\n", applied)
	case c.Interactive:
		return runInteractive(analyzer, recs, names, report.CurrentMax)
	default:
		fmt.Println("\nUse --interactive to review each suggestion or --auto-apply to apply them all.")
	}
	return nil
}

// applyAll applies every recommendation and reports how many changed
// stored data. Advisory recommendations are skipped silently.
func applyAll(a applier, recs []models.Recommendation) int {
	applied := 0
	for _, rec := range recs {
		ok, err := a.Apply(rec)
		if err != nil {
			fmt.Printf("  %s %v\n", cli.BadStyle.Render("failed:"), err)
			continue
		}
		if ok {
			applied++
		}
	}
	return applied
}

func runInteractive(a applier, recs []models.Recommendation, names map[string]string, currentMax int) error {
	applied, skipped := 0, 0

	for i, rec := range recs {
		if rec.Type == models.RecommendLoadReduction {
			fmt.Printf("\n[%d/%d] %s\n", i+1, len(recs), cli.DescribeRecommendation(rec, names, currentMax))
			fmt.Println("  Advisory only: lower your task estimates or free up fewer slots next week.")
			continue
		}

		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("[%d/%d] %s", i+1, len(recs), cli.DescribeRecommendation(rec, names, currentMax))).
					Options(
						huh.NewOption("Apply", "apply"),
						huh.NewOption("Skip", "skip"),
						huh.NewOption("Skip remaining", "skip_all"),
					).
					Value(&choice),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}

		switch choice {
		case "apply":
			ok, err := a.Apply(rec)
			switch {
			case err != nil:
				fmt.Printf("  %s %v\n", cli.BadStyle.Render("failed:"), err)
			case ok:
				fmt.Println("  " + cli.GoodStyle.Render("applied"))
				applied++
			default:
				fmt.Println("  nothing to change")
			}
		case "skip":
			skipped++
		case "skip_all":
			skipped += len(recs) - i
			fmt.Printf("\nCompleted: %d applied, %d skipped\n", applied, skipped)
			return nil
		}
	}

	fmt.Printf("\nCompleted: %d applied, %d skipped\n", applied, skipped)
	return nil
}
