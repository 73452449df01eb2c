package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	DayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	GoodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	BadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// StatusStyle colors a day status.
func StatusStyle(status models.DailyStatus) lipgloss.Style {
	switch status {
	case models.StatusFatigued:
		return BadStyle
	case models.StatusBehind:
		return WarnStyle
	case models.StatusOverperforming:
		return GoodStyle.Bold(true)
	default:
		return GoodStyle
	}
}

// TaskLabel returns the task's name, or its id when the name is unknown.
func TaskLabel(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// RenderProposal lists a plan's sessions day by day.
func RenderProposal(p models.ScheduleProposal, names map[string]string) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf(
		"%d sessions, %.1fh planned of %.0f min capacity (%.0f%% utilized)",
		len(p.Sessions), p.TotalPlannedHours, p.CapacityMinutes, p.UtilizationRate*100,
	)))
	b.WriteString("\n")

	if len(p.Sessions) == 0 {
		b.WriteString(DimStyle.Render("  Nothing scheduled."))
		b.WriteString("\n")
		return b.String()
	}

	for day := 0; day < models.DaysPerWeek; day++ {
		sessions := p.SessionsForDay(day)
		if len(sessions) == 0 {
			continue
		}
		b.WriteString(DayStyle.Render(utils.DayName(day)))
		b.WriteString("\n")
		for _, s := range sessions {
			fmt.Fprintf(&b, "  %s-%s  %s %s\n",
				utils.FormatMinutes(s.StartMinutes),
				utils.FormatMinutes(s.EndMinutes),
				TaskLabel(names, s.TaskID),
				DimStyle.Render(fmt.Sprintf("#%d", s.SequenceNumber+1)),
			)
		}
	}
	return b.String()
}

// RenderDailyMetrics prints one line per day.
func RenderDailyMetrics(days []models.DailyMetrics) string {
	var b strings.Builder
	for _, d := range days {
		fmt.Fprintf(&b, "  %s  %-15s %4d/%-4d min  adherence %3.0f%%  focus %3.0f%%  x%.1f\n",
			utils.DayName(d.DayOfWeek),
			StatusStyle(d.Status).Render(string(d.Status)),
			d.ActualMinutes, d.PlannedMinutes,
			d.AdherenceScore*100, d.FocusScore*100,
			d.AdjustmentFactor,
		)
	}
	return b.String()
}

// RenderWeekly summarizes a week's metrics.
func RenderWeekly(w models.WeeklyMetrics, names map[string]string) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Week"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Planned:             %.1fh\n", w.PlannedHours)
	fmt.Fprintf(&b, "  Actual:              %.1fh\n", w.ActualHours)
	fmt.Fprintf(&b, "  Estimation accuracy: %.0f%%\n", w.EstimationAccuracy*100)
	fmt.Fprintf(&b, "  Average focus:       %.1f/5\n", w.AverageFocus)
	if w.BestFocusTime != "" {
		fmt.Fprintf(&b, "  Best focus time:     %s\n", w.BestFocusTime)
		fmt.Fprintf(&b, "  Worst focus time:    %s\n", w.WorstFocusTime)
	}

	fatigue := fmt.Sprintf("%.2f", w.FatigueIndicator)
	switch {
	case w.FatigueIndicator > 0.5:
		fatigue = BadStyle.Render(fatigue)
	case w.FatigueIndicator > 0.3:
		fatigue = WarnStyle.Render(fatigue)
	}
	fmt.Fprintf(&b, "  Fatigue:             %s\n", fatigue)

	b.WriteString(HeaderStyle.Render("Days"))
	b.WriteString("\n")
	b.WriteString(RenderDailyMetrics(w.Days[:]))

	if len(w.TaskPerformance) > 0 {
		b.WriteString(HeaderStyle.Render("Tasks"))
		b.WriteString("\n")
		for _, tp := range w.TaskPerformance {
			fmt.Fprintf(&b, "  %-24s %.1fh of %.1fh  focus %.1f  efficiency %.2f\n",
				TaskLabel(names, tp.TaskID), tp.ActualHours, tp.EstimatedHours, tp.AverageFocus, tp.Efficiency)
		}
	}
	return b.String()
}

// DescribeRecommendation renders a recommendation as a single sentence.
func DescribeRecommendation(rec models.Recommendation, names map[string]string, currentMax int) string {
	var what string
	switch rec.Type {
	case models.RecommendConsecutiveLimit:
		if int(rec.Value) == currentMax {
			what = fmt.Sprintf("Keep at most %d pomodoros in a row", int(rec.Value))
		} else {
			what = fmt.Sprintf("Limit runs to %d pomodoros (currently %d)", int(rec.Value), currentMax)
		}
	case models.RecommendEstimateAdjustment:
		what = fmt.Sprintf("Scale the estimate for %q by x%.2f", TaskLabel(names, rec.TaskID), rec.Value)
	case models.RecommendLoadReduction:
		what = fmt.Sprintf("Plan only %.0f%% of your usual load", rec.Value*100)
	default:
		what = fmt.Sprintf("%s %.2f", rec.Type, rec.Value)
	}
	return fmt.Sprintf("%s %s", what, DimStyle.Render(fmt.Sprintf("(%s, %.0f%% confidence)", rec.Reason, rec.Confidence*100)))
}
