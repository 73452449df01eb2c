package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pomoplan/internal/cli"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateSchedule:
		content = docStyle.Render(m.schedule.View())
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateMetrics:
		content = docStyle.Render(m.viewMetrics())
	case StateRecommendations:
		content = docStyle.Render(m.viewRecommendations())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateConfirmDelete {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewMetrics() string {
	if !m.report.HasProposal {
		return "No plan yet. Press 'g' to plan the week."
	}
	return cli.RenderWeekly(m.report.Weekly, m.names)
}

func (m Model) viewRecommendations() string {
	recs := m.report.Recommendations
	if len(recs) == 0 {
		return "No recommendations. Log some sessions first."
	}

	var b strings.Builder
	for i, rec := range recs {
		cursor := "  "
		if i == m.recCursor {
			cursor = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, cli.DescribeRecommendation(rec, m.names, m.report.CurrentMax))
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", cli.TaskLabel(m.names, m.taskToDeleteID))),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
