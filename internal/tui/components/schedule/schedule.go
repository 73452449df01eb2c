package schedule

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

type Model struct {
	table    table.Model
	proposal *models.ScheduleProposal
	names    map[string]string
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Day", Width: 5},
		{Title: "Time", Width: 13},
		{Title: "Task", Width: 32},
		{Title: "#", Width: 4},
	}
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithWidth(width),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, names: map[string]string{}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.proposal == nil {
		return "No plan yet. Press 'g' to plan the week."
	}
	p := m.proposal
	summary := summaryStyle.Render(fmt.Sprintf(
		"%d sessions, %.1fh planned, %.0f%% of %.0f min capacity",
		len(p.Sessions), p.TotalPlannedHours, p.UtilizationRate*100, p.CapacityMinutes,
	))
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), summary)
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	// Leave a line for the summary
	m.table.SetHeight(max(height-1, 1))
}

// SetProposal replaces the displayed plan. A nil proposal clears it.
func (m *Model) SetProposal(p *models.ScheduleProposal, names map[string]string) {
	m.proposal = p
	m.names = names
	m.table.SetRows(Rows(p, names))
	m.table.GotoTop()
}

// Rows lays out sessions in day then start-time order.
func Rows(p *models.ScheduleProposal, names map[string]string) []table.Row {
	if p == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(p.Sessions))
	for day := 0; day < models.DaysPerWeek; day++ {
		for _, s := range p.SessionsForDay(day) {
			name := names[s.TaskID]
			if name == "" {
				name = s.TaskID
			}
			rows = append(rows, table.Row{
				utils.DayName(day),
				fmt.Sprintf("%s-%s", utils.FormatMinutes(s.StartMinutes), utils.FormatMinutes(s.EndMinutes)),
				name,
				fmt.Sprintf("%d", s.SequenceNumber+1),
			})
		}
	}
	return rows
}
