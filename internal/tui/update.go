package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Tabs, status and help take the remaining rows
		h, v := docStyle.GetFrameSize()
		m.schedule.SetSize(msg.Width-h, msg.Height-v-4)
		m.taskList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case planDoneMsg:
		m.busy = false
		if msg.err != nil {
			logger.Error("Planning failed", "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		verb := "Planned"
		if msg.replanned {
			verb = "Replanned"
		}
		m.status = fmt.Sprintf("%s %d sessions (%.1fh)", verb,
			len(msg.proposal.Proposal.Sessions), msg.proposal.Proposal.TotalPlannedHours)
		m.refresh()
		return m, nil

	case tasklist.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.err = nil
			m.refresh()
			m.status = "Reloaded"
			return m, nil
		case key.Matches(msg, m.keys.Generate):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Planning..."
			return m, m.planCmd()
		case key.Matches(msg, m.keys.Replan):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Replanning..."
			return m, m.replanCmd()
		}

		if m.state == StateRecommendations {
			return m.updateRecommendations(msg)
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateSchedule:
		m.schedule, cmd = m.schedule.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if err := m.ctx.Store.DeleteTask(m.taskToDeleteID); err != nil {
			logger.Error("Failed to delete task", "id", m.taskToDeleteID, "error", err)
			m.err = err
		} else {
			m.status = fmt.Sprintf("Deleted task %s", cli.TaskLabel(m.names, m.taskToDeleteID))
			m.refresh()
		}
		m.taskToDeleteID = ""
		m.state = m.previousState
	case key.Matches(msg, m.keys.Cancel):
		m.taskToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) updateRecommendations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recs := m.report.Recommendations
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.recCursor > 0 {
			m.recCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.recCursor < len(recs)-1 {
			m.recCursor++
		}
	case key.Matches(msg, m.keys.Apply):
		if len(recs) == 0 {
			return m, nil
		}
		rec := recs[m.recCursor]
		applied, err := m.analyzer.Apply(rec)
		if err != nil {
			logger.Error("Failed to apply recommendation", "type", rec.Type, "error", err)
			m.err = err
			return m, nil
		}
		m.err = nil
		if applied {
			m.status = fmt.Sprintf("Applied %s", rec.Type)
		} else {
			m.status = fmt.Sprintf("%s is advisory; nothing changed", rec.Type)
		}
		m.refresh()
	}
	return m, nil
}
