package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/optimizer"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/tui/components/schedule"
	"github.com/julianstephens/pomoplan/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateSchedule SessionState = iota
	StateTasks
	StateMetrics
	StateRecommendations
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 4

var tabTitles = []string{"Schedule", "Tasks", "Metrics", "Recommendations"}

// planDoneMsg reports the outcome of a background planning run.
type planDoneMsg struct {
	proposal  storage.StoredProposal
	replanned bool
	err       error
}

type Model struct {
	ctx            *cli.Context
	analyzer       *optimizer.Analyzer
	state          SessionState
	previousState  SessionState
	keys           KeyMap
	help           help.Model
	schedule       schedule.Model
	taskList       tasklist.Model
	report         optimizer.Report
	names          map[string]string
	recCursor      int
	busy           bool
	status         string
	err            error
	taskToDeleteID string
	quitting       bool
	width          int
	height         int
}

func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:      ctx,
		analyzer: optimizer.NewAnalyzer(ctx.Store, ctx.UserID),
		state:    StateSchedule,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		schedule: schedule.New(80, 20),
		taskList: tasklist.New(nil, 80, 20),
		names:    map[string]string{},
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads tasks and the current cycle's report from the store.
func (m *Model) refresh() {
	tasks, err := m.ctx.Store.GetAllTasks()
	if err != nil {
		logger.Error("Failed to load tasks", "error", err)
		m.err = err
		tasks = []models.Task{}
	}
	m.taskList.SetTasks(tasks)
	m.names = make(map[string]string, len(tasks))
	for _, t := range tasks {
		m.names[t.ID] = t.Name
	}

	report, err := m.analyzer.Report()
	if err != nil {
		logger.Error("Failed to build report", "error", err)
		m.err = err
		return
	}
	m.report = report
	if report.HasProposal {
		proposal := report.Proposal.Proposal
		m.schedule.SetProposal(&proposal, m.names)
	} else {
		m.schedule.SetProposal(nil, m.names)
	}
	if m.recCursor >= len(report.Recommendations) {
		m.recCursor = max(len(report.Recommendations)-1, 0)
	}
}

func (m Model) planCmd() tea.Cmd {
	c := m.ctx
	return func() tea.Msg {
		stored, err := c.PlanWeek(context.Background())
		return planDoneMsg{proposal: stored, err: err}
	}
}

func (m Model) replanCmd() tea.Cmd {
	c := m.ctx
	return func() tea.Msg {
		_, stored, err := c.Replan(context.Background())
		return planDoneMsg{proposal: stored, replanned: true, err: err}
	}
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == StateConfirmDelete {
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Generate, m.keys.Replan}
	switch m.state {
	case StateTasks:
		keys = append(keys, tasklist.DefaultKeyMap().Delete)
	case StateRecommendations:
		keys = append(keys, m.keys.Apply)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}
	actions := []key.Binding{m.keys.Generate, m.keys.Replan}
	switch m.state {
	case StateTasks:
		actions = append(actions, tasklist.DefaultKeyMap().Delete)
	case StateRecommendations:
		actions = append(actions, m.keys.Apply)
	}
	return [][]key.Binding{global, navigation, actions}
}
