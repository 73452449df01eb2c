package tasklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type DeleteTaskMsg struct {
	ID string
}

type Item struct {
	Task models.Task
}

func (i Item) Title() string { return i.Task.Name }
func (i Item) Description() string {
	desc := fmt.Sprintf("%.1fh | urgency %.1f", i.Task.EstimatedHours, i.Task.Urgency)
	if i.Task.DeadlineDayIndex != nil {
		desc += " | due " + utils.DayName(*i.Task.DeadlineDayIndex)
	}
	return desc
}
func (i Item) FilterValue() string { return i.Task.Name }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(tasks []models.Task, width, height int) Model {
	l := list.New(items(tasks), list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the parent model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(tasks []models.Task) []list.Item {
	out := make([]list.Item, len(tasks))
	for i, t := range tasks {
		out[i] = Item{Task: t}
	}
	return out
}

func (m *Model) SetTasks(tasks []models.Task) {
	m.list.SetItems(items(tasks))
}

// Len returns the number of listed tasks.
func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTaskMsg{ID: i.Task.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No tasks yet.\n  Add one with 'pomoplan task add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
