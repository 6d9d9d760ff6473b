package water

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cliwater "github.com/julianstephens/wellhub/internal/cli/water"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
)

type DrinkMsg struct{}

type UndoMsg struct{}

type SetGoalMsg struct {
	Current int
}

type KeyMap struct {
	Drink key.Binding
	Undo  key.Binding
	Goal  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Drink: key.NewBinding(
			key.WithKeys("+", "=", "w"),
			key.WithHelp("+", "add a cup"),
		),
		Undo: key.NewBinding(
			key.WithKeys("-", "u"),
			key.WithHelp("-", "remove a cup"),
		),
		Goal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "set goal"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drink, k.Undo, k.Goal}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model has no list; it renders today's glasses and the week chart.
type Model struct {
	keys    KeyMap
	help    help.Model
	status  models.WaterStatus
	summary string
	width   int
	height  int
}

func New() Model {
	return Model{keys: DefaultKeyMap(), help: help.New()}
}

func (m *Model) SetStatus(theme render.Palette, st models.WaterStatus, week models.WeeklyWater) {
	m.status = st
	m.summary = cliwater.Summary(theme, st, week)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Drink):
			return m, func() tea.Msg { return DrinkMsg{} }
		case key.Matches(msg, m.keys.Undo):
			return m, func() tea.Msg { return UndoMsg{} }
		case key.Matches(msg, m.keys.Goal):
			goal := m.status.Goal
			return m, func() tea.Msg { return SetGoalMsg{Current: goal} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.TrimRight(m.summary, "\n"),
		"",
		m.help.View(m.keys),
	)
}
