package weight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cliweight "github.com/julianstephens/wellhub/internal/cli/weight"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type AddWeightMsg struct{}

type SetGoalMsg struct {
	Current float64
}

type Item struct {
	Record models.WeightRecord
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %.1f %s", i.Record.Date, i.Record.Weight, i.Record.Unit)
}

func (i Item) Description() string { return i.Record.Notes }

func (i Item) FilterValue() string { return i.Record.Date }

type KeyMap struct {
	Add  key.Binding
	Goal key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log weight"),
		),
		Goal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "set goal"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	goal    float64
	summary string
	empty   bool
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Weigh-ins"
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Goal}
	}
	return Model{list: l, keys: keys, empty: true}
}

func (m *Model) SetData(theme render.Palette, data models.WeightData, heightCm float64) {
	sorted := stats.SortByDate(data.Records)
	items := make([]list.Item, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		items = append(items, Item{Record: sorted[i]})
	}
	m.list.SetItems(items)
	m.goal = data.Goal
	m.empty = len(sorted) == 0
	if !m.empty {
		m.summary = cliweight.Summary(theme, data, heightCm)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width/3, height)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddWeightMsg{} }
		case key.Matches(msg, m.keys.Goal):
			goal := m.goal
			return m, func() tea.Msg { return SetGoalMsg{Current: goal} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.empty {
		return lipgloss.JoinVertical(lipgloss.Left,
			"No weigh-ins yet.",
			"",
			"Press 'a' to log your weight or 'g' to set a goal.",
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		lipgloss.NewStyle().PaddingLeft(2).Render(strings.TrimRight(m.summary, "\n")),
	)
}
