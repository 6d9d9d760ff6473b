package meals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/cli/nutrition"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
)

type AddMealMsg struct{}

type AddRunMsg struct{}

type DeleteMealMsg struct {
	ID    models.ID
	Label string
}

type DeleteRunMsg struct {
	ID    models.ID
	Label string
}

// Item is either a meal or a run logged today.
type Item struct {
	Meal *models.Meal
	Run  *models.RunningActivity
}

func (i Item) Title() string {
	if i.Run != nil {
		return fmt.Sprintf("🏃 %.1f km run", i.Run.Distance)
	}
	return fmt.Sprintf("%s  %s: %s", i.Meal.Time, i.Meal.Type.Title(), i.Meal.Name)
}

func (i Item) Description() string {
	if i.Run != nil {
		return fmt.Sprintf("%d min  %s/km  %s  -%d kcal", i.Run.Time, i.Run.Pace, i.Run.Intensity.Label(), i.Run.Calories)
	}
	return fmt.Sprintf("%d kcal", i.Meal.Calories)
}

func (i Item) FilterValue() string {
	if i.Run != nil {
		return "run " + string(i.Run.Intensity)
	}
	return i.Meal.Name + " " + string(i.Meal.Type)
}

type KeyMap struct {
	AddMeal key.Binding
	AddRun  key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddMeal: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add meal"),
		),
		AddRun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "log run"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	summary string
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.AddMeal, keys.AddRun, keys.Delete}
	}
	return Model{list: l, keys: keys}
}

// SetDay shows date's meals by time, then its runs.
func (m *Model) SetDay(theme render.Palette, date string, meals []models.Meal, runs []models.RunningActivity, goal int) {
	sorted := append([]models.Meal(nil), meals...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	items := make([]list.Item, 0, len(sorted)+len(runs))
	for i := range sorted {
		items = append(items, Item{Meal: &sorted[i]})
	}
	for i := range runs {
		items = append(items, Item{Run: &runs[i]})
	}
	m.list.SetItems(items)
	m.summary = nutrition.Summary(theme, date, meals, runs, goal)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width/2, height)
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
		case key.Matches(msg, m.keys.AddMeal):
			return m, func() tea.Msg { return AddMealMsg{} }
		case key.Matches(msg, m.keys.AddRun):
			return m, func() tea.Msg { return AddRunMsg{} }
		case key.Matches(msg, m.keys.Delete):
			item, ok := m.list.SelectedItem().(Item)
			if !ok {
				break
			}
			if item.Run != nil {
				id, label := item.Run.ID, item.Title()
				return m, func() tea.Msg { return DeleteRunMsg{ID: id, Label: label} }
			}
			id, label := item.Meal.ID, item.Meal.Name
			return m, func() tea.Msg { return DeleteMealMsg{ID: id, Label: label} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	left := m.list.View()
	if len(m.list.Items()) == 0 {
		left = lipgloss.JoinVertical(lipgloss.Left,
			"Nothing logged today.",
			"",
			"Press 'a' to add a meal or 'r' to log a run.",
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		lipgloss.NewStyle().PaddingLeft(2).Render(strings.TrimRight(m.summary, "\n")),
	)
}
