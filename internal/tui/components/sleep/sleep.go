package sleep

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clisleep "github.com/julianstephens/wellhub/internal/cli/sleep"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type AddSleepMsg struct{}

type Item struct {
	Record models.SleepRecord
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s → %s", i.Record.Date, i.Record.SleepTime, i.Record.WakeTime)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%.1fh  %s", i.Record.Duration, stats.StarRating(float64(i.Record.Quality)))
	if i.Record.Notes != "" {
		desc += "  " + i.Record.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Record.Date + " " + i.Record.Notes }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log sleep"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	summary string
	empty   bool
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Sleep Log"
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	return Model{list: l, keys: keys, empty: true}
}

// SetRecords shows records newest first alongside their summary.
func (m *Model) SetRecords(theme render.Palette, recs []models.SleepRecord) {
	sorted := stats.SortByDate(recs)
	items := make([]list.Item, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		items = append(items, Item{Record: sorted[i]})
	}
	m.list.SetItems(items)
	m.empty = len(recs) == 0
	if !m.empty {
		m.summary = clisleep.Summary(theme, recs)
	}
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
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddSleepMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.empty {
		return lipgloss.JoinVertical(lipgloss.Left,
			"No sleep logged yet.",
			"",
			"Press 'a' to log last night's sleep.",
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		lipgloss.NewStyle().PaddingLeft(2).Render(strings.TrimRight(m.summary, "\n")),
	)
}
