package mood

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

// SetMoodMsg logs Value for today without notes.
type SetMoodMsg struct {
	Value models.MoodValue
}

// MoodFormMsg asks for the full form, notes included.
type MoodFormMsg struct {
	Current models.MoodValue
	Notes   string
}

type KeyMap struct {
	Pick  key.Binding
	Form  key.Binding
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "log mood"),
		),
		Form: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "mood with notes"),
		),
		Prev: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev month"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this month"),
		),
	}
}

type Model struct {
	keys  KeyMap
	theme render.Palette
	data  models.MoodData
	today string
	month time.Time
}

func New() Model {
	return Model{keys: DefaultKeyMap(), data: models.MoodData{}}
}

// SetData replaces the mood history. The calendar follows today unless
// the user has paged to another month.
func (m *Model) SetData(theme render.Palette, data models.MoodData, now time.Time) {
	m.theme = theme
	m.data = data
	m.today = now.Format(constants.DateFormat)
	if m.month.IsZero() {
		m.month = firstOfMonth(now)
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Month is the month currently shown.
func (m Model) Month() time.Time { return m.month }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Pick):
		v := models.MoodValue(km.String()[0] - '0')
		return m, func() tea.Msg { return SetMoodMsg{Value: v} }
	case key.Matches(km, m.keys.Form):
		current := m.data[m.today]
		return m, func() tea.Msg { return MoodFormMsg{Current: current.Value, Notes: current.Notes} }
	case key.Matches(km, m.keys.Prev):
		m.month = m.month.AddDate(0, -1, 0)
	case key.Matches(km, m.keys.Next):
		m.month = m.month.AddDate(0, 1, 0)
	case key.Matches(km, m.keys.Today):
		if t, err := time.Parse(constants.DateFormat, m.today); err == nil {
			m.month = firstOfMonth(t)
		}
	}
	return m, nil
}

func (m Model) View() string {
	today := "How are you feeling today? Press 1-5."
	if e, ok := m.data[m.today]; ok {
		today = fmt.Sprintf("Today: %s %s", e.Value.Emoji(), e.Value.Label())
		if e.Notes != "" {
			today += "  " + m.theme.Faint(e.Notes)
		}
	}

	var scale string
	for v := models.MoodVerySad; v <= models.MoodVeryHappy; v++ {
		scale += fmt.Sprintf("[%d] %s %s  ", v, v.Emoji(), v.Label())
	}

	weeks := stats.MoodCalendar(m.month.Year(), m.month.Month(), m.data, m.today)
	cal := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Heading(m.month.Format("January 2006")),
		m.theme.Calendar(weeks),
	)

	parts := []string{today, m.theme.Faint(scale), "", cal}
	series := stats.MoodSeries(m.data, constants.MoodChartWindow)
	if len(series) > 1 {
		points := make([]stats.Point, len(series))
		for i, p := range series {
			points[i] = stats.Point{Label: p.Date, Value: float64(p.Value)}
		}
		parts = append(parts, "", fmt.Sprintf("Recent: %s  average %.1f", render.Sparkline(points), stats.AverageMood(series)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
