// Package dashboard renders the at-a-glance overview tab.
package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/insights"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

// Overview is everything the dashboard shows.
type Overview struct {
	Name     string
	Now      time.Time
	Data     insights.Snapshot
	Water    models.WaterStatus
	Mood     *models.MoodEntry
	Insights []insights.Insight
}

type Model struct {
	theme    render.Palette
	overview Overview
	width    int
}

func New() Model {
	return Model{theme: render.Theme("")}
}

func (m *Model) SetOverview(theme render.Palette, o Overview) {
	m.theme = theme
	m.overview = o
}

func (m *Model) SetSize(width, _ int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m Model) card(title, body string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(0, 1).
		Width(26).
		Render(m.theme.Heading(title) + "\n" + body)
}

func (m Model) sleepCard() string {
	recent := stats.WindowedSeries(m.overview.Data.Sleep, 7)
	if len(recent) == 0 {
		return m.card("😴 Sleep", m.theme.Faint("No sleep logged"))
	}
	avg := stats.AverageDuration(recent)
	return m.card("😴 Sleep", fmt.Sprintf("%.1fh avg (7 nights)\n%s", avg, m.theme.Stars(stats.AverageQuality(recent))))
}

func (m Model) weightCard() string {
	if len(m.overview.Data.Weight.Records) == 0 {
		return m.card("⚖️ Weight", m.theme.Faint("No weigh-ins"))
	}
	s := stats.SummarizeWeight(m.overview.Data.Weight)
	body := fmt.Sprintf("%.1f %s", s.Current, s.Unit)
	if s.Goal > 0 {
		body += "\n" + m.theme.ProgressBar(stats.WeightGoalProgress(s), 14)
	}
	return m.card("⚖️ Weight", body)
}

func (m Model) waterCard() string {
	w := m.overview.Water
	return m.card("💧 Water", fmt.Sprintf("%d/%d cups\n%s", w.Intake, w.Goal,
		m.theme.ProgressBar(stats.GoalProgress(float64(w.Intake), float64(w.Goal)), 14)))
}

func (m Model) caloriesCard() string {
	d := m.overview.Data
	consumed := stats.TotalCalories(d.MealsToday)
	burned := stats.SummarizeRuns(d.RunsToday).Calories
	body := fmt.Sprintf("%d eaten · %d burned\n%s", consumed, burned, m.theme.Balance(stats.NetCalories(consumed, burned)))
	return m.card("🍎 Calories", body)
}

func (m Model) moodCard() string {
	if m.overview.Mood == nil {
		return m.card("🙂 Mood", m.theme.Faint("Not logged today"))
	}
	v := m.overview.Mood.Value
	return m.card("🙂 Mood", v.Emoji()+" "+v.Label())
}

func (m Model) View() string {
	o := m.overview
	title := greeting(o.Now)
	if o.Name != "" {
		title += ", " + o.Name
	}
	title += "!"

	cards := []string{m.sleepCard(), m.weightCard(), m.waterCard(), m.caloriesCard(), m.moodCard()}
	var rows []string
	perRow := max(1, m.width/28)
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	parts := []string{m.theme.Heading(title), m.theme.Faint(o.Now.Format("Monday, January 2")), ""}
	parts = append(parts, rows...)
	parts = append(parts, "", m.theme.Heading("Insights"))
	if len(o.Insights) == 0 {
		parts = append(parts, m.theme.Faint("Nothing to flag. Keep it up!"))
	}
	for _, in := range o.Insights {
		parts = append(parts, "• "+in.Reason)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
