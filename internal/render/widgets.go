package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/stats"
)

// Stars renders an average rating out of five.
func (p Palette) Stars(avg float64) string {
	return p.fg(p.Warn).Render(stats.StarRating(avg).String())
}

// Balance renders a net calorie value coloured by surplus or deficit.
func (p Palette) Balance(b stats.CalorieBalance) string {
	color := p.Good
	sign := ""
	if b.Class == stats.Surplus {
		color = p.Bad
		sign = "+"
	}
	return p.fg(color).Bold(true).Render(fmt.Sprintf("%s%d kcal (%s)", sign, b.Net, b.Class))
}

// Signed renders a change value, green when it moves the right way.
func (p Palette) Signed(v float64, unit string, lowerIsBetter bool) string {
	color := p.Muted
	switch {
	case v < 0 && lowerIsBetter, v > 0 && !lowerIsBetter:
		color = p.Good
	case v != 0:
		color = p.Bad
	}
	return p.fg(color).Render(fmt.Sprintf("%+.1f %s", v, unit))
}

// Glasses draws one cup per glass of the goal, filled up to intake.
func (p Palette) Glasses(intake, goal int) string {
	if goal <= 0 {
		return ""
	}
	filled := min(intake, goal)
	out := p.fg(p.Bar).Render(strings.Repeat("💧", filled)) +
		p.fg(p.Empty).Render(strings.Repeat("○", goal-filled))
	if intake > goal {
		out += p.fg(p.Good).Render(fmt.Sprintf(" +%d", intake-goal))
	}
	return out
}

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar renders a mood month grid. Days with an entry show the mood
// emoji; today is highlighted.
func (p Palette) Calendar(weeks [][]stats.CalendarDay) string {
	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	today := cell.Foreground(p.Accent).Bold(true)

	var b strings.Builder
	for _, h := range weekdayHeader {
		b.WriteString(cell.Foreground(p.Muted).Render(h))
	}
	for _, week := range weeks {
		b.WriteByte('\n')
		for _, d := range week {
			style := cell
			if d.Today {
				style = today
			}
			switch {
			case d.Day == 0:
				b.WriteString(cell.Render(""))
			case d.Emoji != "":
				b.WriteString(style.Render(d.Emoji))
			default:
				b.WriteString(style.Render(fmt.Sprintf("%d", d.Day)))
			}
		}
	}
	return b.String()
}

// Table lays out rows under a header with padded columns.
func (p Palette) Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := range widths {
			if i < len(r) {
				widths[i] = max(widths[i], lipgloss.Width(r[i]))
			}
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			parts[i] = c + strings.Repeat(" ", w-lipgloss.Width(c))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(p.Heading(line(header)))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(line(r))
	}
	return b.String()
}
