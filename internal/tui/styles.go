package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/notifier"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// toastBox frames a toast in its kind's colour.
func toastBox(t notifier.Toast) string {
	color := notifier.Style(t.Kind).GetForeground()
	return toastStyle.BorderForeground(color).Render(notifier.Render(t))
}
