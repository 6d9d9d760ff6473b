package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateDashboard:
		content = m.Dashboard.View()
	case constants.StateSleep:
		content = m.Sleep.View()
	case constants.StateWeight:
		content = m.Weight.View()
	case constants.StateWater:
		content = m.Water.View()
	case constants.StateMeals:
		content = m.Meals.View()
	case constants.StateMood:
		content = m.Mood.View()
	case constants.StateJournal:
		content = m.Journal.View()
	case constants.StateBreathe:
		content = m.Breathe.View()
	case constants.StateForm:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var toast string
	if m.Toast != nil {
		toast = toastBox(m.Toast.Toast)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		toast,
		docStyle.Render(content),
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.State
	if int(active) >= constants.NumMainTabs {
		active = m.PreviousState
	}
	var tabs []string
	for i, title := range constants.TabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	if m.Form == nil {
		return ""
	}
	parts := []string{m.Theme.Heading(m.FormTitle), "", m.Form.View()}
	if m.FormError != "" {
		parts = append(parts, dangerStyle.Render(m.FormError))
	}
	parts = append(parts, warningStyle.Render("esc to cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.Width, max(m.Height-6, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete "+m.ConfirmLabel+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
