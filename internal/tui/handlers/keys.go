package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

// capturesKeys reports whether the active tab needs every key, such as a
// list being filtered or a running session.
func capturesKeys(m *state.Model) bool {
	switch m.State {
	case constants.StateSleep:
		return m.Sleep.Filtering()
	case constants.StateWeight:
		return m.Weight.Filtering()
	case constants.StateMeals:
		return m.Meals.Filtering()
	case constants.StateJournal:
		return m.Journal.Filtering()
	case constants.StateBreathe:
		return m.Breathe.Running()
	}
	return false
}

// HandleGlobalKeys handles global key presses
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}
	if int(m.State) >= constants.NumMainTabs || capturesKeys(m) {
		return false, nil
	}
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Tab):
		m.State = constants.SessionState((int(m.State) + 1) % constants.NumMainTabs)
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		m.State = constants.SessionState((int(m.State) - 1 + constants.NumMainTabs) % constants.NumMainTabs)
		return true, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}
