package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

func confirmDelete(m *state.Model, label string, del func() (notifier.Toast, error)) tea.Cmd {
	m.PreviousState = m.State
	m.State = constants.StateConfirmDelete
	m.ConfirmLabel = label
	m.ConfirmDelete = del
	return nil
}

// HandleConfirmDeleteState handles the delete confirmation state
func HandleConfirmDeleteState(m *state.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch km.String() {
	case "y", "Y":
		del := m.ConfirmDelete
		m.State = m.PreviousState
		m.ConfirmDelete = nil
		m.ConfirmLabel = ""
		if del == nil {
			return nil
		}
		toast, err := del()
		if err == nil {
			m.Refresh()
		}
		return ShowToast(m, toast)
	case "n", "N", "esc", "q":
		m.State = m.PreviousState
		m.ConfirmDelete = nil
		m.ConfirmLabel = ""
	}
	return nil
}
