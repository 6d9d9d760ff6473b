package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/tui/handlers"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

type messageHandler func(*state.Model, tea.Msg) (bool, tea.Cmd)

var messageHandlers = []messageHandler{
	handlers.HandleToastMessages,
	handlers.HandleDataChanged,
	handlers.HandleBreatheMessages,
	handlers.HandleRecordMessages,
}

// fromEvents reports whether msg was read from the event channel, which
// must be listened to again after every delivery.
func fromEvents(msg tea.Msg) bool {
	switch msg.(type) {
	case state.ToastMsg, state.DataChangedMsg, state.SessionStepMsg, state.SessionTickMsg, state.SessionDoneMsg:
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if fromEvents(msg) {
		cmds = append(cmds, m.Listen())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, tea.Batch(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Breathe, cmd = m.Breathe.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)
	}

	for _, handle := range messageHandlers {
		if handled, cmd := handle(m.Model, msg); handled {
			return m, tea.Batch(append(cmds, cmd)...)
		}
	}

	switch m.State {
	case constants.StateForm:
		return m, tea.Batch(append(cmds, handlers.HandleFormState(m.Model, msg))...)
	case constants.StateConfirmDelete:
		return m, tea.Batch(append(cmds, handlers.HandleConfirmDeleteState(m.Model, msg))...)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(m.Model, msg); handled {
			return m, tea.Batch(append(cmds, cmd)...)
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case constants.StateSleep:
		m.Sleep, cmd = m.Sleep.Update(msg)
	case constants.StateWeight:
		m.Weight, cmd = m.Weight.Update(msg)
	case constants.StateWater:
		m.Water, cmd = m.Water.Update(msg)
	case constants.StateMeals:
		m.Meals, cmd = m.Meals.Update(msg)
	case constants.StateMood:
		m.Mood, cmd = m.Mood.Update(msg)
	case constants.StateJournal:
		m.Journal, cmd = m.Journal.Update(msg)
	case constants.StateBreathe:
		m.Breathe, cmd = m.Breathe.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
