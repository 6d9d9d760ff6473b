package handlers

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	apperrors "github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

const forwardTimeout = 2 * time.Second

// ShowToast replaces the visible toast with t, schedules its removal and
// forwards it to the external notifier.
func ShowToast(m *state.Model, t notifier.Toast) tea.Cmd {
	t = t.WithSound(m.Prefs.SoundsEnabled)
	if t.Duration <= 0 {
		t.Duration = constants.NotificationDuration
	}
	id := m.NextToastID()
	m.Toast = &state.Toast{ID: id, Toast: t}

	cmds := []tea.Cmd{
		tea.Tick(t.Duration, func(time.Time) tea.Msg { return state.ClearToastMsg{ID: id} }),
	}
	if n := m.Notifier; n != nil {
		parent := m.Context()
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(parent, forwardTimeout)
			defer cancel()
			if err := n.Notify(ctx, t); err != nil {
				logger.Debug("Toast forward failed", "kind", t.Kind, "error", err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// HandleToastMessages shows and clears toasts.
func HandleToastMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ToastMsg:
		return true, ShowToast(m, msg.Toast)
	case state.ClearToastMsg:
		if m.Toast != nil && m.Toast.ID == msg.ID {
			m.Toast = nil
		}
		return true, nil
	}
	return false, nil
}

// errorToast builds the toast for a rejected save.
func errorToast(action string, err error) notifier.Toast {
	logger.Warn("TUI action failed", "action", action, "error", err)
	return notifier.Error(apperrors.UserMessage(action, err))
}
