package handlers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/reminders"
	"github.com/julianstephens/wellhub/internal/tui/state"
	"github.com/julianstephens/wellhub/internal/watch"
)

type reloader interface {
	Reload() error
}

// StartWatcher posts a DataChangedMsg whenever the file at path changes.
// It runs until the model is closed.
func StartWatcher(m *state.Model, path string) error {
	w, err := watch.New(path, constants.WatchDebounce)
	if err != nil {
		return err
	}
	ctx := m.Context()
	if err := w.Start(ctx); err != nil {
		return err
	}
	go func() {
		defer w.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.Changes():
				m.Post(state.DataChangedMsg{})
			}
		}
	}()
	logger.Debug("Watching store for changes", "path", path)
	return nil
}

// StartReminders runs the reminder scheduler when reminders are enabled.
// Each reminder arrives as a ToastMsg.
func StartReminders(m *state.Model) bool {
	if !m.Prefs.RemindersEnabled {
		return false
	}
	post := notifier.Func(func(_ context.Context, t notifier.Toast) error {
		m.Post(state.ToastMsg{Toast: t})
		return nil
	})
	go reminders.New(post, m.Prefs.SoundsEnabled).Run(m.Context())
	return true
}

// HandleDataChanged reloads a file-backed store and refreshes every tab.
func HandleDataChanged(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(state.DataChangedMsg); !ok {
		return false, nil
	}
	if r, ok := m.Hub.Provider.(reloader); ok {
		if err := r.Reload(); err != nil {
			logger.Warn("Failed to reload store", "error", err)
			return true, nil
		}
	}
	m.Refresh()
	return true, nil
}
