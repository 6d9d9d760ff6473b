// Package tui is the full-screen wellness dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/tui/components/breathe"
	"github.com/julianstephens/wellhub/internal/tui/components/journal"
	"github.com/julianstephens/wellhub/internal/tui/components/meals"
	"github.com/julianstephens/wellhub/internal/tui/components/mood"
	"github.com/julianstephens/wellhub/internal/tui/components/sleep"
	"github.com/julianstephens/wellhub/internal/tui/components/water"
	"github.com/julianstephens/wellhub/internal/tui/components/weight"
	"github.com/julianstephens/wellhub/internal/tui/handlers"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

type Options struct {
	// Notifier also receives every toast, typically the desktop tray.
	Notifier notifier.Notifier
	// WatchPath is a store file to watch for outside changes.
	WatchPath string
	// Tick overrides the session countdown period.
	Tick time.Duration
}

type Model struct {
	*state.Model
	watchPath string
}

func NewModel(hub *records.Hub, opts Options) Model {
	return Model{
		Model:     state.New(hub, state.Options{Notifier: opts.Notifier, Tick: opts.Tick}),
		watchPath: opts.WatchPath,
	}
}

func (m Model) Init() tea.Cmd {
	if m.watchPath != "" {
		if err := handlers.StartWatcher(m.Model, m.watchPath); err != nil {
			logger.Warn("Live reload disabled", "error", err)
		}
	}
	if handlers.StartReminders(m.Model) {
		logger.Info("Reminders started")
	}
	return tea.Batch(m.Listen(), tea.SetWindowTitle(constants.AppName))
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	return append(keys, m.actionKeys()...)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down}
	return [][]key.Binding{global, navigation, m.actionKeys()}
}

func (m Model) actionKeys() []key.Binding {
	switch m.State {
	case constants.StateSleep:
		return []key.Binding{sleep.DefaultKeyMap().Add}
	case constants.StateWeight:
		k := weight.DefaultKeyMap()
		return []key.Binding{k.Add, k.Goal}
	case constants.StateWater:
		k := water.DefaultKeyMap()
		return []key.Binding{k.Drink, k.Undo, k.Goal}
	case constants.StateMeals:
		k := meals.DefaultKeyMap()
		return []key.Binding{k.AddMeal, k.AddRun, k.Delete}
	case constants.StateMood:
		k := mood.DefaultKeyMap()
		return []key.Binding{k.Pick, k.Form, k.Prev, k.Next}
	case constants.StateJournal:
		k := journal.DefaultKeyMap()
		return []key.Binding{k.Add, k.Edit, k.Delete, k.Read}
	case constants.StateBreathe:
		k := breathe.DefaultKeyMap()
		if m.Breathe.Running() {
			return []key.Binding{k.Toggle, k.Skip, k.Stop}
		}
		return []key.Binding{k.Prev, k.Next, k.More, k.Fewer, k.Start}
	}
	return nil
}
