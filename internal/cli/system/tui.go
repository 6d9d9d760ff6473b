package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/tui"
)

type TuiCmd struct {
	NoWatch bool `help:"Do not reload when the store changes on disk."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	// Console output would corrupt the alt screen, so toasts only go to the tray.
	opts := tui.Options{
		Notifier: notifier.BestEffort(notifier.NewTray(ctx.Config.TrayDir)),
	}
	if path := ctx.Store.GetConfigPath(); !c.NoWatch && storage.DetectBackend(path) != storage.BackendPostgres {
		opts.WatchPath = path
	}

	model := tui.NewModel(ctx.Records(), opts)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
