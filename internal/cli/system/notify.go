package system

import (
	"errors"
	"strings"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/reminders"
)

// NotifyCmd sends one toast. With --reminder it sends the named wellness
// reminder, honouring the reminders preference, so it can be driven by cron.
type NotifyCmd struct {
	Message  string `arg:"" optional:"" help:"Message to send."`
	Kind     string `help:"Toast kind." enum:"success,error,info,warning,reminder" default:"info"`
	Reminder string `help:"Send a built-in reminder instead (water, stretch, breathe)."`
	DryRun   bool   `help:"Print the toast instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	toast, err := c.toast(ctx)
	if err != nil || toast == nil {
		return err
	}

	if c.DryRun {
		ctx.Println("[DryRun] " + toast.Text())
		return nil
	}
	ctx.Notify(*toast)
	return nil
}

func (c *NotifyCmd) toast(ctx *cli.Context) (*notifier.Toast, error) {
	if c.Reminder == "" {
		if strings.TrimSpace(c.Message) == "" {
			return nil, errors.New("a message or --reminder is required")
		}
		t := notifier.NewToast(notifier.Kind(c.Kind), c.Message)
		return &t, nil
	}

	if !ctx.Preferences().RemindersEnabled {
		if c.DryRun {
			ctx.Println("Reminders are disabled in settings.")
		}
		return nil, nil
	}
	for _, r := range reminders.Defaults() {
		if r.Name == c.Reminder {
			t := notifier.NewToast(notifier.KindReminder, r.Message)
			return &t, nil
		}
	}
	return nil, errors.New("unknown reminder " + c.Reminder + " (expected water, stretch or breathe)")
}
