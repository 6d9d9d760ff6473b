package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/notifier"
)

func TestNotifyCmd_Message(t *testing.T) {
	env := clitest.New(t)

	if err := (&NotifyCmd{Message: "hello", Kind: "success"}).Run(env.Ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	toast := env.LastToast(t)
	if toast.Kind != notifier.KindSuccess || toast.Message != "hello" {
		t.Errorf("unexpected toast: %+v", toast)
	}
}

func TestNotifyCmd_RequiresMessage(t *testing.T) {
	env := clitest.New(t)

	if err := (&NotifyCmd{Kind: "info"}).Run(env.Ctx); err == nil {
		t.Error("expected error without message or reminder")
	}
}

func TestNotifyCmd_ReminderDisabled(t *testing.T) {
	env := clitest.New(t)

	if err := (&NotifyCmd{Reminder: "water", DryRun: true}).Run(env.Ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(env.Toasts.Toasts()) != 0 {
		t.Errorf("expected no toast while reminders are disabled")
	}
	if !strings.Contains(env.Out.String(), "Reminders are disabled") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}

func TestNotifyCmd_Reminder(t *testing.T) {
	env := clitest.New(t)
	if _, err := env.Ctx.Hub.Settings.Set(constants.KeyRemindersEnabled, "true"); err != nil {
		t.Fatalf("failed to enable reminders: %v", err)
	}

	if err := (&NotifyCmd{Reminder: "stretch"}).Run(env.Ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	toast := env.LastToast(t)
	if toast.Kind != notifier.KindReminder || !strings.Contains(toast.Message, "stretch") {
		t.Errorf("unexpected toast: %+v", toast)
	}
	if !toast.Sound {
		t.Error("expected sound preference to be carried")
	}

	if err := (&NotifyCmd{Reminder: "nap"}).Run(env.Ctx); err == nil {
		t.Error("expected error for unknown reminder")
	}
}

func TestNotifyCmd_DryRun(t *testing.T) {
	env := clitest.New(t)

	if err := (&NotifyCmd{Message: "ping", Kind: "info", DryRun: true}).Run(env.Ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if len(env.Toasts.Toasts()) != 0 {
		t.Error("dry run should not send")
	}
	if !strings.Contains(env.Out.String(), "[DryRun]") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}
