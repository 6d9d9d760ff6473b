package sleep

import (
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/notifier"
)

func TestSleepAddCmd(t *testing.T) {
	env := clitest.New(t)

	cmd := &SleepAddCmd{SleepTime: "23:00", WakeTime: "06:00", Quality: 4}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("sleep add failed: %v", err)
	}

	recs, err := env.Ctx.Hub.Sleep.Records()
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Duration != 7.0 {
		t.Errorf("expected duration 7.0, got %v", recs[0].Duration)
	}
	if recs[0].Date != "2024-03-13" {
		t.Errorf("expected today's date, got %s", recs[0].Date)
	}

	toast := env.LastToast(t)
	if toast.Kind != notifier.KindSuccess || !strings.Contains(toast.Message, "7.0 hours") {
		t.Errorf("unexpected toast: %+v", toast)
	}
}

func TestSleepAddCmd_InvalidQuality(t *testing.T) {
	env := clitest.New(t)

	cmd := &SleepAddCmd{SleepTime: "23:00", WakeTime: "06:00", Quality: 9}
	if err := cmd.Run(env.Ctx); err == nil {
		t.Fatal("expected validation error")
	}
	if toast := env.LastToast(t); toast.Kind != notifier.KindError {
		t.Errorf("expected error toast, got %s", toast.Kind)
	}

	recs, _ := env.Ctx.Hub.Sleep.Records()
	if len(recs) != 0 {
		t.Errorf("invalid record was saved")
	}
}

func TestSleepListAndStats(t *testing.T) {
	env := clitest.New(t)

	if err := (&SleepListCmd{Limit: 7}).Run(env.Ctx); err != nil {
		t.Fatalf("sleep list failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "No sleep records yet") {
		t.Errorf("expected empty message, got %q", env.Out.String())
	}

	for _, in := range []SleepAddCmd{
		{SleepTime: "22:00", WakeTime: "06:00", Quality: 5, Date: "2024-03-11"},
		{SleepTime: "23:00", WakeTime: "05:00", Quality: 2, Date: "2024-03-12"},
	} {
		in := in
		if err := in.Run(env.Ctx); err != nil {
			t.Fatalf("sleep add failed: %v", err)
		}
	}

	env.Out.Reset()
	if err := (&SleepListCmd{Limit: 7}).Run(env.Ctx); err != nil {
		t.Fatalf("sleep list failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "2024-03-11") || !strings.Contains(out, "8.0h") {
		t.Errorf("list output missing record: %q", out)
	}

	env.Out.Reset()
	if err := (&SleepStatsCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("sleep stats failed: %v", err)
	}
	out = env.Out.String()
	if !strings.Contains(out, "Average duration: 7.0 hours") {
		t.Errorf("stats output missing average: %q", out)
	}
	if !strings.Contains(out, "Optimal bedtime:  22:00") {
		t.Errorf("stats output missing bedtime: %q", out)
	}
}
