package activities

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/routines"
)

const fastTick = time.Millisecond

func TestBreatheCmd(t *testing.T) {
	env := clitest.New(t)
	env.Ctx.In = strings.NewReader("")

	cmd := &BreatheCmd{Pattern: "4-7-8", Cycles: 1, Tick: fastTick}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("breathe failed: %v", err)
	}

	out := env.Out.String()
	for _, want := range []string{"4-7-8 Technique", "[1/3] Breathe In (0:04)", "[2/3] Hold (0:07)", "[3/3] Breathe Out (0:08)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	toast := env.LastToast(t)
	if toast.Kind != notifier.KindSuccess || !strings.Contains(toast.Message, "Breathing exercise complete") {
		t.Errorf("unexpected toast: %+v", toast)
	}
}

func TestBreatheCmd_UnknownPattern(t *testing.T) {
	env := clitest.New(t)

	if err := (&BreatheCmd{Pattern: "1-2-3", Cycles: 1, Tick: fastTick}).Run(env.Ctx); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
	if env.LastToast(t).Kind != notifier.KindError {
		t.Error("expected error toast")
	}
}

func TestBreatheCmd_InvalidCycles(t *testing.T) {
	env := clitest.New(t)

	if err := (&BreatheCmd{Pattern: "deep", Cycles: 0, Tick: fastTick}).Run(env.Ctx); err == nil {
		t.Fatal("expected error for zero cycles")
	}
}

func TestMeditateCmd(t *testing.T) {
	env := clitest.New(t)
	env.Ctx.In = strings.NewReader("")

	if err := (&MeditateCmd{Kind: "focus", Minutes: 1, Tick: fastTick}).Run(env.Ctx); err != nil {
		t.Fatalf("meditate failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "Deep Focus (1:00)") {
		t.Errorf("expected custom length in output:\n%s", out)
	}
	if !strings.Contains(out, "Exhale") {
		t.Errorf("expected breathing cues in output:\n%s", out)
	}
	if !strings.Contains(env.LastToast(t).Message, "Meditation session complete") {
		t.Errorf("unexpected toast: %+v", env.LastToast(t))
	}
}

func TestMeditateCmd_NegativeMinutes(t *testing.T) {
	env := clitest.New(t)

	if err := (&MeditateCmd{Kind: "calm", Minutes: -1, Tick: fastTick}).Run(env.Ctx); err == nil {
		t.Fatal("expected error for negative minutes")
	}
}

func TestWorkoutCmd(t *testing.T) {
	env := clitest.New(t)
	env.Ctx.In = strings.NewReader("")

	if err := (&WorkoutCmd{Routine: "yoga", Tick: fastTick}).Run(env.Ctx); err != nil {
		t.Fatalf("workout failed: %v", err)
	}
	steps := routines.Routine("yoga")
	if !strings.Contains(env.Out.String(), steps[0].Name) {
		t.Errorf("expected first step in output:\n%s", env.Out.String())
	}
	if !strings.Contains(env.LastToast(t).Message, "Workout complete") {
		t.Errorf("unexpected toast: %+v", env.LastToast(t))
	}
}

func TestWorkoutCmd_Unknown(t *testing.T) {
	env := clitest.New(t)

	if err := (&WorkoutCmd{Routine: "parkour", Tick: fastTick}).Run(env.Ctx); err == nil {
		t.Fatal("expected error for unknown routine")
	}
}

func TestStretchCmd_Quit(t *testing.T) {
	env := clitest.New(t)
	// the reader races the first step; a quit before it starts stops the
	// session before anything completes, a quit after stops it mid-way
	env.Ctx.In = strings.NewReader("q\n")

	if err := (&StretchCmd{Tick: 50 * time.Millisecond}).Run(env.Ctx); err != nil {
		t.Fatalf("stretch failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "Session stopped after 0/") {
		t.Errorf("expected early stop, got:\n%s", env.Out.String())
	}
	if _, ok := env.Toasts.Last(); ok {
		t.Error("a stopped session should not send the completion toast")
	}
}

func TestPlayerControl(t *testing.T) {
	env := clitest.New(t)
	p := newPlayer(env.Ctx, fastTick, "test", "done")
	sess := routines.NewSession([]routines.Step{{Name: "one", Seconds: 1}})

	if quit := p.control(sess, "x"); quit {
		t.Error("unknown command should not quit")
	}
	if !strings.Contains(env.Out.String(), "Controls:") {
		t.Errorf("expected help for unknown command, got:\n%s", env.Out.String())
	}
	// no active step yet, so toggling is ignored
	if quit := p.control(sess, "p"); quit {
		t.Error("pause should not quit")
	}
	if quit := p.control(sess, "Q"); !quit {
		t.Error("q should quit")
	}
}

func TestRemindCmd_Disabled(t *testing.T) {
	env := clitest.New(t)

	if err := (&RemindCmd{For: time.Millisecond}).Run(env.Ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "Reminders are disabled") {
		t.Errorf("unexpected output:\n%s", env.Out.String())
	}
}

func TestRemindCmd_RunsUntilDeadline(t *testing.T) {
	env := clitest.New(t)
	if _, err := env.Ctx.Hub.Settings.Set(constants.KeyRemindersEnabled, "true"); err != nil {
		t.Fatalf("failed to enable reminders: %v", err)
	}

	if err := (&RemindCmd{For: 20 * time.Millisecond}).Run(env.Ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	out := env.Out.String()
	for _, want := range []string{"water every 1h0m0s", "stretch every 2h0m0s", "Reminders stopped."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
