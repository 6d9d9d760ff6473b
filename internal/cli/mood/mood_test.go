package mood

import (
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
)

func TestMoodSetAndShow(t *testing.T) {
	env := clitest.New(t)

	if err := (&MoodSetCmd{Mood: "happy", Notes: "good run"}).Run(env.Ctx); err != nil {
		t.Fatalf("mood set failed: %v", err)
	}
	// a second entry the same day replaces the first
	if err := (&MoodSetCmd{Mood: "5"}).Run(env.Ctx); err != nil {
		t.Fatalf("mood set failed: %v", err)
	}
	if err := (&MoodSetCmd{Mood: "2", Date: "2024-03-12"}).Run(env.Ctx); err != nil {
		t.Fatalf("mood set failed: %v", err)
	}

	entry, ok, err := env.Ctx.Hub.Mood.Get("2024-03-13")
	if err != nil || !ok {
		t.Fatalf("expected today's mood, ok=%v err=%v", ok, err)
	}
	if entry.Value != models.MoodVeryHappy {
		t.Errorf("expected very happy, got %v", entry.Value)
	}

	if err := (&MoodShowCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("mood show failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "Very Happy") || !strings.Contains(out, "average 3.5") {
		t.Errorf("unexpected mood show output:\n%s", out)
	}
}

func TestMoodSetCmd_Invalid(t *testing.T) {
	env := clitest.New(t)

	for _, in := range []string{"7", "grumpy"} {
		if err := (&MoodSetCmd{Mood: in}).Run(env.Ctx); err == nil {
			t.Errorf("expected error for mood %q", in)
		}
	}
	if toast := env.LastToast(t); toast.Kind != notifier.KindError {
		t.Errorf("expected error toast, got %s", toast.Kind)
	}
}

func TestMoodCalendarCmd(t *testing.T) {
	env := clitest.New(t)

	if err := (&MoodSetCmd{Mood: "4", Date: "2024-03-02"}).Run(env.Ctx); err != nil {
		t.Fatalf("mood set failed: %v", err)
	}
	if err := (&MoodCalendarCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("mood calendar failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "March 2024") || !strings.Contains(out, models.MoodHappy.Emoji()) {
		t.Errorf("unexpected calendar:\n%s", out)
	}

	if err := (&MoodCalendarCmd{Month: "March"}).Run(env.Ctx); err == nil {
		t.Error("expected error for malformed month")
	}
}
