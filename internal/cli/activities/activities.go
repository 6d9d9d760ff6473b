package activities

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/reminders"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/utils"
)

type BreatheCmd struct {
	Pattern string        `arg:"" optional:"" help:"Breathing pattern (4-4-4-4, 4-7-8, deep)." default:"4-4-4-4"`
	Cycles  int           `short:"c" help:"Number of cycles." default:"4"`
	Tick    time.Duration `hidden:"" help:"Length of one timer second." default:"1s"`
}

func (c *BreatheCmd) Run(ctx *cli.Context) error {
	pattern, ok := routines.Breathing(c.Pattern)
	if !ok {
		return ctx.Reject("unknown breathing pattern", fmt.Errorf("%q (choose from %s)", c.Pattern, strings.Join(routines.BreathingNames(), ", ")))
	}
	if c.Cycles < 1 {
		return ctx.Reject("invalid cycles", fmt.Errorf("must be at least 1"))
	}

	p := newPlayer(ctx, c.Tick, "🌬️  "+pattern.Title, "Breathing exercise complete! 🎉 Great job!")
	return p.play(pattern.Steps(c.Cycles), nil)
}

type MeditateCmd struct {
	Kind    string        `arg:"" optional:"" help:"Meditation type (calm, focus, sleep, stress)." default:"calm"`
	Minutes int           `short:"m" help:"Session length in minutes. Defaults to the type's length."`
	Tick    time.Duration `hidden:"" help:"Length of one timer second." default:"1s"`
}

func (c *MeditateCmd) Run(ctx *cli.Context) error {
	if c.Minutes < 0 {
		return ctx.Reject("invalid duration", fmt.Errorf("minutes cannot be negative"))
	}
	guide := routines.Meditation(c.Kind)
	seconds := routines.MeditationSeconds(guide, c.Minutes)

	p := newPlayer(ctx, c.Tick, "🧘 "+guide.Title, "Meditation session complete! 🧘 Well done!")
	step := routines.Step{Name: guide.Title, Seconds: seconds}

	last := ""
	return p.play([]routines.Step{step}, func(_ int, remaining int) {
		label, _ := guide.Pattern.PhaseAt(seconds - remaining)
		if label != "" && label != last && remaining > 0 {
			p.out.Printf("   %s · %s left\n", label, utils.FormatClock(remaining))
		}
		last = label
	})
}

type StretchCmd struct {
	Tick time.Duration `hidden:"" help:"Length of one timer second." default:"1s"`
}

func (c *StretchCmd) Run(ctx *cli.Context) error {
	p := newPlayer(ctx, c.Tick, "🤸 Stretching", "Stretching session complete! 🎉")
	return p.play(routines.Stretches(), nil)
}

type WorkoutCmd struct {
	Routine string        `arg:"" optional:"" help:"Workout routine (cardio, strength, yoga, custom)." default:"cardio"`
	Tick    time.Duration `hidden:"" help:"Length of one timer second." default:"1s"`
}

func (c *WorkoutCmd) Run(ctx *cli.Context) error {
	name := strings.ToLower(strings.TrimSpace(c.Routine))
	known := false
	for _, r := range routines.RoutineNames {
		if r == name {
			known = true
		}
	}
	if !known {
		return ctx.Reject("unknown routine", fmt.Errorf("%q (choose from %s)", c.Routine, strings.Join(routines.RoutineNames, ", ")))
	}

	p := newPlayer(ctx, c.Tick, "💪 "+strings.ToUpper(name[:1])+name[1:]+" workout", "Workout complete! 💪 Great effort!")
	return p.play(routines.Routine(name), nil)
}

// RemindCmd runs the wellness reminders in the foreground until interrupted.
type RemindCmd struct {
	Force bool          `help:"Run even when reminders are disabled in settings."`
	For   time.Duration `hidden:"" help:"Stop after this long."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	prefs := ctx.Preferences()
	if !prefs.RemindersEnabled && !c.Force {
		ctx.Println("Reminders are disabled. Enable them with 'wellhub settings --reminders' or pass --force.")
		return nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.For > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.For)
		defer cancel()
	}

	n := ctx.Notifier
	if n == nil {
		n = notifier.NewConsole(ctx.Writer())
	}
	sched := reminders.New(n, prefs.SoundsEnabled)
	for _, r := range sched.Reminders {
		ctx.Printf("🔔 %s every %s\n", r.Name, r.Interval)
	}
	ctx.Println("Press Ctrl+C to stop.")
	sched.Run(runCtx)
	ctx.Println("Reminders stopped.")
	return nil
}
