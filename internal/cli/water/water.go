package water

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

const GoalReachedMessage = "🎉 Congratulations! You've reached your daily water goal!"

type WaterDrinkCmd struct {
	Cups int `arg:"" optional:"" help:"Cups to add." default:"1"`
}

func (c *WaterDrinkCmd) Run(ctx *cli.Context) error {
	st, reached, err := ctx.Records().Water.Drink(c.Cups)
	if err != nil {
		return ctx.Reject("failed to log water", err)
	}
	if reached {
		ctx.Notify(notifier.Success(GoalReachedMessage))
	} else {
		ctx.Notify(notifier.Info(fmt.Sprintf("Water: %d/%d cups", st.Intake, st.Goal)))
	}
	return nil
}

type WaterUndoCmd struct{}

func (c *WaterUndoCmd) Run(ctx *cli.Context) error {
	st, err := ctx.Records().Water.Undo()
	if err != nil {
		return ctx.Reject("failed to undo water", err)
	}
	ctx.Notify(notifier.Info(fmt.Sprintf("Water: %d/%d cups", st.Intake, st.Goal)))
	return nil
}

type WaterGoalCmd struct {
	Cups int `arg:"" help:"Daily goal in cups."`
}

func (c *WaterGoalCmd) Run(ctx *cli.Context) error {
	if err := ctx.Records().Water.SetGoal(c.Cups); err != nil {
		return ctx.Reject("failed to set water goal", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Water goal set to %d cups", c.Cups)))
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	st, err := hub.Water.Status()
	if err != nil {
		return fmt.Errorf("failed to load water status: %w", err)
	}
	week, err := hub.Water.Weekly()
	if err != nil {
		return fmt.Errorf("failed to load weekly water: %w", err)
	}
	ctx.Println(Summary(ctx.Theme(), st, week))
	return nil
}

// Summary renders today's glasses, the goal progress and the weekly chart.
func Summary(theme render.Palette, st models.WaterStatus, week models.WeeklyWater) string {
	out := theme.Heading("Water") + "\n"
	out += fmt.Sprintf("  Today: %d/%d cups %s\n", st.Intake, st.Goal, theme.Glasses(st.Intake, st.Goal))
	out += "  " + theme.ProgressBar(stats.GoalProgress(float64(st.Intake), float64(st.Goal)), 24) + "\n\n"
	out += theme.Heading("This week") + "\n"
	out += theme.BarChart(stats.WaterWeek(week), render.BarOptions{
		Width:  24,
		Max:    float64(stats.WaterAxisMax(week, st.Goal)),
		Target: float64(st.Goal),
	})
	return out
}
