package weight

import (
	"fmt"
	"math"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type WeightAddCmd struct {
	Weight float64 `arg:"" help:"Body weight."`
	Unit   string  `help:"Unit of the weight (kg or lb)." enum:"kg,lb" default:"kg"`
	Date   string  `help:"Date of the weigh-in (YYYY-MM-DD). Defaults to today."`
	Notes  string  `help:"Optional notes."`
}

func (c *WeightAddCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.Records().Weight.Add(records.WeightInput{
		Date:   c.Date,
		Weight: c.Weight,
		Unit:   models.WeightUnit(c.Unit),
		Notes:  c.Notes,
	})
	if err != nil {
		return ctx.Reject("failed to save weight", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Weight logged: %.1f %s on %s", rec.Weight, rec.Unit, rec.Date)))
	return nil
}

type WeightListCmd struct {
	Limit int `short:"n" help:"Number of most recent weigh-ins to show." default:"10"`
}

func (c *WeightListCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Records().Weight.Data()
	if err != nil {
		return fmt.Errorf("failed to load weight records: %w", err)
	}
	if len(data.Records) == 0 {
		ctx.Println("No weigh-ins yet. Add one with 'wellhub weight add 70.5'.")
		return nil
	}

	recent := stats.WindowedSeries(data.Records, c.Limit)
	rows := make([][]string, 0, len(recent))
	for _, r := range recent {
		rows = append(rows, []string{r.Date, fmt.Sprintf("%.1f %s", r.Weight, r.Unit), r.Notes})
	}
	ctx.Println(ctx.Theme().Table([]string{"Date", "Weight", "Notes"}, rows))
	return nil
}

type WeightGoalCmd struct {
	Goal float64 `arg:"" help:"Target weight."`
}

func (c *WeightGoalCmd) Run(ctx *cli.Context) error {
	if err := ctx.Records().Weight.SetGoal(c.Goal); err != nil {
		return ctx.Reject("failed to set weight goal", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Weight goal set to %.1f", c.Goal)))
	return nil
}

type WeightStatsCmd struct{}

func (c *WeightStatsCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Records().Weight.Data()
	if err != nil {
		return fmt.Errorf("failed to load weight records: %w", err)
	}
	prefs := ctx.Preferences()
	ctx.Println(Summary(render.Theme(prefs.Theme), data, prefs.UserHeight))
	return nil
}

// Summary renders progress toward the weight goal, BMI when heightCm is
// known, and the recent trend.
func Summary(theme render.Palette, data models.WeightData, heightCm float64) string {
	summary := stats.SummarizeWeight(data)
	unit := string(summary.Unit)

	out := theme.Heading("Weight") + "\n"
	out += fmt.Sprintf("  Starting: %.1f %s\n", summary.Starting, unit)
	out += fmt.Sprintf("  Current:  %.1f %s\n", summary.Current, unit)
	out += fmt.Sprintf("  Change:   %s\n", theme.Signed(summary.Change, unit, summary.Goal < summary.Starting))
	out += fmt.Sprintf("  Goal:     %.1f %s (%s)\n", summary.Goal, unit, goalRemaining(summary))
	out += fmt.Sprintf("  Progress: %s\n", theme.ProgressBar(stats.WeightGoalProgress(summary), 20))

	weightKg := summary.Current
	if summary.Unit == models.UnitLb {
		weightKg = stats.PoundsToKg(weightKg)
	}
	if bmi := stats.BMI(weightKg, heightCm); bmi > 0 {
		out += fmt.Sprintf("  BMI:      %.1f (%s)\n", bmi, stats.BMICategory(bmi))
	}

	if len(data.Records) > 1 {
		out += "\n" + theme.Heading("Trend") + "\n"
		out += theme.LineChart(stats.WeightSeries(data.Records, constants.WeightChartWindow), 6)
	}
	return out
}

// goalRemaining describes the distance left to the goal in the direction
// the goal lies from the starting weight.
func goalRemaining(s stats.WeightSummary) string {
	if s.Goal <= 0 {
		return "no goal set"
	}
	if s.ToGoal == 0 {
		return "reached"
	}
	losing := s.Goal < s.Starting
	if losing && s.ToGoal > 0 || !losing && s.Goal > s.Starting && s.ToGoal < 0 {
		return "past goal"
	}
	return fmt.Sprintf("%.1f to go", math.Abs(s.ToGoal))
}
