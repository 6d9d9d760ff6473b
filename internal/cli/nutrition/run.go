package nutrition

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/stats"
)

type RunAddCmd struct {
	Distance  float64 `arg:"" help:"Distance in kilometres."`
	Minutes   int     `arg:"" help:"Total time in minutes."`
	Intensity string  `short:"i" help:"Effort level." enum:"low,medium,high,sprint" default:"medium"`
	Date      string  `help:"Date of the run (YYYY-MM-DD). Defaults to today."`
}

func (c *RunAddCmd) Run(ctx *cli.Context) error {
	prefs := ctx.Preferences()
	run, err := ctx.Records().Running.Add(records.RunInput{
		Date:      c.Date,
		Distance:  c.Distance,
		Minutes:   c.Minutes,
		Intensity: models.Intensity(c.Intensity),
	}, prefs.WeightKg())
	if err != nil {
		return ctx.Reject("failed to save run", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Run logged: %.2f km at %s/km, %d kcal burned", run.Distance, run.Pace, run.Calories)))
	return nil
}

type RunListCmd struct {
	Date string `help:"Date to list (YYYY-MM-DD). Defaults to today."`
	All  bool   `help:"List every run instead of one day."`
}

func (c *RunListCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	var (
		runs []models.RunningActivity
		err  error
	)
	if c.All {
		runs, err = hub.Running.All()
	} else {
		runs, err = hub.Running.ForDate(dateOrToday(hub, c.Date))
	}
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	if len(runs) == 0 {
		ctx.Println("No runs logged.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range stats.SortByDate(runs) {
		rows = append(rows, []string{
			cli.ShortID(r.ID), r.Date,
			fmt.Sprintf("%.2f km", r.Distance),
			fmt.Sprintf("%d min", r.Time),
			r.Pace + "/km",
			r.Intensity.Label(),
			fmt.Sprintf("%d", r.Calories),
		})
	}
	ctx.Println(ctx.Theme().Table([]string{"ID", "Date", "Distance", "Time", "Pace", "Intensity", "kcal"}, rows))

	totals := stats.SummarizeRuns(runs)
	ctx.Printf("\nTotal: %.2f km in %d min (%s/km), %d kcal\n", totals.Distance, totals.Minutes, totals.Pace, totals.Calories)
	return nil
}

type RunDeleteCmd struct {
	ID string `arg:"" help:"Run ID or a unique prefix of it."`
}

func (c *RunDeleteCmd) Run(ctx *cli.Context) error {
	running := ctx.Records().Running
	all, err := running.All()
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	id, err := cli.MatchID(all, func(r models.RunningActivity) models.ID { return r.ID }, c.ID)
	if err != nil {
		return ctx.Reject("failed to delete run", err)
	}
	run, err := running.Delete(id)
	if err != nil {
		return ctx.Reject("failed to delete run", err)
	}
	ctx.Notify(notifier.Info(fmt.Sprintf("Deleted %.2f km run on %s", run.Distance, run.Date)))
	return nil
}
