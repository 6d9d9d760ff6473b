package sleep

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type SleepAddCmd struct {
	SleepTime string `arg:"" help:"Time you went to bed (HH:MM)."`
	WakeTime  string `arg:"" help:"Time you woke up (HH:MM)."`
	Quality   int    `short:"q" help:"Sleep quality from 1 to 5." default:"3"`
	Date      string `help:"Date of the night (YYYY-MM-DD). Defaults to today."`
	Notes     string `help:"Optional notes."`
}

func (c *SleepAddCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.Records().Sleep.Add(records.SleepInput{
		Date:      c.Date,
		SleepTime: c.SleepTime,
		WakeTime:  c.WakeTime,
		Quality:   c.Quality,
		Notes:     c.Notes,
	})
	if err != nil {
		return ctx.Reject("failed to save sleep record", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Sleep logged: %.1f hours on %s", rec.Duration, rec.Date)))
	return nil
}

type SleepListCmd struct {
	Limit int `short:"n" help:"Number of most recent nights to show." default:"7"`
}

func (c *SleepListCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Records().Sleep.Records()
	if err != nil {
		return fmt.Errorf("failed to load sleep records: %w", err)
	}
	if len(recs) == 0 {
		ctx.Println("No sleep records yet. Add one with 'wellhub sleep add 23:00 07:00'.")
		return nil
	}

	window := stats.WindowedSeries(recs, c.Limit)
	theme := ctx.Theme()
	rows := make([][]string, 0, len(window))
	for _, r := range window {
		rows = append(rows, []string{
			r.Date, r.SleepTime, r.WakeTime,
			fmt.Sprintf("%.1fh", r.Duration),
			theme.Stars(float64(r.Quality)),
			r.Notes,
		})
	}
	ctx.Println(theme.Table([]string{"Date", "Bed", "Wake", "Hours", "Quality", "Notes"}, rows))
	return nil
}

type SleepStatsCmd struct{}

func (c *SleepStatsCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Records().Sleep.Records()
	if err != nil {
		return fmt.Errorf("failed to load sleep records: %w", err)
	}

	ctx.Println(Summary(ctx.Theme(), recs))
	return nil
}

// Summary renders the sleep averages, the optimal bedtime and a bar chart
// of the latest nights.
func Summary(theme render.Palette, recs []models.SleepRecord) string {
	avgQuality := stats.AverageQuality(recs)
	bedtime := stats.OptimalBedtime(recs)

	out := theme.Heading("Sleep") + "\n"
	out += fmt.Sprintf("  Average duration: %.1f hours\n", stats.AverageDuration(recs))
	out += fmt.Sprintf("  Average quality:  %s (%.1f)\n", theme.Stars(avgQuality), avgQuality)
	out += fmt.Sprintf("  Optimal bedtime:  %s (%s)\n", bedtime, bedtime.Format12h())
	out += fmt.Sprintf("  Nights logged:    %d\n", len(recs))

	window := stats.WindowedSeries(recs, constants.SleepChartWindow)
	points := make([]stats.Point, 0, len(window))
	for _, r := range window {
		points = append(points, stats.Point{Label: cli.ShortDate(r.Date), Value: r.Duration})
	}
	out += "\n" + theme.Heading(fmt.Sprintf("Last %d nights", constants.SleepChartWindow)) + "\n"
	out += theme.BarChart(points, render.BarOptions{Width: 24, Max: 10, Target: 7, Format: "%.1fh"})
	return out
}
