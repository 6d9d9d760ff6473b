package mood

import (
	"fmt"
	"time"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type MoodSetCmd struct {
	Mood  string `arg:"" help:"Mood from 1 (very sad) to 5 (very happy), or its name such as 'happy'."`
	Date  string `help:"Date of the mood (YYYY-MM-DD). Defaults to today."`
	Notes string `help:"Optional notes."`
}

func (c *MoodSetCmd) Run(ctx *cli.Context) error {
	value, err := models.ParseMood(c.Mood)
	if err != nil {
		return ctx.Reject("failed to save mood", err)
	}
	entry, err := ctx.Records().Mood.Set(c.Date, value, c.Notes)
	if err != nil {
		return ctx.Reject("failed to save mood", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Mood saved: %s %s", entry.Emoji, value.Label())))
	return nil
}

type MoodShowCmd struct {
	Date string `help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *MoodShowCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	date := c.Date
	if date == "" {
		date = hub.Today()
	}
	entry, ok, err := hub.Mood.Get(date)
	if err != nil {
		return fmt.Errorf("failed to load mood: %w", err)
	}
	if ok {
		ctx.Printf("%s: %s %s\n", date, entry.Value.Emoji(), entry.Value.Label())
		if entry.Notes != "" {
			ctx.Printf("  %s\n", entry.Notes)
		}
	} else {
		ctx.Printf("%s: no mood logged\n", date)
	}

	all, err := hub.Mood.All()
	if err != nil {
		return fmt.Errorf("failed to load mood: %w", err)
	}
	series := stats.MoodSeries(all, constants.MoodChartWindow)
	if len(series) > 1 {
		points := make([]stats.Point, len(series))
		for i, p := range series {
			points[i] = stats.Point{Label: p.Date, Value: float64(p.Value)}
		}
		ctx.Printf("\nLast %d entries: %s  average %.1f\n", len(series), render.Sparkline(points), stats.AverageMood(series))
	}
	return nil
}

type MoodCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to this month."`
}

func (c *MoodCalendarCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	now := hub.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return ctx.Reject("invalid month", errors.Invalid("month", "expected YYYY-MM, got %q", c.Month))
		}
		year, month = t.Year(), t.Month()
	}

	data, err := hub.Mood.Month(year, month)
	if err != nil {
		return fmt.Errorf("failed to load mood: %w", err)
	}
	theme := ctx.Theme()
	ctx.Println(theme.Heading(fmt.Sprintf("%s %d", month, year)))
	ctx.Println(theme.Calendar(stats.MoodCalendar(year, month, data, hub.Today())))
	return nil
}
