package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Content string `arg:"" help:"Entry text, or '-' to read it from stdin."`
	Mood    string `short:"m" help:"Mood from 1 to 5 or its name." default:"3"`
	Tags    string `help:"Comma separated tags."`
	Date    string `help:"Entry date (YYYY-MM-DD). Defaults to today."`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	content, err := readContent(ctx, c.Content)
	if err != nil {
		return err
	}
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return ctx.Reject("failed to save journal entry", err)
	}
	entry, err := ctx.Records().Journal.Save(records.JournalInput{
		Date:    c.Date,
		Title:   c.Title,
		Content: content,
		Mood:    mood,
		Tags:    cli.ParseTags(c.Tags),
	})
	if err != nil {
		return ctx.Reject("failed to save journal entry", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Journal entry saved: %s (%s)", entry.Title, cli.ShortID(entry.ID))))
	return nil
}

// JournalEditCmd changes only the fields that were given.
type JournalEditCmd struct {
	ID      string  `arg:"" help:"Entry ID or a unique prefix of it."`
	Title   *string `help:"New title."`
	Content *string `help:"New text, or '-' to read it from stdin."`
	Mood    *string `short:"m" help:"New mood."`
	Tags    *string `help:"Replace tags (comma separated)."`
	Date    *string `help:"New date (YYYY-MM-DD)."`
}

func (c *JournalEditCmd) Run(ctx *cli.Context) error {
	journal := ctx.Records().Journal
	entry, err := findEntry(ctx, journal, c.ID)
	if err != nil {
		return ctx.Reject("failed to edit journal entry", err)
	}

	in := records.JournalInput{
		ID:      entry.ID,
		Date:    entry.Date,
		Title:   entry.Title,
		Content: entry.Content,
		Mood:    entry.Mood,
		Tags:    entry.Tags,
	}
	if c.Title != nil {
		in.Title = *c.Title
	}
	if c.Content != nil {
		if in.Content, err = readContent(ctx, *c.Content); err != nil {
			return err
		}
	}
	if c.Mood != nil {
		if in.Mood, err = models.ParseMood(*c.Mood); err != nil {
			return ctx.Reject("failed to edit journal entry", err)
		}
	}
	if c.Tags != nil {
		in.Tags = cli.ParseTags(*c.Tags)
	}
	if c.Date != nil {
		in.Date = *c.Date
	}

	saved, err := journal.Save(in)
	if err != nil {
		return ctx.Reject("failed to edit journal entry", err)
	}
	ctx.Notify(notifier.Success("Journal entry updated: " + saved.Title))
	return nil
}

type JournalListCmd struct {
	Search string   `short:"s" help:"Only entries whose title or text contains this."`
	Tag    []string `short:"t" help:"Only entries with any of these tags."`
	Limit  int      `short:"n" help:"Maximum entries to show." default:"20"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	journal := ctx.Records().Journal
	entries, err := journal.Search(c.Search, models.NormalizeTags(c.Tag))
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}
	if len(entries) == 0 {
		ctx.Println("No journal entries found.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	theme := ctx.Theme()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{cli.ShortID(e.ID), e.Date, e.Mood.Emoji(), e.Title, strings.Join(e.Tags, ", ")})
	}
	ctx.Println(theme.Table([]string{"ID", "Date", "Mood", "Title", "Tags"}, rows))

	all, err := journal.All()
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}
	if series := stats.JournalMoodSeries(all, constants.JournalChartWindow); len(series) > 1 {
		points := make([]stats.Point, len(series))
		for i, p := range series {
			points[i] = stats.Point{Label: p.Date, Value: float64(p.Value)}
		}
		ctx.Printf("\nMood trend: %s\n", render.Sparkline(points))
	}
	if tags, err := journal.Tags(); err == nil && len(tags) > 0 {
		ctx.Println(theme.Faint("Tags: " + strings.Join(tags, ", ")))
	}
	return nil
}

type JournalShowCmd struct {
	ID string `arg:"" help:"Entry ID or a unique prefix of it."`
}

func (c *JournalShowCmd) Run(ctx *cli.Context) error {
	entry, err := findEntry(ctx, ctx.Records().Journal, c.ID)
	if err != nil {
		return ctx.Reject("failed to show journal entry", err)
	}
	theme := ctx.Theme()
	ctx.Println(theme.Heading(entry.Title))
	ctx.Printf("%s  %s %s\n", entry.Date, entry.Mood.Emoji(), entry.Mood.Label())
	if len(entry.Tags) > 0 {
		ctx.Println(theme.Faint("#" + strings.Join(entry.Tags, " #")))
	}
	ctx.Println()
	ctx.Println(entry.Content)
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or a unique prefix of it."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	journal := ctx.Records().Journal
	entry, err := findEntry(ctx, journal, c.ID)
	if err != nil {
		return ctx.Reject("failed to delete journal entry", err)
	}
	if err := journal.Delete(entry.ID); err != nil {
		return ctx.Reject("failed to delete journal entry", err)
	}
	ctx.Notify(notifier.Info("Deleted journal entry: " + entry.Title))
	return nil
}

func findEntry(ctx *cli.Context, journal *records.JournalStore, prefix string) (models.JournalEntry, error) {
	all, err := journal.All()
	if err != nil {
		return models.JournalEntry{}, err
	}
	id, err := cli.MatchID(all, func(e models.JournalEntry) models.ID { return e.ID }, prefix)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return journal.Get(id)
}

func readContent(ctx *cli.Context, content string) (string, error) {
	if content != "-" {
		return content, nil
	}
	data, err := io.ReadAll(ctx.Reader())
	if err != nil {
		return "", fmt.Errorf("failed to read entry from stdin: %w", err)
	}
	return string(data), nil
}
