package nutrition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/stats"
)

type MealAddCmd struct {
	Name     string `arg:"" help:"What you ate."`
	Calories int    `arg:"" help:"Calories in the meal."`
	Type     string `short:"t" help:"Meal type." enum:"breakfast,lunch,dinner,snack" default:"snack"`
	Time     string `help:"Time of the meal (HH:MM). Defaults to now."`
	Date     string `help:"Date of the meal (YYYY-MM-DD). Defaults to today."`
}

func (c *MealAddCmd) Run(ctx *cli.Context) error {
	meal, err := ctx.Records().Meals.Add(records.MealInput{
		Type:     models.MealType(c.Type),
		Name:     c.Name,
		Calories: c.Calories,
		Time:     c.Time,
		Date:     c.Date,
	})
	if err != nil {
		return ctx.Reject("failed to save meal", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("%s added: %s (%d kcal)", meal.Type.Title(), meal.Name, meal.Calories)))
	return nil
}

type MealListCmd struct {
	Date string `help:"Date to list (YYYY-MM-DD). Defaults to today."`
	All  bool   `help:"List every meal instead of one day."`
}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	var (
		meals []models.Meal
		err   error
	)
	if c.All {
		meals, err = hub.Meals.All()
	} else {
		meals, err = hub.Meals.ForDate(dateOrToday(hub, c.Date))
	}
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	if len(meals) == 0 {
		ctx.Println("No meals logged.")
		return nil
	}

	rows := make([][]string, 0, len(meals))
	for _, m := range stats.SortByDate(meals) {
		rows = append(rows, []string{cli.ShortID(m.ID), m.Date, m.Time, m.Type.Title(), m.Name, strconv.Itoa(m.Calories)})
	}
	theme := ctx.Theme()
	ctx.Println(theme.Table([]string{"ID", "Date", "Time", "Type", "Meal", "kcal"}, rows))
	ctx.Printf("\nTotal: %d kcal\n", stats.TotalCalories(meals))
	return nil
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"Meal ID or a unique prefix of it."`
}

func (c *MealDeleteCmd) Run(ctx *cli.Context) error {
	meals := ctx.Records().Meals
	all, err := meals.All()
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	id, err := cli.MatchID(all, func(m models.Meal) models.ID { return m.ID }, c.ID)
	if err != nil {
		return ctx.Reject("failed to delete meal", err)
	}
	meal, err := meals.Delete(id)
	if err != nil {
		return ctx.Reject("failed to delete meal", err)
	}
	ctx.Notify(notifier.Info(fmt.Sprintf("Deleted %s: %s", strings.ToLower(meal.Type.Title()), meal.Name)))
	return nil
}

func dateOrToday(hub *records.Hub, date string) string {
	if date == "" {
		return hub.Today()
	}
	return date
}
