package nutrition

import (
	"fmt"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/stats"
)

// CaloriesCmd shows the day's energy balance: meals eaten against runs.
type CaloriesCmd struct {
	Date string `help:"Date to summarise (YYYY-MM-DD). Defaults to today."`
}

func (c *CaloriesCmd) Run(ctx *cli.Context) error {
	hub := ctx.Records()
	date := dateOrToday(hub, c.Date)
	meals, err := hub.Meals.ForDate(date)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	runs, err := hub.Running.ForDate(date)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	prefs := ctx.Preferences()
	ctx.Println(Summary(render.Theme(prefs.Theme), date, meals, runs, prefs.CalorieGoal))
	return nil
}

// Summary renders consumed, burned, balance and per-meal-type totals.
func Summary(theme render.Palette, date string, meals []models.Meal, runs []models.RunningActivity, goal int) string {
	consumed := stats.TotalCalories(meals)
	burned := stats.SummarizeRuns(runs).Calories
	balance := stats.NetCalories(consumed, burned)

	out := theme.Heading("Calories "+date) + "\n"
	out += fmt.Sprintf("  Consumed: %d kcal\n", consumed)
	out += fmt.Sprintf("  Burned:   %d kcal\n", burned)
	out += fmt.Sprintf("  Net:      %s\n", theme.Balance(balance))
	if goal > 0 {
		out += fmt.Sprintf("  Goal:     %d kcal, %d remaining\n", goal, goal-balance.Net)
		out += "  " + theme.ProgressBar(stats.GoalProgress(float64(consumed), float64(goal)), 24) + "\n"
	}

	byType := stats.CaloriesByType(meals)
	points := make([]stats.Point, 0, len(models.MealTypes))
	for _, t := range models.MealTypes {
		points = append(points, stats.Point{Label: t.Title(), Value: float64(byType[t])})
	}
	out += "\n" + theme.BarChart(points, render.BarOptions{Width: 24, Format: "%.0f kcal"})
	return out
}
