package nutrition

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/cli/clitest"
	apperrors "github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
)

func TestMealAddListDelete(t *testing.T) {
	env := clitest.New(t)

	if err := (&MealAddCmd{Name: "Oatmeal", Calories: 350, Type: "breakfast", Time: "08:00"}).Run(env.Ctx); err != nil {
		t.Fatalf("meal add failed: %v", err)
	}
	if err := (&MealAddCmd{Name: "Salad", Calories: 450, Type: "lunch"}).Run(env.Ctx); err != nil {
		t.Fatalf("meal add failed: %v", err)
	}

	if err := (&MealListCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("meal list failed: %v", err)
	}
	out := env.Out.String()
	if !strings.Contains(out, "Oatmeal") || !strings.Contains(out, "Total: 800 kcal") {
		t.Errorf("unexpected meal list:\n%s", out)
	}

	meals, err := env.Ctx.Hub.Meals.All()
	if err != nil || len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d (%v)", len(meals), err)
	}
	if err := (&MealDeleteCmd{ID: cli.ShortID(meals[0].ID)}).Run(env.Ctx); err != nil {
		t.Fatalf("meal delete failed: %v", err)
	}
	meals, _ = env.Ctx.Hub.Meals.All()
	if len(meals) != 1 || meals[0].Name != "Salad" {
		t.Errorf("unexpected meals after delete: %+v", meals)
	}
}

func TestMealAddCmd_Invalid(t *testing.T) {
	env := clitest.New(t)

	if err := (&MealAddCmd{Name: "Air", Calories: 0, Type: "snack"}).Run(env.Ctx); err == nil {
		t.Fatal("expected error for zero calories")
	}
	if toast := env.LastToast(t); toast.Kind != notifier.KindError {
		t.Errorf("expected error toast, got %s", toast.Kind)
	}
}

func TestMealDeleteCmd_NotFound(t *testing.T) {
	env := clitest.New(t)

	err := (&MealDeleteCmd{ID: "nope"}).Run(env.Ctx)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRunAddAndCalories(t *testing.T) {
	env := clitest.New(t)

	if err := (&RunAddCmd{Distance: 5, Minutes: 30, Intensity: "medium"}).Run(env.Ctx); err != nil {
		t.Fatalf("run add failed: %v", err)
	}
	runs, err := env.Ctx.Hub.Running.All()
	if err != nil || len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d (%v)", len(runs), err)
	}
	if runs[0].Pace != "6:00" || runs[0].Calories != 350 {
		t.Errorf("unexpected derived values: pace %s, calories %d", runs[0].Pace, runs[0].Calories)
	}

	if err := (&MealAddCmd{Name: "Pasta", Calories: 1800, Type: "dinner"}).Run(env.Ctx); err != nil {
		t.Fatalf("meal add failed: %v", err)
	}

	env.Out.Reset()
	if err := (&CaloriesCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("calories failed: %v", err)
	}
	out := env.Out.String()
	for _, want := range []string{"Consumed: 1800 kcal", "Burned:   350 kcal", "+1450 kcal (surplus)", "550 remaining"} {
		if !strings.Contains(out, want) {
			t.Errorf("calories output missing %q:\n%s", want, out)
		}
	}

	env.Out.Reset()
	if err := (&RunListCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("run list failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "6:00/km") {
		t.Errorf("run list missing pace:\n%s", env.Out.String())
	}

	if err := (&RunDeleteCmd{ID: runs[0].ID.String()}).Run(env.Ctx); err != nil {
		t.Fatalf("run delete failed: %v", err)
	}
	runs, _ = env.Ctx.Hub.Running.All()
	if len(runs) != 0 {
		t.Errorf("run not deleted")
	}
}

func TestMatchIDAmbiguous(t *testing.T) {
	meals := []models.Meal{{ID: "abc1"}, {ID: "abc2"}}
	_, err := cli.MatchID(meals, func(m models.Meal) models.ID { return m.ID }, "abc")
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for ambiguous prefix, got %v", err)
	}
	id, err := cli.MatchID(meals, func(m models.Meal) models.ID { return m.ID }, "abc2")
	if err != nil || id != "abc2" {
		t.Errorf("exact match failed: %v %v", id, err)
	}
}
