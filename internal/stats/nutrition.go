package stats

import (
	"fmt"
	"math"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
)

// BalanceClass labels the sign of a net calorie value.
type BalanceClass string

const (
	Surplus BalanceClass = "surplus"
	Deficit BalanceClass = "deficit"
)

// CalorieBalance is consumed minus burned.
type CalorieBalance struct {
	Consumed int
	Burned   int
	Net      int
	Class    BalanceClass
}

// NetCalories classifies consumed - burned: positive is a surplus,
// zero or negative a deficit.
func NetCalories(consumed, burned int) CalorieBalance {
	net := consumed - burned
	class := Deficit
	if net > 0 {
		class = Surplus
	}
	return CalorieBalance{Consumed: consumed, Burned: burned, Net: net, Class: class}
}

// TotalCalories sums meal calories.
func TotalCalories(meals []models.Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// CaloriesByType totals meals per meal type; every type is present.
func CaloriesByType(meals []models.Meal) map[models.MealType]int {
	out := make(map[models.MealType]int, len(models.MealTypes))
	for _, t := range models.MealTypes {
		out[t] = 0
	}
	for _, m := range meals {
		out[m.Type] += m.Calories
	}
	return out
}

// CaloriesBurned estimates MET * kg * hours, rounded. A non-positive weight
// falls back to 70 kg.
func CaloriesBurned(intensity models.Intensity, weightKg float64, minutes int) int {
	if weightKg <= 0 {
		weightKg = constants.DefaultUserWeightKg
	}
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(intensity.MET() * weightKg * float64(minutes) / 60))
}

// Pace formats minutes per kilometre as m:ss, truncating seconds.
func Pace(minutes float64, km float64) string {
	if km <= 0 || minutes <= 0 {
		return "0:00"
	}
	perKm := minutes / km
	whole := math.Floor(perKm)
	secs := int(math.Floor((perKm - whole) * 60))
	return fmt.Sprintf("%d:%02d", int(whole), secs)
}

// RunTotals aggregates a day's runs.
type RunTotals struct {
	Distance float64
	Minutes  int
	Calories int
	Pace     string
}

// SummarizeRuns totals distance, time and calories with the average pace.
func SummarizeRuns(runs []models.RunningActivity) RunTotals {
	var t RunTotals
	for _, r := range runs {
		t.Distance += r.Distance
		t.Minutes += r.Time
		t.Calories += r.Calories
	}
	t.Distance = RoundTo(t.Distance, 2)
	t.Pace = Pace(float64(t.Minutes), t.Distance)
	return t
}
