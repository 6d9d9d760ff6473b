// Package insights turns aggregates into rule-based wellness suggestions.
package insights

import (
	"fmt"
	"math"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/stats"
	"github.com/julianstephens/wellhub/internal/utils"
)

// InsightType identifies the rule that produced an insight
type InsightType string

const (
	InsightShortSleep     InsightType = "short_sleep"
	InsightLowQuality     InsightType = "low_sleep_quality"
	InsightBedtimeDrift   InsightType = "bedtime_drift"
	InsightHydration      InsightType = "hydration"
	InsightCalorieSurplus InsightType = "calorie_surplus"
	InsightWeightAway     InsightType = "weight_away_from_goal"
)

const (
	minSleepHours     = 7.0
	minSleepQuality   = 3.0
	maxBedtimeDriftMn = 45
	sleepWindow       = 7
)

// Insight is one suggestion with the values that triggered it
type Insight struct {
	Type           InsightType `json:"type" yaml:"type"`
	Reason         string      `json:"reason" yaml:"reason"`
	CurrentValue   interface{} `json:"current_value,omitempty" yaml:"current_value,omitempty"`
	SuggestedValue interface{} `json:"suggested_value,omitempty" yaml:"suggested_value,omitempty"`
}

// Snapshot is the data the rules read.
type Snapshot struct {
	Sleep       []models.SleepRecord
	Weight      models.WeightData
	Weekly      models.WeeklyWater
	WaterGoal   int
	MealsToday  []models.Meal
	RunsToday   []models.RunningActivity
	CalorieGoal int
}

// Analyze applies every rule to s.
func Analyze(s Snapshot) []Insight {
	var out []Insight
	out = append(out, analyzeSleep(s.Sleep)...)
	out = append(out, analyzeWater(s.Weekly, s.WaterGoal)...)
	out = append(out, analyzeCalories(s.MealsToday, s.RunsToday, s.CalorieGoal)...)
	out = append(out, analyzeWeight(s.Weight)...)
	return out
}

func analyzeSleep(all []models.SleepRecord) []Insight {
	recent := stats.WindowedSeries(all, sleepWindow)
	if len(recent) == 0 {
		return nil
	}

	var out []Insight
	if avg := stats.AverageDuration(recent); avg < minSleepHours {
		out = append(out, Insight{
			Type:           InsightShortSleep,
			Reason:         fmt.Sprintf("You averaged %.1f hours over your last %d nights", avg, len(recent)),
			CurrentValue:   map[string]interface{}{"average_hours": stats.RoundTo(avg, 1)},
			SuggestedValue: map[string]interface{}{"average_hours": minSleepHours},
		})
	}
	if q := stats.AverageQuality(recent); q < minSleepQuality {
		out = append(out, Insight{
			Type:         InsightLowQuality,
			Reason:       fmt.Sprintf("Recent sleep quality is %.1f/5; try a wind-down breathing session before bed", q),
			CurrentValue: map[string]interface{}{"average_quality": stats.RoundTo(q, 1)},
		})
	}

	optimal := stats.OptimalBedtime(all)
	if avgBed, ok := averageBedtime(recent); ok {
		if drift := circularDiff(avgBed, optimal.Minutes()); drift > maxBedtimeDriftMn {
			out = append(out, Insight{
				Type:           InsightBedtimeDrift,
				Reason:         fmt.Sprintf("Your recent bedtime is %d minutes away from your best nights", drift),
				CurrentValue:   map[string]interface{}{"bedtime": stats.TimeOfDayFromMinutes(avgBed).String()},
				SuggestedValue: map[string]interface{}{"bedtime": optimal.String()},
			})
		}
	}
	return out
}

func averageBedtime(records []models.SleepRecord) (int, bool) {
	var sum, n int
	for _, r := range records {
		m, err := utils.ParseTimeToMinutes(r.SleepTime)
		if err != nil {
			continue
		}
		sum += m
		n++
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(n))), true
}

// circularDiff is the distance between two clock minutes, wrapping at midnight.
func circularDiff(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= utils.MinutesPerDay
	if d > utils.MinutesPerDay/2 {
		d = utils.MinutesPerDay - d
	}
	return d
}

func analyzeWater(weekly models.WeeklyWater, goal int) []Insight {
	if goal < 1 {
		goal = constants.DefaultWaterGoal
	}
	var sum, days int
	for _, cups := range weekly {
		if cups > 0 {
			sum += cups
			days++
		}
	}
	if days == 0 {
		return nil
	}
	avg := float64(sum) / float64(days)
	if avg >= float64(goal) {
		return nil
	}
	return []Insight{{
		Type:           InsightHydration,
		Reason:         fmt.Sprintf("You drink %.1f cups on a typical day, below your goal of %d", avg, goal),
		CurrentValue:   map[string]interface{}{"average_cups": stats.RoundTo(avg, 1)},
		SuggestedValue: map[string]interface{}{"goal_cups": goal},
	}}
}

func analyzeCalories(meals []models.Meal, runs []models.RunningActivity, goal int) []Insight {
	if len(meals) == 0 {
		return nil
	}
	if goal <= 0 {
		goal = constants.DefaultCalorieGoal
	}
	consumed := stats.TotalCalories(meals)
	burned := stats.SummarizeRuns(runs).Calories + goal
	balance := stats.NetCalories(consumed, burned)
	if balance.Class != stats.Surplus {
		return nil
	}
	return []Insight{{
		Type:           InsightCalorieSurplus,
		Reason:         fmt.Sprintf("Today is %d kcal over your goal after exercise", balance.Net),
		CurrentValue:   map[string]interface{}{"consumed": consumed, "burned": burned - goal},
		SuggestedValue: map[string]interface{}{"calorie_goal": goal},
	}}
}

func analyzeWeight(data models.WeightData) []Insight {
	sorted := stats.SortByDate(data.Records)
	if len(sorted) < 2 || data.Goal <= 0 {
		return nil
	}
	prev, cur := sorted[len(sorted)-2], sorted[len(sorted)-1]
	if math.Abs(cur.Weight-data.Goal) <= math.Abs(prev.Weight-data.Goal) {
		return nil
	}
	return []Insight{{
		Type:   InsightWeightAway,
		Reason: fmt.Sprintf("Your last weigh-in moved from %.1f to %.1f, away from your goal of %.1f", prev.Weight, cur.Weight, data.Goal),
		CurrentValue: map[string]interface{}{
			"weight": cur.Weight,
		},
		SuggestedValue: map[string]interface{}{
			"goal": data.Goal,
		},
	}}
}

// Analyzer collects a snapshot from the record stores
type Analyzer struct {
	hub *records.Hub
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(hub *records.Hub) *Analyzer {
	return &Analyzer{hub: hub}
}

// Snapshot reads everything the rules need for today.
func (a *Analyzer) Snapshot() (Snapshot, error) {
	var s Snapshot
	var err error
	today := a.hub.Today()

	if s.Sleep, err = a.hub.Sleep.Records(); err != nil {
		return s, fmt.Errorf("failed to get sleep records: %w", err)
	}
	if s.Weight, err = a.hub.Weight.Data(); err != nil {
		return s, fmt.Errorf("failed to get weight data: %w", err)
	}
	if s.Weekly, err = a.hub.Water.Weekly(); err != nil {
		return s, fmt.Errorf("failed to get water history: %w", err)
	}
	if s.MealsToday, err = a.hub.Meals.ForDate(today); err != nil {
		return s, fmt.Errorf("failed to get meals: %w", err)
	}
	if s.RunsToday, err = a.hub.Running.ForDate(today); err != nil {
		return s, fmt.Errorf("failed to get runs: %w", err)
	}
	prefs, err := a.hub.Settings.Get()
	if err != nil {
		return s, fmt.Errorf("failed to get settings: %w", err)
	}
	s.WaterGoal = prefs.WaterGoal
	s.CalorieGoal = prefs.CalorieGoal
	return s, nil
}

// AnalyzeAll gathers a snapshot and applies every rule
func (a *Analyzer) AnalyzeAll() ([]Insight, error) {
	s, err := a.Snapshot()
	if err != nil {
		return nil, err
	}
	return Analyze(s), nil
}
