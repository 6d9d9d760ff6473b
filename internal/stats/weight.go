package stats

import (
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
)

// WeightSummary is the header of the weight panel.
type WeightSummary struct {
	Starting float64
	Current  float64
	Change   float64 // Current - Starting, one decimal
	Goal     float64
	ToGoal   float64 // Goal - Current, one decimal
	Unit     models.WeightUnit
	Count    int
}

// SummarizeWeight derives the weight summary. Starting falls back to the
// earliest record when StartingWeight was never stored; the unit comes from
// the latest record.
func SummarizeWeight(data models.WeightData) WeightSummary {
	s := WeightSummary{Goal: data.Goal, Unit: models.UnitKg, Count: len(data.Records)}
	if len(data.Records) == 0 {
		if data.StartingWeight != nil {
			s.Starting = *data.StartingWeight
		}
		return s
	}

	sorted := SortByDate(data.Records)
	first, last := sorted[0], sorted[len(sorted)-1]

	s.Starting = first.Weight
	if data.StartingWeight != nil {
		s.Starting = *data.StartingWeight
	}
	s.Current = last.Weight
	if last.Unit != "" {
		s.Unit = last.Unit
	}
	s.Change = RoundTo(s.Current-s.Starting, 1)
	s.ToGoal = RoundTo(s.Goal-s.Current, 1)
	return s
}

// WeightGoalProgress is how much of the distance from Starting to Goal has
// been covered, as a 0..100 percentage. Moving away from the goal counts as 0.
func WeightGoalProgress(s WeightSummary) float64 {
	total := s.Goal - s.Starting
	if total == 0 {
		if s.Current == s.Goal && s.Count > 0 {
			return 100
		}
		return 0
	}
	done := s.Current - s.Starting
	return GoalProgress(done/total, 1)
}

// WeightSeries returns the chart points for the last window records.
func WeightSeries(records []models.WeightRecord, window int) []Point {
	if window <= 0 {
		window = constants.WeightChartWindow
	}
	recent := WindowedSeries(records, window)
	out := make([]Point, len(recent))
	for i, r := range recent {
		out[i] = Point{Label: r.Date, Value: r.Weight}
	}
	return out
}

// BMI computes body-mass index from kilograms and centimetres, 0 when either is unknown.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return RoundTo(weightKg/(m*m), 1)
}

// BMICategory names the WHO band for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// PoundsToKg converts a weight in pounds to kilograms.
func PoundsToKg(lb float64) float64 {
	return lb * 0.45359237
}
