package stats

import (
	"sort"
)

// Dated is any record keyed by a YYYY-MM-DD date.
type Dated interface {
	RecordDate() string
}

// WindowedSeries returns the last n records in ascending date order.
// Records sharing a date keep their relative order. n <= 0 yields nothing.
func WindowedSeries[T Dated](records []T, n int) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}
	sorted := SortByDate(records)
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// SortByDate returns a copy of records sorted by date ascending.
// YYYY-MM-DD sorts correctly as a string.
func SortByDate[T Dated](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordDate() < out[j].RecordDate()
	})
	return out
}

// FilterDate returns the records logged on date, in input order.
func FilterDate[T Dated](records []T, date string) []T {
	out := make([]T, 0)
	for _, r := range records {
		if r.RecordDate() == date {
			out = append(out, r)
		}
	}
	return out
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string
	Value float64
}

// GoalProgress is value as a percentage of goal, capped at 100.
func GoalProgress(value, goal float64) float64 {
	if goal <= 0 || value <= 0 {
		return 0
	}
	p := value / goal * 100
	if p > 100 {
		return 100
	}
	return p
}
