package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
)

// CalendarDay is one cell of the mood calendar. Day is 0 for padding cells.
type CalendarDay struct {
	Day   int
	Date  string
	Mood  models.MoodValue
	Emoji string
	Today bool
}

// MoodCalendar lays out a month as Sunday-first weeks. Leading and trailing
// cells outside the month have Day 0.
func MoodCalendar(year int, month time.Month, data models.MoodData, today string) [][]CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	var weeks [][]CalendarDay
	week := make([]CalendarDay, int(first.Weekday()))
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
		cell := CalendarDay{Day: d, Date: date, Today: date == today}
		if e, ok := data[date]; ok {
			cell.Mood = e.Value
			cell.Emoji = e.Emoji
			if cell.Emoji == "" {
				cell.Emoji = e.Value.Emoji()
			}
		}
		week = append(week, cell)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// MoodPoint is one dated mood value.
type MoodPoint struct {
	Date  string
	Value models.MoodValue
}

func (p MoodPoint) RecordDate() string { return p.Date }

// MoodSeries returns the latest n logged moods in ascending date order.
func MoodSeries(data models.MoodData, n int) []MoodPoint {
	points := make([]MoodPoint, 0, len(data))
	for date, e := range data {
		points = append(points, MoodPoint{Date: date, Value: e.Value})
	}
	// map order is random; fix it before the stable date sort
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return WindowedSeries(points, n)
}

// AverageMood is the mean of the given points, 0 when empty.
func AverageMood(points []MoodPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var total int
	for _, p := range points {
		total += int(p.Value)
	}
	return float64(total) / float64(len(points))
}

// JournalMoodSeries charts the mood of the latest n journal entries by date.
func JournalMoodSeries(entries []models.JournalEntry, n int) []MoodPoint {
	recent := WindowedSeries(entries, n)
	out := make([]MoodPoint, len(recent))
	for i, e := range recent {
		out[i] = MoodPoint{Date: e.Date, Value: e.Mood}
	}
	return out
}
