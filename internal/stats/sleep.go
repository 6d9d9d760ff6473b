// Package stats holds the pure aggregation functions behind every chart and
// summary. Nothing here mutates its input or touches storage.
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/utils"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// DefaultBedtime is returned when there is no good night to learn from.
var DefaultBedtime = TimeOfDay{Hour: 22, Minute: 30}

// TimeOfDayFromMinutes wraps minutes since midnight into a TimeOfDay.
func TimeOfDayFromMinutes(minutes int) TimeOfDay {
	minutes = ((minutes % utils.MinutesPerDay) + utils.MinutesPerDay) % utils.MinutesPerDay
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// String renders HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format12h renders e.g. "10:30 PM".
func (t TimeOfDay) Format12h() string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, period)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// SleepDuration returns hours between sleep and wake (HH:MM), adding a day
// when wake is earlier than sleep. The result is rounded to 0.1h.
func SleepDuration(sleep, wake string) (float64, error) {
	s, err := utils.ParseTimeToMinutes(sleep)
	if err != nil {
		return 0, fmt.Errorf("invalid sleep time %q: %w", sleep, err)
	}
	w, err := utils.ParseTimeToMinutes(wake)
	if err != nil {
		return 0, fmt.Errorf("invalid wake time %q: %w", wake, err)
	}
	if w < s {
		w += utils.MinutesPerDay
	}
	return RoundTo(float64(w-s)/60, 1), nil
}

// AverageDuration is the mean sleep duration in hours, 0 for no records.
func AverageDuration(records []models.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, r := range records {
		total += r.Duration
	}
	return total / float64(len(records))
}

// AverageQuality is the mean quality rating, 0 for no records.
func AverageQuality(records []models.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total int
	for _, r := range records {
		total += r.Quality
	}
	return float64(total) / float64(len(records))
}

// OptimalBedtime averages the bedtimes of nights rated 4 or better, as
// minutes since midnight, and rounds to the nearest minute. Without any
// such night it returns DefaultBedtime.
func OptimalBedtime(records []models.SleepRecord) TimeOfDay {
	var sum, n int
	for _, r := range records {
		if r.Quality < constants.GoodSleepQuality {
			continue
		}
		m, err := utils.ParseTimeToMinutes(r.SleepTime)
		if err != nil {
			continue
		}
		sum += m
		n++
	}
	if n == 0 {
		return DefaultBedtime
	}
	return TimeOfDayFromMinutes(int(math.Round(float64(sum) / float64(n))))
}

// Stars is a five-slot rating display.
type Stars struct {
	Full  int
	Half  bool
	Empty int
}

// StarRating splits an average rating into full, half and empty stars.
func StarRating(avg float64) Stars {
	avg = math.Max(0, math.Min(float64(constants.MaxSleepQuality), avg))
	full := int(math.Floor(avg))
	half := avg-float64(full) >= 0.5
	empty := constants.MaxSleepQuality - full
	if half {
		empty--
	}
	return Stars{Full: full, Half: half, Empty: empty}
}

func (s Stars) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("★", s.Full))
	if s.Half {
		b.WriteString("⯪")
	}
	b.WriteString(strings.Repeat("☆", s.Empty))
	return b.String()
}
