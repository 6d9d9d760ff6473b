package stats

import (
	"strings"

	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/utils"
)

// WaterWeek returns the weekly cups as Sunday-first points labelled
// "Sun".."Sat". Missing days count as zero.
func WaterWeek(weekly models.WeeklyWater) []Point {
	keys := utils.WeekdayKeys()
	out := make([]Point, len(keys))
	for i, k := range keys {
		out[i] = Point{Label: strings.ToUpper(k[:1]) + k[1:], Value: float64(weekly[k])}
	}
	return out
}

// WaterAxisMax is the chart ceiling: goal + 2 or the largest day, whichever is higher.
func WaterAxisMax(weekly models.WeeklyWater, goal int) int {
	ceiling := goal + 2
	for _, v := range weekly {
		if v > ceiling {
			ceiling = v
		}
	}
	return ceiling
}
