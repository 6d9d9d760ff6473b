package models

import (
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

// WeeklyWater maps weekday keys ("sun".."sat") to cups drunk that day.
type WeeklyWater map[string]int

// NewWeeklyWater returns a week with every day at zero.
func NewWeeklyWater() WeeklyWater {
	w := make(WeeklyWater, 7)
	for _, d := range utils.WeekdayKeys() {
		w[d] = 0
	}
	return w
}

func (w WeeklyWater) Validate() error {
	valid := make(map[string]bool, 7)
	for _, d := range utils.WeekdayKeys() {
		valid[d] = true
	}
	for day, cups := range w {
		if !valid[day] {
			return errors.Invalid("day", "unknown weekday %q", day)
		}
		if cups < 0 {
			return errors.Invalid(day, "cups cannot be negative")
		}
	}
	return nil
}

// WaterStatus is today's hydration state.
type WaterStatus struct {
	Goal   int    `json:"goal"`
	Intake int    `json:"intake"`
	Date   string `json:"date"`
}

// Reached reports whether today's intake meets the goal.
func (s WaterStatus) Reached() bool {
	return s.Goal > 0 && s.Intake >= s.Goal
}
