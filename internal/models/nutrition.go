package models

import (
	"strings"

	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists meal types in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (t MealType) Validate() error {
	for _, mt := range MealTypes {
		if t == mt {
			return nil
		}
	}
	return errors.Invalid("type", "must be one of breakfast, lunch, dinner, snack; got %q", string(t))
}

// Title returns the capitalized meal type.
func (t MealType) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

type Meal struct {
	ID       ID       `json:"id"`
	Type     MealType `json:"type"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Time     string   `json:"time"` // HH:MM
	Date     string   `json:"date"` // YYYY-MM-DD
}

func (m Meal) RecordDate() string { return m.Date }

func (m *Meal) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.Invalid("name", "meal name cannot be empty")
	}
	if m.Calories <= 0 {
		return errors.Invalid("calories", "must be a positive number")
	}
	if err := m.Type.Validate(); err != nil {
		return err
	}
	if !utils.ValidateTimeFormat(m.Time) {
		return errors.Invalid("time", "invalid time %q (expected HH:MM)", m.Time)
	}
	if !utils.ValidateDateFormat(m.Date) {
		return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", m.Date)
	}
	return nil
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
	IntensitySprint Intensity = "sprint"
)

// MET returns the metabolic equivalent used for the calorie estimate.
// Unknown intensities count as medium.
func (i Intensity) MET() float64 {
	switch i {
	case IntensityLow:
		return 7
	case IntensityHigh:
		return 12
	case IntensitySprint:
		return 15
	default:
		return 10
	}
}

func (i Intensity) Label() string {
	switch i {
	case IntensityLow:
		return "Easy"
	case IntensityMedium:
		return "Moderate"
	case IntensityHigh:
		return "Hard"
	case IntensitySprint:
		return "Sprint"
	}
	return string(i)
}

func (i Intensity) Validate() error {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh, IntensitySprint:
		return nil
	}
	return errors.Invalid("intensity", "must be one of low, medium, high, sprint; got %q", string(i))
}

// RunningActivity is a logged run. Time is in minutes, Distance in km.
type RunningActivity struct {
	ID        ID        `json:"id"`
	Date      string    `json:"date"`
	Distance  float64   `json:"distance"`
	Time      int       `json:"time"`
	Intensity Intensity `json:"intensity"`
	Pace      string    `json:"pace"` // m:ss per km
	Calories  int       `json:"calories"`
}

func (a RunningActivity) RecordDate() string { return a.Date }

func (a *RunningActivity) Validate() error {
	if !utils.ValidateDateFormat(a.Date) {
		return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", a.Date)
	}
	if a.Distance <= 0 {
		return errors.Invalid("distance", "must be a positive number of kilometres")
	}
	if a.Time <= 0 {
		return errors.Invalid("time", "must be a positive number of minutes")
	}
	return a.Intensity.Validate()
}
