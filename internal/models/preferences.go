package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

// Preferences are the user-tunable scalar keys. Each field lives under its
// own storage key as a plain string, the way browser storage keeps them.
type Preferences struct {
	Theme            string  `json:"theme" yaml:"theme"`
	RemindersEnabled bool    `json:"remindersEnabled" yaml:"remindersEnabled"`
	SoundsEnabled    bool    `json:"soundsEnabled" yaml:"soundsEnabled"`
	CalorieGoal      int     `json:"calorieGoal" yaml:"calorieGoal"`
	WaterGoal        int     `json:"waterGoal" yaml:"waterGoal"`
	UserWeight       float64 `json:"userWeight" yaml:"userWeight"` // kg
	UserHeight       float64 `json:"userHeight" yaml:"userHeight"` // cm
	Timezone         string  `json:"timezone" yaml:"timezone"`
}

// Profile is the small user document stored under wellnessHubUser.
type Profile struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// PreferenceKeys lists the storage keys backing Preferences.
var PreferenceKeys = []string{
	constants.KeyTheme,
	constants.KeyRemindersEnabled,
	constants.KeySoundsEnabled,
	constants.KeyCalorieGoal,
	constants.KeyWaterGoal,
	constants.KeyUserWeight,
	constants.KeyUserHeight,
	constants.KeyTimezone,
}

// DefaultPreferences returns the preferences of a fresh profile.
func DefaultPreferences() Preferences {
	p := Preferences{
		SoundsEnabled:    constants.DefaultSoundsEnabled,
		RemindersEnabled: constants.DefaultRemindersEnabled,
	}
	ApplyDefaultPreferences(&p)
	return p
}

// MapToPreferences converts stored key/value strings into Preferences.
// Missing keys keep their defaults; blank numeric values are ignored.
func MapToPreferences(data map[string]string) (Preferences, error) {
	p := DefaultPreferences()

	for key, value := range data {
		value = strings.TrimSpace(value)
		switch key {
		case constants.KeyTheme:
			p.Theme = value
		case constants.KeyRemindersEnabled:
			p.RemindersEnabled = value == "true"
		case constants.KeySoundsEnabled:
			// anything but an explicit "false" keeps sounds on
			p.SoundsEnabled = value != "false"
		case constants.KeyCalorieGoal:
			if value == "" {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			p.CalorieGoal = n
		case constants.KeyWaterGoal:
			if value == "" {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			p.WaterGoal = n
		case constants.KeyUserWeight:
			if value == "" {
				continue
			}
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			p.UserWeight = f
		case constants.KeyUserHeight:
			if value == "" {
				continue
			}
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Preferences{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			p.UserHeight = f
		case constants.KeyTimezone:
			p.Timezone = value
		}
	}
	ApplyDefaultPreferences(&p)
	return p, nil
}

// PreferencesToMap converts Preferences into the stored key/value strings.
func PreferencesToMap(p Preferences) map[string]string {
	m := map[string]string{
		constants.KeyTheme:            p.Theme,
		constants.KeyRemindersEnabled: strconv.FormatBool(p.RemindersEnabled),
		constants.KeySoundsEnabled:    strconv.FormatBool(p.SoundsEnabled),
		constants.KeyCalorieGoal:      strconv.Itoa(p.CalorieGoal),
		constants.KeyWaterGoal:        strconv.Itoa(p.WaterGoal),
		constants.KeyTimezone:         p.Timezone,
	}
	if p.UserWeight > 0 {
		m[constants.KeyUserWeight] = strconv.FormatFloat(p.UserWeight, 'f', -1, 64)
	}
	if p.UserHeight > 0 {
		m[constants.KeyUserHeight] = strconv.FormatFloat(p.UserHeight, 'f', -1, 64)
	}
	return m
}

// ApplyDefaultPreferences fills zero values with defaults.
func ApplyDefaultPreferences(p *Preferences) {
	if p.Theme == "" {
		p.Theme = constants.DefaultTheme
	}
	if p.CalorieGoal == 0 {
		p.CalorieGoal = constants.DefaultCalorieGoal
	}
	if p.WaterGoal == 0 {
		p.WaterGoal = constants.DefaultWaterGoal
	}
	if p.Timezone == "" {
		p.Timezone = constants.DefaultTimezone
	}
}

// WeightKg returns the user's weight, or the 70 kg default when unset.
func (p Preferences) WeightKg() float64 {
	if p.UserWeight <= 0 {
		return constants.DefaultUserWeightKg
	}
	return p.UserWeight
}

func (p *Preferences) Validate() error {
	if !IsTheme(p.Theme) {
		return errors.Invalid("theme", "must be one of %s", strings.Join(constants.Themes, ", "))
	}
	if p.CalorieGoal <= 0 {
		return errors.Invalid("calorieGoal", "must be a positive number")
	}
	if p.WaterGoal < 1 {
		return errors.Invalid("waterGoal", "must be at least 1 cup")
	}
	if p.UserWeight < 0 {
		return errors.Invalid("userWeight", "cannot be negative")
	}
	if p.UserHeight < 0 {
		return errors.Invalid("userHeight", "cannot be negative")
	}
	if !utils.ValidateTimezone(p.Timezone) {
		return errors.Invalid("timezone", "unknown timezone %q", p.Timezone)
	}
	return nil
}

// IsTheme reports whether name is a supported theme.
func IsTheme(name string) bool {
	for _, t := range constants.Themes {
		if t == name {
			return true
		}
	}
	return false
}
