package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

// MoodValue is a 1..5 mood rating. Journal entries historically stored it
// as a string ("4"), so decoding accepts both forms.
type MoodValue int

const (
	MoodVerySad MoodValue = iota + 1
	MoodSad
	MoodNeutral
	MoodHappy
	MoodVeryHappy
)

type moodLevel struct {
	emoji string
	label string
}

var moodLevels = map[MoodValue]moodLevel{
	MoodVerySad:   {"😢", "Very Sad"},
	MoodSad:       {"😔", "Sad"},
	MoodNeutral:   {"😐", "Neutral"},
	MoodHappy:     {"😊", "Happy"},
	MoodVeryHappy: {"😁", "Very Happy"},
}

// Emoji returns the face for the value, neutral when out of range.
func (v MoodValue) Emoji() string {
	if l, ok := moodLevels[v]; ok {
		return l.emoji
	}
	return moodLevels[MoodNeutral].emoji
}

func (v MoodValue) Label() string {
	if l, ok := moodLevels[v]; ok {
		return l.label
	}
	return ""
}

func (v MoodValue) Validate() error {
	if v < MoodVerySad || v > MoodVeryHappy {
		return errors.Invalid("mood", "must be between %d and %d", MoodVerySad, MoodVeryHappy)
	}
	return nil
}

// ParseMood accepts a number 1..5 or a label such as "happy".
func ParseMood(s string) (MoodValue, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		v := MoodValue(n)
		return v, v.Validate()
	}
	for v, l := range moodLevels {
		if strings.EqualFold(l.label, s) || strings.EqualFold(strings.ReplaceAll(l.label, " ", "-"), s) {
			return v, nil
		}
	}
	return 0, errors.Invalid("mood", "unknown mood %q", s)
}

func (v *MoodValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*v = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("mood value %q is not a number", s)
		}
		*v = MoodValue(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = MoodValue(n)
	return nil
}

// MoodEntry is the single mood logged for a date. Timestamp is epoch milliseconds.
type MoodEntry struct {
	Value     MoodValue `json:"value"`
	Emoji     string    `json:"emoji"`
	Notes     string    `json:"notes"`
	Timestamp int64     `json:"timestamp"`
}

// MoodData maps YYYY-MM-DD dates to the mood logged that day.
type MoodData map[string]MoodEntry

func (e *MoodEntry) Validate() error {
	return e.Value.Validate()
}

// Validate checks every date key and entry.
func (d MoodData) Validate() error {
	for date, entry := range d {
		if !utils.ValidateDateFormat(date) {
			return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", date)
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%s: %w", date, err)
		}
	}
	return nil
}
