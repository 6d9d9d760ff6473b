package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/utils"
)

type MoodStore struct{ *base }

func newMoodData() models.MoodData { return models.MoodData{} }

func (s *MoodStore) All() (models.MoodData, error) {
	data, err := load(s.p, constants.KeyMoodData, newMoodData)
	if data == nil {
		data = models.MoodData{}
	}
	return data, err
}

// Get returns the mood logged on date and whether there was one.
func (s *MoodStore) Get(date string) (models.MoodEntry, bool, error) {
	data, err := s.All()
	if err != nil {
		return models.MoodEntry{}, false, err
	}
	e, ok := data[date]
	return e, ok, nil
}

// Set records the mood for date, replacing any earlier entry that day.
func (s *MoodStore) Set(date string, value models.MoodValue, notes string) (models.MoodEntry, error) {
	if value == 0 {
		return models.MoodEntry{}, errors.Invalid("mood", "please select a mood first")
	}
	if err := value.Validate(); err != nil {
		return models.MoodEntry{}, err
	}
	if date == "" {
		date = s.today()
	}
	if !utils.ValidateDateFormat(date) {
		return models.MoodEntry{}, errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", date)
	}

	data, err := s.All()
	if err != nil {
		return models.MoodEntry{}, err
	}
	entry := models.MoodEntry{
		Value:     value,
		Emoji:     value.Emoji(),
		Notes:     notes,
		Timestamp: s.now().UnixMilli(),
	}
	data[date] = entry
	if err := save(s.p, constants.KeyMoodData, data); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// Month returns the entries logged in the given month.
func (s *MoodStore) Month(year int, month time.Month) (models.MoodData, error) {
	data, err := s.All()
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	out := models.MoodData{}
	for date, e := range data {
		if strings.HasPrefix(date, prefix) {
			out[date] = e
		}
	}
	return out, nil
}
