package records

import (
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/stats"
)

// SleepInput is a submitted sleep form. An empty Date means today.
type SleepInput struct {
	Date      string
	SleepTime string
	WakeTime  string
	Quality   int
	Notes     string
}

type SleepStore struct{ *base }

func newSleepData() models.SleepData {
	return models.SleepData{Records: []models.SleepRecord{}}
}

func (s *SleepStore) Data() (models.SleepData, error) {
	data, err := load(s.p, constants.KeySleepData, newSleepData)
	if data.Records == nil {
		data.Records = []models.SleepRecord{}
	}
	return data, err
}

func (s *SleepStore) Records() ([]models.SleepRecord, error) {
	data, err := s.Data()
	return data.Records, err
}

// Add validates the input, derives the duration and appends the record.
func (s *SleepStore) Add(in SleepInput) (models.SleepRecord, error) {
	if in.SleepTime == "" || in.WakeTime == "" {
		return models.SleepRecord{}, errors.Invalid("", "please fill in all fields")
	}
	if in.Date == "" {
		in.Date = s.today()
	}
	duration, err := stats.SleepDuration(in.SleepTime, in.WakeTime)
	if err != nil {
		return models.SleepRecord{}, errors.Invalid("time", "%v", err)
	}

	now := s.now().UTC()
	record := models.SleepRecord{
		Date:      in.Date,
		SleepTime: in.SleepTime,
		WakeTime:  in.WakeTime,
		Quality:   in.Quality,
		Duration:  duration,
		Notes:     in.Notes,
		Timestamp: now,
	}
	if err := record.Validate(); err != nil {
		return models.SleepRecord{}, err
	}

	data, err := s.Data()
	if err != nil {
		return models.SleepRecord{}, err
	}
	data.Records = append(data.Records, record)
	data.LastUpdated = now
	if err := save(s.p, constants.KeySleepData, data); err != nil {
		return models.SleepRecord{}, err
	}
	return record, nil
}
