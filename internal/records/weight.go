package records

import (
	"sort"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
)

type WeightInput struct {
	Date   string
	Weight float64
	Unit   models.WeightUnit
	Notes  string
}

type WeightStore struct{ *base }

func newWeightData() models.WeightData {
	return models.WeightData{Records: []models.WeightRecord{}, Goal: constants.DefaultWeightGoal}
}

func (s *WeightStore) Data() (models.WeightData, error) {
	data, err := load(s.p, constants.KeyWeightData, newWeightData)
	if data.Records == nil {
		data.Records = []models.WeightRecord{}
	}
	return data, err
}

// Add appends a weigh-in. The first record of an empty history becomes the
// starting weight; records stay sorted by date.
func (s *WeightStore) Add(in WeightInput) (models.WeightRecord, error) {
	if in.Date == "" {
		in.Date = s.today()
	}
	if in.Unit == "" {
		in.Unit = models.WeightUnit(constants.DefaultWeightUnit)
	}
	now := s.now().UTC()
	record := models.WeightRecord{
		Date:      in.Date,
		Weight:    in.Weight,
		Unit:      in.Unit,
		Notes:     in.Notes,
		Timestamp: now,
	}
	if err := record.Validate(); err != nil {
		return models.WeightRecord{}, err
	}

	data, err := s.Data()
	if err != nil {
		return models.WeightRecord{}, err
	}
	if data.StartingWeight == nil && len(data.Records) == 0 {
		w := record.Weight
		data.StartingWeight = &w
	}
	data.Records = append(data.Records, record)
	sort.SliceStable(data.Records, func(i, j int) bool {
		return data.Records[i].Date < data.Records[j].Date
	})
	data.LastUpdated = now
	if err := save(s.p, constants.KeyWeightData, data); err != nil {
		return models.WeightRecord{}, err
	}
	return record, nil
}

func (s *WeightStore) SetGoal(goal float64) error {
	if goal <= 0 {
		return errors.Invalid("goal", "must be a positive number")
	}
	data, err := s.Data()
	if err != nil {
		return err
	}
	data.Goal = goal
	data.LastUpdated = s.now().UTC()
	return save(s.p, constants.KeyWeightData, data)
}
