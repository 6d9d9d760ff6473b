// Package records persists the wellness record domains as typed JSON
// documents over a storage.Provider.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/storage"
)

// load decodes the document under key. A missing key yields def(); a
// malformed document is logged and also yields def(). Only storage
// failures are returned as errors.
func load[T any](p storage.Provider, key string, def func() T) (T, error) {
	raw, err := p.GetItem(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return def(), nil
		}
		var zero T
		return zero, fmt.Errorf("load %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("Malformed document treated as absent", "key", key, "error", err)
		return def(), nil
	}
	return v, nil
}

// save marshals v and overwrites key.
func save[T any](p storage.Provider, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.SetItem(key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Decode decodes raw into the typed schema owned by key and returns a
// pointer to it. Scalar and unknown keys are returned as the raw string.
func Decode(key, raw string) (any, error) {
	var target any
	switch key {
	case constants.KeySleepData:
		target = &models.SleepData{}
	case constants.KeyWeightData:
		target = &models.WeightData{}
	case constants.KeyMoodData:
		target = &models.MoodData{}
	case constants.KeyMeals:
		target = &[]models.Meal{}
	case constants.KeyRunningActivities:
		target = &[]models.RunningActivity{}
	case constants.KeyJournalEntries:
		target = &[]models.JournalEntry{}
	case constants.KeyWeeklyWaterData:
		target = &models.WeeklyWater{}
	case constants.KeyProfile:
		target = &models.Profile{}
	default:
		return raw, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return target, nil
}

// base carries what every domain store shares.
type base struct {
	p   storage.Provider
	now func() time.Time
	loc *time.Location
}

func (b *base) clock() time.Time {
	return b.now().In(b.loc)
}

func (b *base) today() string {
	return b.clock().Format(constants.DateFormat)
}
