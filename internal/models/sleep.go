package models

import (
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

// SleepRecord is one night of sleep. Duration is derived at entry time.
type SleepRecord struct {
	Date      string    `json:"date"`      // YYYY-MM-DD
	SleepTime string    `json:"sleepTime"` // HH:MM
	WakeTime  string    `json:"wakeTime"`  // HH:MM
	Quality   int       `json:"quality"`   // 1..5
	Duration  float64   `json:"duration"`  // hours, one decimal
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// SleepData is the document stored under the sleepData key.
type SleepData struct {
	Records     []SleepRecord `json:"records"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

func (r SleepRecord) RecordDate() string { return r.Date }

func (r *SleepRecord) Validate() error {
	if !utils.ValidateDateFormat(r.Date) {
		return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", r.Date)
	}
	if !utils.ValidateTimeFormat(r.SleepTime) {
		return errors.Invalid("sleepTime", "invalid time %q (expected HH:MM)", r.SleepTime)
	}
	if !utils.ValidateTimeFormat(r.WakeTime) {
		return errors.Invalid("wakeTime", "invalid time %q (expected HH:MM)", r.WakeTime)
	}
	if err := ValidateQuality(r.Quality); err != nil {
		return err
	}
	if r.Duration < 0 || r.Duration > 24 {
		return errors.Invalid("duration", "must be between 0 and 24 hours, got %.1f", r.Duration)
	}
	return nil
}

// ValidateQuality checks a 1..5 sleep quality rating.
func ValidateQuality(q int) error {
	if q < constants.MinSleepQuality || q > constants.MaxSleepQuality {
		return errors.Invalid("quality", "must be between %d and %d", constants.MinSleepQuality, constants.MaxSleepQuality)
	}
	return nil
}
