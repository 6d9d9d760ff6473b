package models

import (
	"time"

	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/utils"
)

type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

type WeightRecord struct {
	Date      string     `json:"date"`
	Weight    float64    `json:"weight"`
	Unit      WeightUnit `json:"unit"`
	Notes     string     `json:"notes"`
	Timestamp time.Time  `json:"timestamp"`
}

// WeightData is the document stored under the weightData key.
// StartingWeight stays nil until the first record is logged.
type WeightData struct {
	Records        []WeightRecord `json:"records"`
	Goal           float64        `json:"goal"`
	StartingWeight *float64       `json:"startingWeight"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

func (r WeightRecord) RecordDate() string { return r.Date }

func (r *WeightRecord) Validate() error {
	if !utils.ValidateDateFormat(r.Date) {
		return errors.Invalid("date", "invalid date %q (expected YYYY-MM-DD)", r.Date)
	}
	if r.Weight <= 0 {
		return errors.Invalid("weight", "must be a positive number")
	}
	return r.Unit.Validate()
}

func (u WeightUnit) Validate() error {
	switch u {
	case UnitKg, UnitLb:
		return nil
	}
	return errors.Invalid("unit", "must be kg or lb, got %q", string(u))
}
