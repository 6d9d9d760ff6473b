package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	apperrors "github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/utils"
)

// WaterStore tracks daily intake in scalar keys and the weekly history in
// one document. Intake resets when the stored intake date is not today.
type WaterStore struct{ *base }

func (s *WaterStore) getInt(key string, def int) (int, error) {
	raw, err := s.p.GetItem(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return def, nil
		}
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logger.Warn("Malformed number treated as absent", "key", key, "value", raw)
		return def, nil
	}
	return n, nil
}

func (s *WaterStore) setInt(key string, n int) error {
	if err := s.p.SetItem(key, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Status returns today's goal and intake, starting a new day at zero.
func (s *WaterStore) Status() (models.WaterStatus, error) {
	today := s.today()
	goal, err := s.getInt(constants.KeyWaterGoal, constants.DefaultWaterGoal)
	if err != nil {
		return models.WaterStatus{}, err
	}
	if goal < 1 {
		goal = constants.DefaultWaterGoal
	}
	st := models.WaterStatus{Goal: goal, Date: today}

	date, err := s.p.GetItem(constants.KeyWaterIntakeDate)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.WaterStatus{}, fmt.Errorf("load %s: %w", constants.KeyWaterIntakeDate, err)
	}
	if date != today {
		if err := s.setInt(constants.KeyWaterIntake, 0); err != nil {
			return models.WaterStatus{}, err
		}
		if err := s.p.SetItem(constants.KeyWaterIntakeDate, today); err != nil {
			return models.WaterStatus{}, fmt.Errorf("save %s: %w", constants.KeyWaterIntakeDate, err)
		}
		return st, nil
	}

	st.Intake, err = s.getInt(constants.KeyWaterIntake, 0)
	if err != nil {
		return models.WaterStatus{}, err
	}
	if st.Intake < 0 {
		st.Intake = 0
	}
	return st, nil
}

func (s *WaterStore) SetGoal(cups int) error {
	if cups < 1 {
		return apperrors.Invalid("goal", "must be at least 1 cup")
	}
	return s.setInt(constants.KeyWaterGoal, cups)
}

// Drink adds cups to today's intake and mirrors it into the weekly
// history. reachedNow is true only on the drink that first meets the goal.
func (s *WaterStore) Drink(cups int) (st models.WaterStatus, reachedNow bool, err error) {
	if cups < 1 {
		return models.WaterStatus{}, false, apperrors.Invalid("cups", "must be at least 1")
	}
	st, err = s.Status()
	if err != nil {
		return st, false, err
	}
	before := st.Intake
	st.Intake += cups
	if err := s.commit(st.Intake); err != nil {
		return st, false, err
	}
	return st, before < st.Goal && st.Intake >= st.Goal, nil
}

// Undo removes one cup, never going below zero.
func (s *WaterStore) Undo() (models.WaterStatus, error) {
	st, err := s.Status()
	if err != nil {
		return st, err
	}
	if st.Intake == 0 {
		return st, nil
	}
	st.Intake--
	return st, s.commit(st.Intake)
}

func (s *WaterStore) commit(intake int) error {
	if err := s.setInt(constants.KeyWaterIntake, intake); err != nil {
		return err
	}
	week, err := s.Weekly()
	if err != nil {
		return err
	}
	week[utils.WeekdayKey(s.clock().Weekday())] = intake
	return save(s.p, constants.KeyWeeklyWaterData, week)
}

// Weekly returns cups per weekday, all zero when nothing is stored.
func (s *WaterStore) Weekly() (models.WeeklyWater, error) {
	week, err := load(s.p, constants.KeyWeeklyWaterData, models.NewWeeklyWater)
	if err != nil {
		return nil, err
	}
	if week == nil {
		week = models.NewWeeklyWater()
	}
	for _, d := range utils.WeekdayKeys() {
		if _, ok := week[d]; !ok {
			week[d] = 0
		}
	}
	return week, nil
}
