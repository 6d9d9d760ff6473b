package records

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/stats"
)

// MealInput is a submitted meal form. Empty Date and Time mean now.
type MealInput struct {
	Type     models.MealType
	Name     string
	Calories int
	Time     string
	Date     string
}

type MealStore struct{ *base }

func newMeals() []models.Meal { return []models.Meal{} }

func (s *MealStore) All() ([]models.Meal, error) {
	meals, err := load(s.p, constants.KeyMeals, newMeals)
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, err
}

func (s *MealStore) ForDate(date string) ([]models.Meal, error) {
	meals, err := s.All()
	if err != nil {
		return nil, err
	}
	return stats.FilterDate(meals, date), nil
}

func (s *MealStore) Add(in MealInput) (models.Meal, error) {
	now := s.clock()
	if in.Date == "" {
		in.Date = now.Format(constants.DateFormat)
	}
	if in.Time == "" {
		in.Time = now.Format(constants.TimeFormat)
	}
	if in.Type == "" {
		in.Type = models.MealSnack
	}
	meal := models.Meal{
		ID:       models.NewID(),
		Type:     models.MealType(strings.ToLower(string(in.Type))),
		Name:     strings.TrimSpace(in.Name),
		Calories: in.Calories,
		Time:     in.Time,
		Date:     in.Date,
	}
	if err := meal.Validate(); err != nil {
		return models.Meal{}, err
	}

	meals, err := s.All()
	if err != nil {
		return models.Meal{}, err
	}
	meals = append(meals, meal)
	if err := save(s.p, constants.KeyMeals, meals); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

// Delete removes the meal with id, returning errors.ErrNotFound when absent.
func (s *MealStore) Delete(id models.ID) (models.Meal, error) {
	meals, err := s.All()
	if err != nil {
		return models.Meal{}, err
	}
	for i, m := range meals {
		if m.ID == id {
			meals = append(meals[:i], meals[i+1:]...)
			return m, save(s.p, constants.KeyMeals, meals)
		}
	}
	return models.Meal{}, fmt.Errorf("meal %s: %w", id, errors.ErrNotFound)
}

// RunInput is a submitted run. Minutes is the total time.
type RunInput struct {
	Date      string
	Distance  float64
	Minutes   int
	Intensity models.Intensity
}

type RunningStore struct{ *base }

func newRuns() []models.RunningActivity { return []models.RunningActivity{} }

func (s *RunningStore) All() ([]models.RunningActivity, error) {
	runs, err := load(s.p, constants.KeyRunningActivities, newRuns)
	if runs == nil {
		runs = []models.RunningActivity{}
	}
	return runs, err
}

func (s *RunningStore) ForDate(date string) ([]models.RunningActivity, error) {
	runs, err := s.All()
	if err != nil {
		return nil, err
	}
	return stats.FilterDate(runs, date), nil
}

// Add derives pace and calories (using weightKg, 70 kg when unknown) and appends the run.
func (s *RunningStore) Add(in RunInput, weightKg float64) (models.RunningActivity, error) {
	if in.Date == "" {
		in.Date = s.today()
	}
	if in.Intensity == "" {
		in.Intensity = models.IntensityMedium
	}
	run := models.RunningActivity{
		ID:        models.NewID(),
		Date:      in.Date,
		Distance:  in.Distance,
		Time:      in.Minutes,
		Intensity: in.Intensity,
	}
	if err := run.Validate(); err != nil {
		return models.RunningActivity{}, err
	}
	run.Pace = stats.Pace(float64(in.Minutes), in.Distance)
	run.Calories = stats.CaloriesBurned(in.Intensity, weightKg, in.Minutes)

	runs, err := s.All()
	if err != nil {
		return models.RunningActivity{}, err
	}
	runs = append(runs, run)
	if err := save(s.p, constants.KeyRunningActivities, runs); err != nil {
		return models.RunningActivity{}, err
	}
	return run, nil
}

func (s *RunningStore) Delete(id models.ID) (models.RunningActivity, error) {
	runs, err := s.All()
	if err != nil {
		return models.RunningActivity{}, err
	}
	for i, r := range runs {
		if r.ID == id {
			runs = append(runs[:i], runs[i+1:]...)
			return r, save(s.p, constants.KeyRunningActivities, runs)
		}
	}
	return models.RunningActivity{}, fmt.Errorf("run %s: %w", id, errors.ErrNotFound)
}
