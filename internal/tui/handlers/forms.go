package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/tui/state"
	"github.com/julianstephens/wellhub/internal/utils"
)

func validateDate(s string) error {
	if s == "" || utils.ValidateDateFormat(s) {
		return nil
	}
	return fmt.Errorf("use YYYY-MM-DD")
}

func validateTime(s string) error {
	if utils.ValidateTimeFormat(s) {
		return nil
	}
	return fmt.Errorf("use HH:MM")
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func moodOptions(allowNone bool) []huh.Option[models.MoodValue] {
	var opts []huh.Option[models.MoodValue]
	if allowNone {
		opts = append(opts, huh.NewOption("None", models.MoodValue(0)))
	}
	for v := models.MoodVeryHappy; v >= models.MoodVerySad; v-- {
		opts = append(opts, huh.NewOption(v.Emoji()+" "+v.Label(), v))
	}
	return opts
}

// NewSleepForm creates the form for logging a night of sleep
func NewSleepForm(fm *state.SleepFormModel) *huh.Form {
	quality := make([]huh.Option[int], 0, 5)
	for q := 5; q >= 1; q-- {
		quality = append(quality, huh.NewOption(strings.Repeat("★", q)+strings.Repeat("☆", 5-q), q))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, the morning you woke up").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Bedtime").
				Placeholder("23:00").
				Value(&fm.SleepTime).
				Validate(validateTime),
			huh.NewInput().
				Title("Wake time").
				Placeholder("07:00").
				Value(&fm.WakeTime).
				Validate(validateTime),
			huh.NewSelect[int]().
				Title("Quality").
				Options(quality...).
				Value(&fm.Quality),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewWeightForm creates the weigh-in form
func NewWeightForm(fm *state.WeightFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Weight").
				Value(&fm.Weight).
				Validate(validatePositiveFloat),
			huh.NewSelect[models.WeightUnit]().
				Title("Unit").
				Options(
					huh.NewOption("kg", models.UnitKg),
					huh.NewOption("lb", models.UnitLb),
				).
				Value(&fm.Unit),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGoalForm creates a one-field form for a numeric goal
func NewGoalForm(fm *state.GoalFormModel, title string, integer bool) *huh.Form {
	validate := validatePositiveFloat
	if integer {
		validate = validatePositiveInt
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Value).
				Validate(validate),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMealForm creates the meal form
func NewMealForm(fm *state.MealFormModel) *huh.Form {
	types := make([]huh.Option[models.MealType], len(models.MealTypes))
	for i, t := range models.MealTypes {
		types[i] = huh.NewOption(t.Title(), t)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MealType]().
				Title("Meal").
				Options(types...).
				Value(&fm.Type),
			huh.NewInput().
				Title("Food").
				Value(&fm.Name).
				Validate(notEmpty("food")),
			huh.NewInput().
				Title("Calories").
				Value(&fm.Calories).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Time").
				Value(&fm.Time).
				Validate(validateTime),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRunForm creates the run form
func NewRunForm(fm *state.RunFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Distance (km)").
				Value(&fm.Distance).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Time (minutes)").
				Value(&fm.Minutes).
				Validate(validatePositiveInt),
			huh.NewSelect[models.Intensity]().
				Title("Intensity").
				Options(
					huh.NewOption(models.IntensityLow.Label(), models.IntensityLow),
					huh.NewOption(models.IntensityMedium.Label(), models.IntensityMedium),
					huh.NewOption(models.IntensityHigh.Label(), models.IntensityHigh),
					huh.NewOption(models.IntensitySprint.Label(), models.IntensitySprint),
				).
				Value(&fm.Intensity),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMoodForm creates the mood form
func NewMoodForm(fm *state.MoodFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MoodValue]().
				Title("How are you feeling?").
				Options(moodOptions(false)...).
				Value(&fm.Value),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewJournalForm creates the journal entry form
func NewJournalForm(fm *state.JournalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(notEmpty("title")),
			huh.NewInput().
				Title("Date").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewText().
				Title("Entry").
				Value(&fm.Content).
				Validate(notEmpty("entry")),
		),
		huh.NewGroup(
			huh.NewSelect[models.MoodValue]().
				Title("Mood").
				Options(moodOptions(true)...).
				Value(&fm.Mood),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}

// PatternTitle is the label for a breathing pattern in toasts.
func PatternTitle(p routines.Pattern) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}
