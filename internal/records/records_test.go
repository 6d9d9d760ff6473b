package records

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellhub/internal/constants"
	apperrors "github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/storage"
)

// fixedClock returns a clock that starts at t and can be advanced.
func fixedClock(t time.Time) (func() time.Time, func(time.Duration)) {
	now := t
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func newTestHub(t *testing.T, at time.Time) (*Hub, *storage.MemoryStore, func(time.Duration)) {
	t.Helper()
	mem := storage.NewMemoryStore()
	clock, advance := fixedClock(at)
	return NewHub(mem, WithClock(clock), WithLocation(time.UTC)), mem, advance
}

// Wednesday
var day = time.Date(2024, 3, 13, 21, 0, 0, 0, time.UTC)

func TestLoadMalformedYieldsDefault(t *testing.T) {
	h, mem, _ := newTestHub(t, day)
	require.NoError(t, mem.SetItem(constants.KeySleepData, "{not json"))

	data, err := h.Sleep.Data()
	require.NoError(t, err)
	assert.Empty(t, data.Records)

	_, err = h.Sleep.Add(SleepInput{SleepTime: "23:00", WakeTime: "07:00", Quality: 4})
	require.NoError(t, err)
	data, err = h.Sleep.Data()
	require.NoError(t, err)
	assert.Len(t, data.Records, 1)
}

func TestSleepAdd(t *testing.T) {
	h, _, _ := newTestHub(t, day)

	rec, err := h.Sleep.Add(SleepInput{SleepTime: "23:30", WakeTime: "07:15", Quality: 5, Notes: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-13", rec.Date)
	assert.InDelta(t, 7.8, rec.Duration, 0.001)

	_, err = h.Sleep.Add(SleepInput{SleepTime: "", WakeTime: "07:00", Quality: 3})
	assert.True(t, apperrors.IsValidation(err))

	_, err = h.Sleep.Add(SleepInput{SleepTime: "23:00", WakeTime: "07:00", Quality: 9})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	records, err := h.Sleep.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWeightStartingWeightAndSort(t *testing.T) {
	h, _, _ := newTestHub(t, day)

	_, err := h.Weight.Add(WeightInput{Date: "2024-03-10", Weight: 80})
	require.NoError(t, err)
	_, err = h.Weight.Add(WeightInput{Date: "2024-03-01", Weight: 82})
	require.NoError(t, err)

	data, err := h.Weight.Data()
	require.NoError(t, err)
	require.NotNil(t, data.StartingWeight)
	assert.Equal(t, 80.0, *data.StartingWeight)
	assert.Equal(t, constants.DefaultWeightGoal, data.Goal)
	assert.Equal(t, "2024-03-01", data.Records[0].Date)
	assert.Equal(t, models.WeightUnit("kg"), data.Records[0].Unit)

	require.NoError(t, h.Weight.SetGoal(75))
	assert.Error(t, h.Weight.SetGoal(0))
	data, err = h.Weight.Data()
	require.NoError(t, err)
	assert.Equal(t, 75.0, data.Goal)
}

func TestMoodSetAndMonth(t *testing.T) {
	h, _, _ := newTestHub(t, day)

	_, err := h.Mood.Set("", 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please select a mood first")

	e, err := h.Mood.Set("", models.MoodHappy, "sunny")
	require.NoError(t, err)
	assert.Equal(t, "😊", e.Emoji)
	assert.Equal(t, day.UnixMilli(), e.Timestamp)

	_, err = h.Mood.Set("2024-03-13", models.MoodSad, "")
	require.NoError(t, err)
	_, err = h.Mood.Set("2024-02-28", models.MoodNeutral, "")
	require.NoError(t, err)

	got, ok, err := h.Mood.Get("2024-03-13")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.MoodSad, got.Value)

	march, err := h.Mood.Month(2024, time.March)
	require.NoError(t, err)
	assert.Len(t, march, 1)
}

func TestMealsAddDelete(t *testing.T) {
	h, _, _ := newTestHub(t, day)

	m, err := h.Meals.Add(MealInput{Type: "Lunch", Name: " Salad ", Calories: 450})
	require.NoError(t, err)
	assert.Equal(t, models.MealLunch, m.Type)
	assert.Equal(t, "Salad", m.Name)
	assert.Equal(t, "21:00", m.Time)
	assert.NotEmpty(t, m.ID)

	_, err = h.Meals.Add(MealInput{Type: models.MealDinner, Name: "Pasta", Calories: 700, Date: "2024-03-12"})
	require.NoError(t, err)
	_, err = h.Meals.Add(MealInput{Type: models.MealDinner, Name: "Air", Calories: 0})
	assert.True(t, apperrors.IsValidation(err))

	today, err := h.Meals.ForDate("2024-03-13")
	require.NoError(t, err)
	assert.Len(t, today, 1)

	_, err = h.Meals.Delete(m.ID)
	require.NoError(t, err)
	_, err = h.Meals.Delete(m.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	all, err := h.Meals.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRunningAdd(t *testing.T) {
	h, _, _ := newTestHub(t, day)

	run, err := h.Running.Add(RunInput{Distance: 5, Minutes: 30, Intensity: models.IntensityMedium}, 70)
	require.NoError(t, err)
	assert.Equal(t, "6:00", run.Pace)
	assert.Equal(t, 350, run.Calories)

	_, err = h.Running.Add(RunInput{Distance: 0, Minutes: 30}, 70)
	assert.Error(t, err)

	runs, err := h.Running.ForDate("2024-03-13")
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	_, err = h.Running.Delete(run.ID)
	require.NoError(t, err)
	_, err = h.Running.Delete(run.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJournalSaveEditSearch(t *testing.T) {
	h, _, advance := newTestHub(t, day)

	first, err := h.Journal.Save(JournalInput{Title: "Morning", Content: "Went for a run", Mood: models.MoodHappy, Tags: []string{"Run", " run", "outdoors"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "outdoors"}, first.Tags)

	advance(time.Hour)
	second, err := h.Journal.Save(JournalInput{Title: "Evening", Content: "Read a book", Mood: models.MoodNeutral, Tags: []string{"reading"}})
	require.NoError(t, err)

	all, err := h.Journal.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	advance(time.Hour)
	edited, err := h.Journal.Save(JournalInput{ID: first.ID, Title: "Morning run", Content: "Went for a long run", Mood: models.MoodVeryHappy})
	require.NoError(t, err)
	assert.True(t, edited.CreatedAt.Equal(first.CreatedAt))
	assert.False(t, edited.UpdatedAt.IsZero())

	got, err := h.Journal.Get(first.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(edited, got); diff != "" {
		t.Errorf("stored entry mismatch (-want +got):\n%s", diff)
	}

	res, err := h.Journal.Search("LONG", nil)
	require.NoError(t, err)
	assert.Len(t, res, 1)
	res, err = h.Journal.Search("", []string{"reading", "nothing"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, second.ID, res[0].ID)

	_, err = h.Journal.Save(JournalInput{Title: "x", Content: "y"})
	assert.True(t, apperrors.IsValidation(err))
	_, err = h.Journal.Save(JournalInput{ID: "missing", Title: "x", Content: "y", Mood: models.MoodSad})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, h.Journal.Delete(second.ID))
	assert.ErrorIs(t, h.Journal.Delete(second.ID), apperrors.ErrNotFound)
}

func TestWaterDailyReset(t *testing.T) {
	h, _, advance := newTestHub(t, day)
	require.NoError(t, h.Water.SetGoal(3))
	assert.Error(t, h.Water.SetGoal(0))

	st, reached, err := h.Water.Drink(1)
	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, 1, st.Intake)

	st, reached, err = h.Water.Drink(2)
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, 3, st.Intake)

	_, reached, err = h.Water.Drink(1)
	require.NoError(t, err)
	assert.False(t, reached, "goal already met earlier")

	week, err := h.Water.Weekly()
	require.NoError(t, err)
	assert.Equal(t, 4, week["wed"])
	assert.Len(t, week, 7)

	advance(24 * time.Hour)
	st, err = h.Water.Status()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Intake)
	assert.Equal(t, "2024-03-14", st.Date)

	st, err = h.Water.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Intake)
}

func TestSettingsRoundTrip(t *testing.T) {
	h, mem, _ := newTestHub(t, day)

	prefs, err := h.Settings.Get()
	require.NoError(t, err)
	if diff := cmp.Diff(models.DefaultPreferences(), prefs); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	prefs.Theme = "calm"
	prefs.UserWeight = 68.5
	prefs.RemindersEnabled = true
	require.NoError(t, h.Settings.Save(prefs))

	raw, err := mem.GetItem(constants.KeyUserWeight)
	require.NoError(t, err)
	assert.Equal(t, "68.5", raw)

	got, err := h.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	updated, err := h.Settings.Set(constants.KeyCalorieGoal, "1800")
	require.NoError(t, err)
	assert.Equal(t, 1800, updated.CalorieGoal)

	_, err = h.Settings.Set("bogus", "1")
	assert.Error(t, err)
	prefs.Theme = "neon"
	assert.True(t, apperrors.IsValidation(h.Settings.Save(prefs)))

	require.NoError(t, h.Settings.SaveProfile(models.Profile{Name: "Sam"}))
	p, err := h.Settings.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Name)
}

func TestDecode(t *testing.T) {
	v, err := Decode(constants.KeyMeals, `[{"id":7,"type":"lunch","name":"Soup","calories":200,"time":"12:00","date":"2024-03-13"}]`)
	require.NoError(t, err)
	meals := *v.(*[]models.Meal)
	assert.Equal(t, models.ID("7"), meals[0].ID)

	v, err = Decode(constants.KeyWaterGoal, "8")
	require.NoError(t, err)
	assert.Equal(t, "8", v)

	_, err = Decode(constants.KeyMoodData, "[")
	assert.Error(t, err)
}
