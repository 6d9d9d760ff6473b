package tui

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellhub/internal/cli/clitest"
	cliwater "github.com/julianstephens/wellhub/internal/cli/water"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/tui/components/breathe"
	"github.com/julianstephens/wellhub/internal/tui/components/journal"
	"github.com/julianstephens/wellhub/internal/tui/components/meals"
	"github.com/julianstephens/wellhub/internal/tui/components/mood"
	"github.com/julianstephens/wellhub/internal/tui/components/sleep"
	"github.com/julianstephens/wellhub/internal/tui/components/water"
	"github.com/julianstephens/wellhub/internal/tui/handlers"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

func newTestModel(t *testing.T, opts Options) (Model, *records.Hub) {
	t.Helper()
	env := clitest.New(t)
	hub := env.Ctx.Records()
	m := NewModel(hub, opts)
	t.Cleanup(m.Close)
	return m, hub
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drainSession feeds session events back into the model until it reports
// the session is done.
func drainSession(t *testing.T, m Model) Model {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-m.Events:
			m = send(t, m, msg)
			if _, done := msg.(state.SessionDoneMsg); done {
				return m
			}
		case <-deadline:
			t.Fatal("session did not finish")
		}
	}
}

func TestNewModelStartsOnDashboard(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, constants.StateDashboard, m.State)
	view := m.View()
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Good evening")
	assert.Contains(t, view, "No sleep logged")
}

func TestTabCycling(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateSleep, m.State)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, constants.StateBreathe, m.State)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateDashboard, m.State)
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, cmd := m.Update(keyRune('q'))
	assert.True(t, next.(Model).Quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestDrinkWaterShowsToast(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	m.State = constants.StateWater

	m = send(t, m, water.DrinkMsg{})

	st, err := hub.Water.Status()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Intake)
	require.NotNil(t, m.Toast)
	assert.Equal(t, fmt.Sprintf("Water: 1/%d cups", constants.DefaultWaterGoal), m.Toast.Message)
	assert.Contains(t, m.View(), m.Toast.Message)
}

func TestDrinkToGoalCongratulates(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	require.NoError(t, hub.Water.SetGoal(1))

	m = send(t, m, water.DrinkMsg{})
	require.NotNil(t, m.Toast)
	assert.Equal(t, cliwater.GoalReachedMessage, m.Toast.Message)
	assert.Equal(t, notifier.KindSuccess, m.Toast.Kind)

	m = send(t, m, water.UndoMsg{})
	st, err := hub.Water.Status()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Intake)
}

func TestClearToastIgnoresStaleID(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(t, m, state.ToastMsg{Toast: notifier.Info("hello")})
	require.NotNil(t, m.Toast)
	id := m.Toast.ID

	m = send(t, m, state.ClearToastMsg{ID: id + 1})
	require.NotNil(t, m.Toast)

	m = send(t, m, state.ClearToastMsg{ID: id})
	assert.Nil(t, m.Toast)
}

func TestToastForwardedToNotifier(t *testing.T) {
	rec := &notifier.Recorder{}
	m, _ := newTestModel(t, Options{Notifier: rec})

	cmd := handlers.ShowToast(m.Model, notifier.Warning("heads up"))
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	// the second command forwards; the first is the clear timer
	require.Len(t, batch, 2)
	batch[1]()

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "heads up", last.Message)
}

func TestSleepFormRejectsThenSaves(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	m.State = constants.StateSleep

	m = send(t, m, sleep.AddSleepMsg{})
	require.Equal(t, constants.StateForm, m.State)
	require.NotNil(t, m.SleepForm)
	assert.Equal(t, hub.Today(), m.SleepForm.Date)

	m.SleepForm.WakeTime = "25:99"
	toast, err := m.Submit()
	require.Error(t, err)
	assert.Equal(t, notifier.KindError, toast.Kind)

	m.SleepForm.SleepTime = "22:30"
	m.SleepForm.WakeTime = "06:30"
	m.SleepForm.Quality = 4
	toast, err = m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Sleep logged: 8.0 hours on 2024-03-13", toast.Message)

	recs, err := hub.Sleep.Records()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].Quality)
}

func TestEscClosesForm(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.State = constants.StateMeals

	m = send(t, m, meals.AddMealMsg{})
	require.Equal(t, constants.StateForm, m.State)
	assert.Contains(t, m.View(), "Add meal")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, constants.StateMeals, m.State)
	assert.Nil(t, m.Form)
}

func TestDeleteMealAfterConfirmation(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	meal, err := hub.Meals.Add(records.MealInput{Type: models.MealBreakfast, Name: "Oats", Calories: 350})
	require.NoError(t, err)
	m.Refresh()
	m.State = constants.StateMeals

	m = send(t, m, meals.DeleteMealMsg{ID: meal.ID, Label: meal.Name})
	require.Equal(t, constants.StateConfirmDelete, m.State)
	assert.Contains(t, m.View(), "Delete meal Oats?")

	m = send(t, m, keyRune('y'))
	assert.Equal(t, constants.StateMeals, m.State)
	require.NotNil(t, m.Toast)
	assert.Equal(t, "Deleted breakfast: Oats", m.Toast.Message)

	left, err := hub.Meals.ForDate(hub.Today())
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestDeleteCancelledKeepsRecord(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	entry, err := hub.Journal.Save(records.JournalInput{Title: "Day one", Content: "Started", Mood: models.MoodNeutral})
	require.NoError(t, err)
	m.State = constants.StateJournal

	m = send(t, m, journal.DeleteEntryMsg{ID: entry.ID, Title: entry.Title})
	m = send(t, m, keyRune('n'))
	assert.Equal(t, constants.StateJournal, m.State)

	all, err := hub.Journal.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestJournalEditUpdatesEntry(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	entry, err := hub.Journal.Save(records.JournalInput{Title: "Draft", Content: "First pass", Mood: models.MoodHappy, Tags: []string{"work"}})
	require.NoError(t, err)

	m = send(t, m, journal.EditEntryMsg{Entry: entry})
	require.NotNil(t, m.JournalForm)
	assert.Equal(t, "work", m.JournalForm.Tags)

	m.JournalForm.Title = "Final"
	m.JournalForm.Tags = "work, Focus"
	toast, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Journal entry updated: Final", toast.Message)

	got, err := hub.Journal.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "First pass", got.Content)
	assert.ElementsMatch(t, []string{"work", "focus"}, got.Tags)
	assert.Equal(t, models.MoodHappy, got.Mood, "editing keeps the mood")
}

func TestQuickMood(t *testing.T) {
	m, hub := newTestModel(t, Options{})
	m.State = constants.StateMood

	m = send(t, m, mood.SetMoodMsg{Value: models.MoodHappy})

	entry, ok, err := hub.Mood.Get(hub.Today())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.MoodHappy, entry.Value)
	assert.Contains(t, m.View(), "Today: 😊 Happy")
}

func TestBreathingSessionCompletes(t *testing.T) {
	m, _ := newTestModel(t, Options{Tick: time.Millisecond})
	m.State = constants.StateBreathe
	p, ok := routines.Breathing("4-4-4-4")
	require.True(t, ok)

	m = send(t, m, breathe.StartMsg{Pattern: p, Cycles: 1})
	require.NotNil(t, m.Session)
	assert.True(t, m.Breathe.Running())

	m = drainSession(t, m)
	assert.Nil(t, m.Session)
	assert.False(t, m.Breathe.Running())
	require.NotNil(t, m.Toast)
	assert.Equal(t, notifier.KindSuccess, m.Toast.Kind)
}

func TestBreathingSessionStop(t *testing.T) {
	m, _ := newTestModel(t, Options{Tick: time.Hour})
	m.State = constants.StateBreathe
	p, ok := routines.Breathing("4-4-4-4")
	require.True(t, ok)

	m = send(t, m, breathe.StartMsg{Pattern: p, Cycles: 1})

	// global keys are captured while the session runs
	m = send(t, m, keyRune('q'))
	assert.False(t, m.Quitting)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateBreathe, m.State)

	m = send(t, m, breathe.StopMsg{})
	m = drainSession(t, m)
	require.NotNil(t, m.Toast)
	assert.Equal(t, "Session stopped after 0/4 steps (0%).", m.Toast.Message)
}

func TestDataChangedReloadsJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellhub.json")
	store := storage.NewJSONStore(path)
	require.NoError(t, store.Init())
	m := NewModel(records.NewHub(store), Options{})
	t.Cleanup(m.Close)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.State = constants.StateJournal

	other := storage.NewJSONStore(path)
	require.NoError(t, other.Load())
	_, err := records.NewHub(other).Journal.Save(records.JournalInput{Title: "From elsewhere", Content: "hi", Mood: models.MoodHappy})
	require.NoError(t, err)

	assert.NotContains(t, m.View(), "From elsewhere")
	m = send(t, m, state.DataChangedMsg{})
	assert.Contains(t, m.View(), "From elsewhere")
}
