package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellhub/internal/cli"
	cliwater "github.com/julianstephens/wellhub/internal/cli/water"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/tui/components/journal"
	"github.com/julianstephens/wellhub/internal/tui/components/meals"
	"github.com/julianstephens/wellhub/internal/tui/components/mood"
	"github.com/julianstephens/wellhub/internal/tui/components/sleep"
	"github.com/julianstephens/wellhub/internal/tui/components/water"
	"github.com/julianstephens/wellhub/internal/tui/components/weight"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// openForm switches to the form state; submit runs when the form completes.
func openForm(m *state.Model, title string, form *huh.Form, submit func() (notifier.Toast, error)) tea.Cmd {
	m.PreviousState = m.State
	m.State = constants.StateForm
	m.FormTitle = title
	m.FormError = ""
	m.Form = form
	m.Submit = submit
	return m.Form.Init()
}

func closeForm(m *state.Model) {
	m.State = m.PreviousState
	m.Form = nil
	m.Submit = nil
	m.FormError = ""
}

// HandleFormState drives the open form. A rejected submit shows an error
// toast and keeps the form open to allow retry.
func HandleFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		closeForm(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		toast, err := m.Submit()
		if err != nil {
			m.FormError = toast.Message
			m.Form.State = huh.StateNormal
			cmds = append(cmds, ShowToast(m, toast))
			break
		}
		closeForm(m)
		m.Refresh()
		cmds = append(cmds, ShowToast(m, toast))
	case huh.StateAborted:
		closeForm(m)
	}
	return tea.Batch(cmds...)
}

// reject pairs an error toast with err so HandleFormState keeps the form.
func reject(action string, err error) (notifier.Toast, error) {
	return errorToast(action, err), err
}

// HandleRecordMessages opens forms and applies one-key actions emitted by
// the tab components.
func HandleRecordMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	hub := m.Hub
	switch msg := msg.(type) {
	case sleep.AddSleepMsg:
		m.SleepForm = &state.SleepFormModel{Date: hub.Today(), SleepTime: "23:00", WakeTime: "07:00", Quality: 3}
		fm := m.SleepForm
		return true, openForm(m, "Log sleep", NewSleepForm(fm), func() (notifier.Toast, error) {
			rec, err := hub.Sleep.Add(records.SleepInput{
				Date: fm.Date, SleepTime: fm.SleepTime, WakeTime: fm.WakeTime,
				Quality: fm.Quality, Notes: fm.Notes,
			})
			if err != nil {
				return reject("failed to save sleep", err)
			}
			return notifier.Success(fmt.Sprintf("Sleep logged: %.1f hours on %s", rec.Duration, rec.Date)), nil
		})

	case weight.AddWeightMsg:
		m.WeightForm = &state.WeightFormModel{Date: hub.Today(), Unit: models.UnitKg}
		fm := m.WeightForm
		return true, openForm(m, "Log weight", NewWeightForm(fm), func() (notifier.Toast, error) {
			rec, err := hub.Weight.Add(records.WeightInput{
				Date: fm.Date, Weight: parseFloat(fm.Weight), Unit: fm.Unit, Notes: fm.Notes,
			})
			if err != nil {
				return reject("failed to save weight", err)
			}
			return notifier.Success(fmt.Sprintf("Weight logged: %.1f %s on %s", rec.Weight, rec.Unit, rec.Date)), nil
		})

	case weight.SetGoalMsg:
		m.GoalForm = &state.GoalFormModel{}
		if msg.Current > 0 {
			m.GoalForm.Value = strconv.FormatFloat(msg.Current, 'f', -1, 64)
		}
		fm := m.GoalForm
		return true, openForm(m, "Weight goal", NewGoalForm(fm, "Goal weight", false), func() (notifier.Toast, error) {
			goal := parseFloat(fm.Value)
			if err := hub.Weight.SetGoal(goal); err != nil {
				return reject("failed to set weight goal", err)
			}
			return notifier.Success(fmt.Sprintf("Weight goal set to %.1f", goal)), nil
		})

	case water.DrinkMsg:
		st, reached, err := hub.Water.Drink(1)
		if err != nil {
			return true, ShowToast(m, errorToast("failed to log water", err))
		}
		m.Refresh()
		if reached {
			return true, ShowToast(m, notifier.Success(cliwater.GoalReachedMessage))
		}
		return true, ShowToast(m, notifier.Info(fmt.Sprintf("Water: %d/%d cups", st.Intake, st.Goal)))

	case water.UndoMsg:
		st, err := hub.Water.Undo()
		if err != nil {
			return true, ShowToast(m, errorToast("failed to undo water", err))
		}
		m.Refresh()
		return true, ShowToast(m, notifier.Info(fmt.Sprintf("Water: %d/%d cups", st.Intake, st.Goal)))

	case water.SetGoalMsg:
		m.GoalForm = &state.GoalFormModel{Value: strconv.Itoa(msg.Current)}
		fm := m.GoalForm
		return true, openForm(m, "Water goal", NewGoalForm(fm, "Cups per day", true), func() (notifier.Toast, error) {
			cups := parseInt(fm.Value)
			if err := hub.Water.SetGoal(cups); err != nil {
				return reject("failed to set water goal", err)
			}
			return notifier.Success(fmt.Sprintf("Water goal set to %d cups", cups)), nil
		})

	case meals.AddMealMsg:
		m.MealForm = &state.MealFormModel{Type: models.MealBreakfast, Time: hub.Now().Format(constants.TimeFormat)}
		fm := m.MealForm
		return true, openForm(m, "Add meal", NewMealForm(fm), func() (notifier.Toast, error) {
			meal, err := hub.Meals.Add(records.MealInput{
				Type: fm.Type, Name: fm.Name, Calories: parseInt(fm.Calories), Time: fm.Time,
			})
			if err != nil {
				return reject("failed to save meal", err)
			}
			return notifier.Success(fmt.Sprintf("%s added: %s (%d kcal)", meal.Type.Title(), meal.Name, meal.Calories)), nil
		})

	case meals.AddRunMsg:
		m.RunForm = &state.RunFormModel{Intensity: models.IntensityMedium}
		fm := m.RunForm
		weightKg := m.Prefs.WeightKg()
		return true, openForm(m, "Log run", NewRunForm(fm), func() (notifier.Toast, error) {
			run, err := hub.Running.Add(records.RunInput{
				Distance: parseFloat(fm.Distance), Minutes: parseInt(fm.Minutes), Intensity: fm.Intensity,
			}, weightKg)
			if err != nil {
				return reject("failed to save run", err)
			}
			return notifier.Success(fmt.Sprintf("Run logged: %.2f km at %s/km, %d kcal burned", run.Distance, run.Pace, run.Calories)), nil
		})

	case meals.DeleteMealMsg:
		id := msg.ID
		return true, confirmDelete(m, "meal "+msg.Label, func() (notifier.Toast, error) {
			meal, err := hub.Meals.Delete(id)
			if err != nil {
				return reject("failed to delete meal", err)
			}
			return notifier.Info(fmt.Sprintf("Deleted %s: %s", strings.ToLower(meal.Type.Title()), meal.Name)), nil
		})

	case meals.DeleteRunMsg:
		id := msg.ID
		return true, confirmDelete(m, msg.Label, func() (notifier.Toast, error) {
			run, err := hub.Running.Delete(id)
			if err != nil {
				return reject("failed to delete run", err)
			}
			return notifier.Info(fmt.Sprintf("Deleted %.2f km run on %s", run.Distance, run.Date)), nil
		})

	case mood.SetMoodMsg:
		entry, err := hub.Mood.Set("", msg.Value, "")
		if err != nil {
			return true, ShowToast(m, errorToast("failed to save mood", err))
		}
		m.Refresh()
		return true, ShowToast(m, notifier.Success(fmt.Sprintf("Mood saved: %s %s", entry.Emoji, msg.Value.Label())))

	case mood.MoodFormMsg:
		value := msg.Current
		if value == 0 {
			value = models.MoodNeutral
		}
		m.MoodForm = &state.MoodFormModel{Value: value, Notes: msg.Notes}
		fm := m.MoodForm
		return true, openForm(m, "Today's mood", NewMoodForm(fm), func() (notifier.Toast, error) {
			entry, err := hub.Mood.Set("", fm.Value, fm.Notes)
			if err != nil {
				return reject("failed to save mood", err)
			}
			return notifier.Success(fmt.Sprintf("Mood saved: %s %s", entry.Emoji, fm.Value.Label())), nil
		})

	case journal.AddEntryMsg:
		m.JournalForm = &state.JournalFormModel{Date: hub.Today()}
		return true, openJournalForm(m, "New journal entry")

	case journal.EditEntryMsg:
		e := msg.Entry
		m.JournalForm = &state.JournalFormModel{
			ID: e.ID, Date: e.Date, Title: e.Title, Content: e.Content,
			Mood: e.Mood, Tags: strings.Join(e.Tags, ", "),
		}
		return true, openJournalForm(m, "Edit journal entry")

	case journal.DeleteEntryMsg:
		id, title := msg.ID, msg.Title
		return true, confirmDelete(m, "journal entry "+title, func() (notifier.Toast, error) {
			if err := hub.Journal.Delete(id); err != nil {
				return reject("failed to delete journal entry", err)
			}
			return notifier.Info("Deleted journal entry: " + title), nil
		})
	}
	return false, nil
}

func openJournalForm(m *state.Model, title string) tea.Cmd {
	hub := m.Hub
	fm := m.JournalForm
	return openForm(m, title, NewJournalForm(fm), func() (notifier.Toast, error) {
		entry, err := hub.Journal.Save(records.JournalInput{
			ID: fm.ID, Date: fm.Date, Title: fm.Title, Content: fm.Content,
			Mood: fm.Mood, Tags: cli.ParseTags(fm.Tags),
		})
		if err != nil {
			return reject("failed to save journal entry", err)
		}
		if fm.ID != "" {
			return notifier.Success("Journal entry updated: " + entry.Title), nil
		}
		return notifier.Success("Journal entry saved: " + entry.Title), nil
	})
}
