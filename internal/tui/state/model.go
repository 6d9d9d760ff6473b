package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/tui/components/breathe"
	"github.com/julianstephens/wellhub/internal/tui/components/dashboard"
	"github.com/julianstephens/wellhub/internal/tui/components/journal"
	"github.com/julianstephens/wellhub/internal/tui/components/meals"
	"github.com/julianstephens/wellhub/internal/tui/components/mood"
	"github.com/julianstephens/wellhub/internal/tui/components/sleep"
	"github.com/julianstephens/wellhub/internal/tui/components/water"
	"github.com/julianstephens/wellhub/internal/tui/components/weight"
)

const eventBuffer = 64

// SleepFormModel backs the sleep form
type SleepFormModel struct {
	Date      string
	SleepTime string
	WakeTime  string
	Quality   int
	Notes     string
}

// WeightFormModel backs the weigh-in form
type WeightFormModel struct {
	Date   string
	Weight string
	Unit   models.WeightUnit
	Notes  string
}

// GoalFormModel backs the single-value goal forms
type GoalFormModel struct {
	Value string
}

// MealFormModel backs the meal form
type MealFormModel struct {
	Type     models.MealType
	Name     string
	Calories string
	Time     string
}

// RunFormModel backs the run form
type RunFormModel struct {
	Distance  string
	Minutes   string
	Intensity models.Intensity
}

// MoodFormModel backs the mood form
type MoodFormModel struct {
	Value models.MoodValue
	Notes string
}

// JournalFormModel backs the journal form. An empty ID creates an entry.
type JournalFormModel struct {
	ID      models.ID
	Date    string
	Title   string
	Content string
	Mood    models.MoodValue
	Tags    string
}

// Toast is the message currently shown. ID lets a stale clear be ignored.
type Toast struct {
	ID int
	notifier.Toast
}

// Options configures New.
type Options struct {
	// Notifier also receives every toast, typically the desktop tray.
	Notifier notifier.Notifier
	// Tick is the session countdown period.
	Tick time.Duration
}

// Model represents the shared state for the TUI
type Model struct {
	Hub      *records.Hub
	Notifier notifier.Notifier
	Tick     time.Duration

	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	Prefs         models.Preferences
	Theme         render.Palette

	Dashboard dashboard.Model
	Sleep     sleep.Model
	Weight    weight.Model
	Water     water.Model
	Meals     meals.Model
	Mood      mood.Model
	Journal   journal.Model
	Breathe   breathe.Model

	Form        *huh.Form
	FormTitle   string
	Submit      func() (notifier.Toast, error)
	SleepForm   *SleepFormModel
	WeightForm  *WeightFormModel
	GoalForm    *GoalFormModel
	MealForm    *MealFormModel
	RunForm     *RunFormModel
	MoodForm    *MoodFormModel
	JournalForm *JournalFormModel
	FormError   string

	ConfirmLabel  string
	ConfirmDelete func() (notifier.Toast, error)

	Toast    *Toast
	toastSeq int

	Session       *routines.Session
	StopSession   context.CancelFunc
	SessionSteps  []routines.Step
	SessionPaused bool

	Events   chan tea.Msg
	ctx      context.Context
	cancel   context.CancelFunc
	Width    int
	Height   int
	Quitting bool
}

// New creates the shared model over hub and loads every tab.
func New(hub *records.Hub, opts Options) *Model {
	tick := opts.Tick
	if tick <= 0 {
		tick = constants.DefaultTimerTickPeriod
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		Hub:       hub,
		Notifier:  opts.Notifier,
		Tick:      tick,
		State:     constants.StateDashboard,
		Keys:      DefaultKeyMap(),
		Help:      help.New(),
		Dashboard: dashboard.New(),
		Sleep:     sleep.New(0, 0),
		Weight:    weight.New(0, 0),
		Water:     water.New(),
		Meals:     meals.New(0, 0),
		Mood:      mood.New(),
		Journal:   journal.New(0, 0),
		Breathe:   breathe.New(),
		Events:    make(chan tea.Msg, eventBuffer),
		ctx:       ctx,
		cancel:    cancel,
	}
	m.Refresh()
	return m
}

// Context ends when Close is called.
func (m *Model) Context() context.Context {
	return m.ctx
}

// Post queues msg for the program. It gives up once the model is closed.
func (m *Model) Post(msg tea.Msg) {
	select {
	case m.Events <- msg:
	case <-m.ctx.Done():
	}
}

// Listen waits for the next posted message.
func (m *Model) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.Events:
			return msg
		case <-m.ctx.Done():
			return nil
		}
	}
}

// NextToastID returns a fresh toast identifier.
func (m *Model) NextToastID() int {
	m.toastSeq++
	return m.toastSeq
}

// Close stops any running session and every background goroutine.
func (m *Model) Close() {
	if m.Session != nil {
		m.Session.Stop()
	}
	if m.StopSession != nil {
		m.StopSession()
	}
	m.cancel()
}
