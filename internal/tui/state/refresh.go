package state

import (
	"github.com/julianstephens/wellhub/internal/insights"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/tui/components/dashboard"
)

// Refresh reloads preferences and every tab from the hub. A document that
// fails to load leaves its tab showing the previous data.
func (m *Model) Refresh() {
	prefs, err := m.Hub.Settings.Get()
	if err != nil {
		logger.Warn("Failed to load preferences", "error", err)
		prefs = models.DefaultPreferences()
	}
	m.Prefs = prefs
	m.Theme = render.Theme(prefs.Theme)
	m.Breathe.SetTheme(m.Theme)

	snap, err := insights.NewAnalyzer(m.Hub).Snapshot()
	if err != nil {
		logger.Warn("Failed to load records", "error", err)
		return
	}
	today := m.Hub.Today()

	m.Sleep.SetRecords(m.Theme, snap.Sleep)
	m.Weight.SetData(m.Theme, snap.Weight, prefs.UserHeight)
	m.Meals.SetDay(m.Theme, today, snap.MealsToday, snap.RunsToday, snap.CalorieGoal)

	water, err := m.Hub.Water.Status()
	if err != nil {
		logger.Warn("Failed to load water status", "error", err)
	} else {
		m.Water.SetStatus(m.Theme, water, snap.Weekly)
	}

	moods, err := m.Hub.Mood.All()
	if err != nil {
		logger.Warn("Failed to load moods", "error", err)
	} else {
		m.Mood.SetData(m.Theme, moods, m.Hub.Now())
	}

	entries, err := m.Hub.Journal.All()
	if err != nil {
		logger.Warn("Failed to load journal", "error", err)
	} else {
		m.Journal.SetEntries(m.Theme, entries)
	}

	overview := dashboard.Overview{
		Now:      m.Hub.Now(),
		Data:     snap,
		Water:    water,
		Insights: insights.Analyze(snap),
	}
	if e, ok := moods[today]; ok {
		overview.Mood = &e
	}
	if profile, err := m.Hub.Settings.Profile(); err == nil {
		overview.Name = profile.Name
	}
	m.Dashboard.SetOverview(m.Theme, overview)
}

// SetSize lays out every tab in the space below the tab bar.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	h := max(height-6, 4)
	m.Dashboard.SetSize(width, h)
	m.Sleep.SetSize(width, h)
	m.Weight.SetSize(width, h)
	m.Water.SetSize(width, h)
	m.Meals.SetSize(width, h)
	m.Journal.SetSize(width, h)
	m.Breathe.SetSize(width, h)
	m.Help.Width = width
}
