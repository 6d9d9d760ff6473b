package breathe

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/routines"
)

const (
	minCycles     = 1
	maxCycles     = 20
	defaultCycles = 4
)

type StartMsg struct {
	Pattern routines.Pattern
	Cycles  int
}

type ToggleMsg struct{}

type SkipMsg struct{}

type StopMsg struct{}

// Progress is the state of a running session as reported by its countdown.
type Progress struct {
	Step      int
	Total     int
	Phase     string
	Remaining int
	Paused    bool
	Percent   int
}

type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	More   key.Binding
	Fewer  key.Binding
	Start  key.Binding
	Toggle key.Binding
	Skip   key.Binding
	Stop   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev pattern"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next pattern"),
		),
		More: key.NewBinding(
			key.WithKeys("k", "up", "+"),
			key.WithHelp("↑", "more cycles"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("j", "down", "-"),
			key.WithHelp("↓", "fewer cycles"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip phase"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "stop"),
		),
	}
}

type Model struct {
	keys     KeyMap
	theme    render.Palette
	names    []string
	selected int
	cycles   int
	running  bool
	progress Progress
	bar      progress.Model
	spinner  spinner.Model
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	return Model{
		keys:    DefaultKeyMap(),
		theme:   render.Theme(""),
		names:   routines.BreathingNames(),
		cycles:  defaultCycles,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		spinner: sp,
	}
}

func (m *Model) SetTheme(theme render.Palette) {
	m.theme = theme
}

func (m *Model) SetSize(width, _ int) {
	m.bar.Width = min(max(width-8, 10), 60)
}

// Pattern is the pattern currently selected.
func (m Model) Pattern() routines.Pattern {
	p, _ := routines.Breathing(m.names[m.selected])
	return p
}

func (m Model) Cycles() int { return m.cycles }

func (m Model) Running() bool { return m.running }

// Started switches the view to the session display.
func (m *Model) Started() tea.Cmd {
	m.running = true
	m.progress = Progress{}
	return m.spinner.Tick
}

func (m *Model) SetProgress(p Progress) {
	m.progress = p
}

// Finished returns to pattern selection.
func (m *Model) Finished() {
	m.running = false
	m.progress = Progress{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.running {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, func() tea.Msg { return ToggleMsg{} }
			case key.Matches(msg, m.keys.Skip):
				return m, func() tea.Msg { return SkipMsg{} }
			case key.Matches(msg, m.keys.Stop):
				return m, func() tea.Msg { return StopMsg{} }
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.selected = (m.selected - 1 + len(m.names)) % len(m.names)
		case key.Matches(msg, m.keys.Next):
			m.selected = (m.selected + 1) % len(m.names)
		case key.Matches(msg, m.keys.More):
			m.cycles = min(m.cycles+1, maxCycles)
		case key.Matches(msg, m.keys.Fewer):
			m.cycles = max(m.cycles-1, minCycles)
		case key.Matches(msg, m.keys.Start):
			start := StartMsg{Pattern: m.Pattern(), Cycles: m.cycles}
			return m, func() tea.Msg { return start }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.running {
		return m.sessionView()
	}

	var tabs []string
	for i, name := range m.names {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(m.theme.Muted)
		if i == m.selected {
			style = style.Foreground(m.theme.Accent).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(name))
	}
	p := m.Pattern()
	var phases string
	for _, ph := range p.Phases {
		if ph.Seconds > 0 {
			phases += fmt.Sprintf("  %s %ds\n", ph.Label, ph.Seconds)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Heading("Breathing exercises"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		m.theme.Heading(p.Title),
		phases,
		fmt.Sprintf("Cycles: %d (%s)", m.cycles, formatSeconds(p.Cycle()*m.cycles)),
		"",
		m.theme.Faint("←/→ pattern · ↑/↓ cycles · enter start"),
	)
}

func (m Model) sessionView() string {
	p := m.progress
	phase := p.Phase
	if phase == "" {
		phase = "Get ready"
	}
	status := m.spinner.View()
	if p.Paused {
		status = m.theme.Faint("paused")
	}
	big := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(1, 4).
		Render(fmt.Sprintf("%s\n\n%d", phase, p.Remaining))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Heading(m.Pattern().Title)+" "+status,
		"",
		big,
		"",
		fmt.Sprintf("Step %d/%d", min(p.Step+1, max(p.Total, 1)), p.Total),
		m.bar.ViewAs(float64(p.Percent)/100),
		"",
		m.theme.Faint("space pause · s skip · esc stop"),
	)
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
