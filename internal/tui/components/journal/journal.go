package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/render"
)

type AddEntryMsg struct{}

type EditEntryMsg struct {
	Entry models.JournalEntry
}

type DeleteEntryMsg struct {
	ID    models.ID
	Title string
}

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	title := i.Entry.Title
	if i.Entry.Mood != 0 {
		title = i.Entry.Mood.Emoji() + " " + title
	}
	return title
}

func (i Item) Description() string {
	desc := i.Entry.Date
	if len(i.Entry.Tags) > 0 {
		desc += "  #" + strings.Join(i.Entry.Tags, " #")
	}
	return desc
}

// FilterValue lets the list filter search titles, bodies and tags.
func (i Item) FilterValue() string {
	return i.Entry.Title + " " + i.Entry.Content + " " + strings.Join(i.Entry.Tags, " ")
}

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Read   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "new entry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Read: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	theme   render.Palette
	reading bool
	width   int
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Read}
	}
	return Model{list: l, keys: keys, width: width}
}

// SetEntries keeps the stored order, newest first.
func (m *Model) SetEntries(theme render.Palette, entries []models.JournalEntry) {
	m.theme = theme
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
	if len(entries) == 0 {
		m.reading = false
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.list.SetSize(width/2, height)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) selected() (models.JournalEntry, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item.Entry, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if e, ok := m.selected(); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: e} }
			}
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selected(); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: e.ID, Title: e.Title} }
			}
		case key.Matches(msg, m.keys.Read):
			if _, ok := m.selected(); ok {
				m.reading = !m.reading
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			"Your journal is empty.",
			"",
			"Press 'a' to write your first entry.",
		)
	}
	if !m.reading {
		return m.list.View()
	}
	e, _ := m.selected()
	header := m.theme.Heading(e.Title)
	meta := e.Date
	if e.Mood != 0 {
		meta += fmt.Sprintf("  %s %s", e.Mood.Emoji(), e.Mood.Label())
	}
	if len(e.Tags) > 0 {
		meta += "  #" + strings.Join(e.Tags, " #")
	}
	body := lipgloss.NewStyle().Width(max(m.width/2-4, 20)).Render(e.Content)
	entry := lipgloss.JoinVertical(lipgloss.Left, header, m.theme.Faint(meta), "", body)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		lipgloss.NewStyle().PaddingLeft(2).Render(entry),
	)
}
