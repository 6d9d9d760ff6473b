package breathe

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m Model, k tea.KeyMsg) (Model, tea.Msg) {
	m, cmd := m.Update(k)
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func TestSelectionAndStart(t *testing.T) {
	m := New()
	require.Equal(t, "4-4-4-4", m.Pattern().Name)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "4-7-8", m.Pattern().Name)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "deep", m.Pattern().Name, "selection wraps around")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, defaultCycles+1, m.Cycles())
	for range maxCycles {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, minCycles, m.Cycles())

	_, msg := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	start, ok := msg.(StartMsg)
	require.True(t, ok)
	assert.Equal(t, "deep", start.Pattern.Name)
	assert.Equal(t, minCycles, start.Cycles)
}

func TestRunningControls(t *testing.T) {
	m := New()
	m.Started()
	require.True(t, m.Running())

	_, msg := press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, ToggleMsg{}, msg)
	_, msg = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, SkipMsg{}, msg)
	_, msg = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StopMsg{}, msg)

	// selection keys do nothing mid-session
	m, msg = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, msg)
	assert.Equal(t, "4-4-4-4", m.Pattern().Name)

	m.SetProgress(Progress{Step: 1, Total: 4, Phase: "Hold", Remaining: 3, Percent: 25})
	view := m.View()
	assert.Contains(t, view, "Hold")
	assert.Contains(t, view, "Step 2/4")

	m.Finished()
	assert.False(t, m.Running())
	assert.Contains(t, m.View(), "Box Breathing")
}
