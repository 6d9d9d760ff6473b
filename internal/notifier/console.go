package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var kindColors = map[Kind]lipgloss.Color{
	KindSuccess:  lipgloss.Color("42"),
	KindError:    lipgloss.Color("196"),
	KindInfo:     lipgloss.Color("39"),
	KindWarning:  lipgloss.Color("214"),
	KindReminder: lipgloss.Color("205"),
}

// Style returns the lipgloss style for a toast kind.
func Style(k Kind) lipgloss.Style {
	c, ok := kindColors[k]
	if !ok {
		c = kindColors[KindInfo]
	}
	return lipgloss.NewStyle().Foreground(c).Bold(k == KindError || k == KindReminder)
}

// Render returns the styled single-line form of t.
func Render(t Toast) string {
	return Style(t.Kind).Render(t.Text())
}

// Console prints toasts as styled lines. A bell is written for toasts with
// Sound set.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(_ context.Context, t Toast) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	line := Render(t)
	if t.Sound {
		line += "\a"
	}
	_, err := fmt.Fprintln(c.w, line)
	return err
}
