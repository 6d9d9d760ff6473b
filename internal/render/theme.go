package render

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours a theme paints charts and status text with.
type Palette struct {
	Accent  lipgloss.Color
	Good    lipgloss.Color
	Bad     lipgloss.Color
	Warn    lipgloss.Color
	Muted   lipgloss.Color
	Bar     lipgloss.Color
	Empty   lipgloss.Color
	Title   lipgloss.Color
}

var palettes = map[string]Palette{
	"default": {
		Accent: "205", Good: "42", Bad: "196", Warn: "214",
		Muted: "240", Bar: "39", Empty: "237", Title: "255",
	},
	"dark": {
		Accent: "99", Good: "35", Bad: "160", Warn: "178",
		Muted: "238", Bar: "62", Empty: "235", Title: "252",
	},
	"calm": {
		Accent: "73", Good: "108", Bad: "174", Warn: "180",
		Muted: "245", Bar: "110", Empty: "254", Title: "24",
	},
	"energetic": {
		Accent: "208", Good: "118", Bad: "197", Warn: "226",
		Muted: "244", Bar: "202", Empty: "237", Title: "231",
	},
}

// Theme returns the palette for name, falling back to "default".
func Theme(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["default"]
}

func (p Palette) fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Heading renders a bold section title.
func (p Palette) Heading(s string) string {
	return p.fg(p.Title).Bold(true).Render(s)
}

// Faint renders secondary text.
func (p Palette) Faint(s string) string {
	return p.fg(p.Muted).Render(s)
}
