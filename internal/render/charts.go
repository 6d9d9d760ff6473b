package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellhub/internal/stats"
)

const (
	barRune   = "█"
	emptyRune = "░"
	dotRune   = "●"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// BarOptions controls a horizontal bar chart.
type BarOptions struct {
	Width int
	// Max fixes the axis ceiling; 0 scales to the largest value.
	Max float64
	// Target draws values at or above it in the Good colour.
	Target float64
	Format string
}

// BarChart draws one labelled horizontal bar per point.
func (p Palette) BarChart(points []stats.Point, opts BarOptions) string {
	if len(points) == 0 {
		return p.Faint("No data yet")
	}
	if opts.Width <= 0 {
		opts.Width = 30
	}
	if opts.Format == "" {
		opts.Format = "%.0f"
	}
	ceiling := opts.Max
	labelWidth := 0
	for _, pt := range points {
		ceiling = math.Max(ceiling, pt.Value)
		labelWidth = max(labelWidth, lipgloss.Width(pt.Label))
	}

	var b strings.Builder
	for i, pt := range points {
		filled := 0
		if ceiling > 0 {
			filled = int(math.Round(pt.Value / ceiling * float64(opts.Width)))
		}
		color := p.Bar
		if opts.Target > 0 && pt.Value >= opts.Target {
			color = p.Good
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, pt.Label))
		b.WriteString(p.fg(color).Render(strings.Repeat(barRune, filled)))
		b.WriteString(p.fg(p.Empty).Render(strings.Repeat(emptyRune, opts.Width-filled)))
		b.WriteString(" " + fmt.Sprintf(opts.Format, pt.Value))
		if i < len(points)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Sparkline compresses a series into one row of block characters.
func Sparkline(points []stats.Point) string {
	if len(points) == 0 {
		return ""
	}
	lo, hi := points[0].Value, points[0].Value
	for _, pt := range points {
		lo, hi = math.Min(lo, pt.Value), math.Max(hi, pt.Value)
	}
	var b strings.Builder
	for _, pt := range points {
		idx := len(sparkRunes) - 1
		if hi > lo {
			idx = int(math.Round((pt.Value - lo) / (hi - lo) * float64(len(sparkRunes)-1)))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// LineChart plots a series on a height-row grid with a y-axis. Each point
// takes one column, so a window of 7 to 10 points stays narrow.
func (p Palette) LineChart(points []stats.Point, height int) string {
	if len(points) == 0 {
		return p.Faint("No data yet")
	}
	if height < 2 {
		height = 2
	}
	lo, hi := points[0].Value, points[0].Value
	for _, pt := range points {
		lo, hi = math.Min(lo, pt.Value), math.Max(hi, pt.Value)
	}
	if hi == lo {
		hi, lo = hi+1, lo-1
	}

	row := func(v float64) int {
		return height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
	}
	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, len(points))
		for c := range grid[r] {
			grid[r][c] = "  "
		}
	}
	for c, pt := range points {
		grid[row(pt.Value)][c] = p.fg(p.Accent).Render(dotRune) + " "
	}

	axis := fmt.Sprintf("%.1f", hi)
	axisWidth := max(len(axis), len(fmt.Sprintf("%.1f", lo)))
	var b strings.Builder
	for r := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.1f", hi)
		case height - 1:
			label = fmt.Sprintf("%.1f", lo)
		}
		b.WriteString(p.Faint(fmt.Sprintf("%*s │", axisWidth, label)))
		b.WriteString(strings.Join(grid[r], ""))
		b.WriteByte('\n')
	}
	b.WriteString(p.Faint(strings.Repeat(" ", axisWidth) + " └" + strings.Repeat("──", len(points))))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", axisWidth+2) + p.Faint(xLabels(points)))
	return b.String()
}

// xLabels shows the first and last label under the axis.
func xLabels(points []stats.Point) string {
	first := shortLabel(points[0].Label)
	if len(points) == 1 {
		return first
	}
	last := shortLabel(points[len(points)-1].Label)
	gap := len(points)*2 - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	return first + strings.Repeat(" ", gap) + last
}

// shortLabel trims a YYYY-MM-DD date to MM-DD.
func shortLabel(label string) string {
	if len(label) == 10 && label[4] == '-' {
		return label[5:]
	}
	return label
}

// ProgressBar renders a percentage (0..100) with the bubbles progress bar.
func (p Palette) ProgressBar(percent float64, width int) string {
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithSolidFill(string(p.Bar)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(p.Empty)
	ratio := math.Max(0, math.Min(100, percent)) / 100
	return bar.ViewAs(ratio) + fmt.Sprintf(" %3.0f%%", ratio*100)
}
