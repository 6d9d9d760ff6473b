// Package routines holds the guided breathing, meditation, stretching and
// workout content and runs it as timed sessions.
package routines

import (
	"sort"
	"strings"
)

// Phase is one labelled segment of a breathing cycle.
type Phase struct {
	Label   string
	Seconds int
}

// Pattern is a repeating breathing cycle.
type Pattern struct {
	Name   string
	Title  string
	Phases []Phase
}

// Cycle is the length of one full cycle in seconds.
func (p Pattern) Cycle() int {
	total := 0
	for _, ph := range p.Phases {
		if ph.Seconds > 0 {
			total += ph.Seconds
		}
	}
	return total
}

// PhaseAt returns the phase active after elapsed seconds and the seconds
// left in it. Zero-length phases are never reported.
func (p Pattern) PhaseAt(elapsed int) (label string, remaining int) {
	cycle := p.Cycle()
	if cycle == 0 {
		return "", 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	pos := elapsed % cycle
	for _, ph := range p.Phases {
		if ph.Seconds <= 0 {
			continue
		}
		if pos < ph.Seconds {
			return ph.Label, ph.Seconds - pos
		}
		pos -= ph.Seconds
	}
	return "", 0
}

// Steps unrolls cycles repetitions of the pattern into timed steps, one
// per non-empty phase.
func (p Pattern) Steps(cycles int) []Step {
	var steps []Step
	for c := 0; c < cycles; c++ {
		for _, ph := range p.Phases {
			if ph.Seconds > 0 {
				steps = append(steps, Step{Name: ph.Label, Seconds: ph.Seconds})
			}
		}
	}
	return steps
}

const (
	breatheIn  = "Breathe In"
	breatheOut = "Breathe Out"
	hold       = "Hold"
)

var breathingPatterns = map[string]Pattern{
	"4-4-4-4": {
		Name:  "4-4-4-4",
		Title: "Box Breathing",
		Phases: []Phase{
			{breatheIn, 4}, {hold, 4}, {breatheOut, 4}, {hold, 4},
		},
	},
	"4-7-8": {
		Name:  "4-7-8",
		Title: "4-7-8 Technique",
		Phases: []Phase{
			{breatheIn, 4}, {hold, 7}, {breatheOut, 8}, {hold, 0},
		},
	},
	"deep": {
		Name:  "deep",
		Title: "Deep Breathing",
		Phases: []Phase{
			{breatheIn, 5}, {hold, 2}, {breatheOut, 5}, {hold, 0},
		},
	},
}

// DefaultBreathing is the pattern used when none is chosen.
const DefaultBreathing = "4-4-4-4"

// Breathing looks up a breathing pattern by name.
func Breathing(name string) (Pattern, bool) {
	p, ok := breathingPatterns[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// BreathingNames lists the known pattern names, sorted.
func BreathingNames() []string {
	names := make([]string, 0, len(breathingPatterns))
	for n := range breathingPatterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
