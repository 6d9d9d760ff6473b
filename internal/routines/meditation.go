package routines

import (
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
)

// Guide is a meditation type with its breathing cue and default length.
type Guide struct {
	Kind    string
	Title   string
	Seconds int
	Pattern Pattern
}

var guides = map[string]Guide{
	"calm": {
		Kind: "calm", Title: "Calm Mind", Seconds: constants.DefaultMeditationSec,
		Pattern: Pattern{Name: "calm", Phases: []Phase{{"Breathe In", 4}, {"Hold", 2}, {"Breathe Out", 6}}},
	},
	"focus": {
		Kind: "focus", Title: "Deep Focus", Seconds: 600,
		Pattern: Pattern{Name: "focus", Phases: []Phase{{"Inhale", 4}, {"Hold", 4}, {"Exhale", 4}}},
	},
	"sleep": {
		Kind: "sleep", Title: "Sleep Well", Seconds: 900,
		Pattern: Pattern{Name: "sleep", Phases: []Phase{{"Breathe In", 4}, {"Hold", 7}, {"Release", 8}}},
	},
	"stress": {
		Kind: "stress", Title: "Stress Relief", Seconds: constants.DefaultMeditationSec,
		Pattern: Pattern{Name: "stress", Phases: []Phase{{"In", 5}, {"", 0}, {"Out", 5}}},
	},
}

// GuideKinds lists meditation kinds in menu order.
var GuideKinds = []string{"calm", "focus", "sleep", "stress"}

// Meditation returns the guide for kind, falling back to calm.
func Meditation(kind string) Guide {
	if g, ok := guides[strings.ToLower(strings.TrimSpace(kind))]; ok {
		return g
	}
	return guides["calm"]
}

// MeditationSeconds returns the session length: customMinutes when positive,
// otherwise the guide's default.
func MeditationSeconds(g Guide, customMinutes int) int {
	if customMinutes > 0 {
		return customMinutes * 60
	}
	if g.Seconds > 0 {
		return g.Seconds
	}
	return constants.DefaultMeditationSec
}
