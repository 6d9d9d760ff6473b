package routines

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
)

// Step is one timed item of a stretch or workout sequence.
type Step struct {
	Name        string
	Description string
	Seconds     int
}

var secondsPattern = regexp.MustCompile(`(\d+)\s*seconds`)

// StretchSeconds reads the hold time from a description such as
// "30 seconds each side", defaulting to 30.
func StretchSeconds(description string) int {
	m := secondsPattern.FindStringSubmatch(description)
	if m == nil {
		return constants.DefaultStretchSecs
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return constants.DefaultStretchSecs
	}
	return n
}

// NewStretch builds a stretch step, deriving its length from the description.
func NewStretch(name, description string) Step {
	return Step{Name: name, Description: description, Seconds: StretchSeconds(description)}
}

// Stretches is the default stretching sequence.
func Stretches() []Step {
	return []Step{
		NewStretch("Neck Roll", "Slowly roll your head in a circle, 20 seconds each direction"),
		NewStretch("Shoulder Stretch", "Pull one arm across your chest, 30 seconds each side"),
		NewStretch("Standing Forward Bend", "Fold forward from the hips and let your head hang, 45 seconds"),
		NewStretch("Quad Stretch", "Hold one foot behind you, 30 seconds each side"),
		NewStretch("Seated Twist", "Rotate your torso gently while seated"),
	}
}

var routines = map[string][]Step{
	"cardio": {
		{"Jumping Jacks", "3 sets x 30 seconds", 30},
		{"High Knees", "3 sets x 45 seconds", 45},
		{"Burpees", "3 sets x 10 reps", 60},
		{"Mountain Climbers", "3 sets x 30 seconds", 30},
		{"Jump Rope", "3 minutes", 180},
	},
	"strength": {
		{"Push-ups", "3 sets x 15 reps", 45},
		{"Squats", "3 sets x 20 reps", 60},
		{"Planks", "3 sets x 30 seconds", 30},
		{"Lunges", "3 sets x 10 each leg", 45},
		{"Dumbbell Rows", "3 sets x 12 reps", 60},
	},
	"yoga": {
		{"Downward Dog", "60 seconds", 60},
		{"Warrior Pose", "45 seconds each side", 45},
		{"Tree Pose", "30 seconds each side", 30},
		{"Child's Pose", "60 seconds", 60},
		{"Cobra Pose", "3 sets x 15 seconds", 45},
	},
	"custom": {
		{"Custom Exercise 1", "As needed", 30},
		{"Custom Exercise 2", "As needed", 45},
		{"Custom Exercise 3", "As needed", 60},
	},
}

// RoutineNames lists workout routines in menu order.
var RoutineNames = []string{"cardio", "strength", "yoga", "custom"}

// Routine returns a copy of the named workout, falling back to cardio.
func Routine(name string) []Step {
	steps, ok := routines[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		steps = routines["cardio"]
	}
	return append([]Step(nil), steps...)
}

// TotalSeconds sums the step lengths.
func TotalSeconds(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.Seconds
	}
	return total
}

// Progress is the whole-number percentage of done out of total.
func Progress(done, total int) int {
	if total <= 0 || done <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
