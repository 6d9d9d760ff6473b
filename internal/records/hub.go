package records

import (
	"time"

	"github.com/julianstephens/wellhub/internal/storage"
)

// Hub bundles every domain store over one provider.
type Hub struct {
	Provider storage.Provider

	Sleep    *SleepStore
	Weight   *WeightStore
	Mood     *MoodStore
	Meals    *MealStore
	Running  *RunningStore
	Journal  *JournalStore
	Water    *WaterStore
	Settings *SettingsStore
}

// Option customises a Hub.
type Option func(*base)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithLocation sets the zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(b *base) {
		if loc != nil {
			b.loc = loc
		}
	}
}

// NewHub wires all stores to p. The provider must already be loaded.
func NewHub(p storage.Provider, opts ...Option) *Hub {
	b := &base{p: p, now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(b)
	}
	return &Hub{
		Provider: p,
		Sleep:    &SleepStore{b},
		Weight:   &WeightStore{b},
		Mood:     &MoodStore{b},
		Meals:    &MealStore{b},
		Running:  &RunningStore{b},
		Journal:  &JournalStore{b},
		Water:    &WaterStore{b},
		Settings: &SettingsStore{b},
	}
}

// Today is the current date in the hub's zone.
func (h *Hub) Today() string {
	return h.Sleep.today()
}

// Now is the current time in the hub's zone.
func (h *Hub) Now() time.Time {
	return h.Sleep.clock()
}
