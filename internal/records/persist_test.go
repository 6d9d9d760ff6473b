package records

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/storage/sqlite"
)

func TestRecordsSurviveReopen(t *testing.T) {
	backends := []struct {
		name string
		open func(path string) storage.Provider
		file string
	}{
		{"sqlite", func(p string) storage.Provider { return sqlite.NewStore(p) }, "wellhub.db"},
		{"json", func(p string) storage.Provider { return storage.NewJSONStore(p) }, "wellhub.json"},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), b.file)
			clock, _ := fixedClock(day)

			store := b.open(path)
			require.NoError(t, store.Init())
			h := NewHub(store, WithClock(clock), WithLocation(time.UTC))

			sleep, err := h.Sleep.Add(SleepInput{SleepTime: "23:15", WakeTime: "06:45", Quality: 4, Notes: "rain"})
			require.NoError(t, err)
			meal, err := h.Meals.Add(MealInput{Type: models.MealLunch, Name: "Soup", Calories: 420, Time: "12:30"})
			require.NoError(t, err)
			require.NoError(t, store.Close())

			reopened := b.open(path)
			require.NoError(t, reopened.Load())
			t.Cleanup(func() { reopened.Close() })
			h = NewHub(reopened, WithClock(clock), WithLocation(time.UTC))

			nights, err := h.Sleep.Records()
			require.NoError(t, err)
			require.Len(t, nights, 1)
			if diff := cmp.Diff(sleep, nights[0]); diff != "" {
				t.Errorf("sleep record changed after reopen (-saved +loaded):\n%s", diff)
			}

			meals, err := h.Meals.ForDate(h.Today())
			require.NoError(t, err)
			require.Len(t, meals, 1)
			if diff := cmp.Diff(meal, meals[0]); diff != "" {
				t.Errorf("meal changed after reopen (-saved +loaded):\n%s", diff)
			}
		})
	}
}
