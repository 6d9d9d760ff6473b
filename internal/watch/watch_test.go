package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitChange(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherReportsWritesAndRenames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wellhub.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0600))
	waitChange(t, w)

	tmp := filepath.Join(dir, "wellhub.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"theme":"calm"}`), 0600))
	require.NoError(t, os.Rename(tmp, path))
	waitChange(t, w)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wellhub.json")

	w, err := New(path, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0600))
	select {
	case <-w.Changes():
		t.Fatal("unexpected change for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w, err := New(filepath.Join(t.TempDir(), "wellhub.json"), 0)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	cancel()
	<-w.doneCh
	w.Stop()
}
