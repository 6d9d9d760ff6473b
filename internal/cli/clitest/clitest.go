// Package clitest builds command contexts over a throwaway sqlite store.
package clitest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/storage/sqlite"
)

// Now is the fixed clock used by command tests: Wednesday 2024-03-13 21:00 UTC.
var Now = time.Date(2024, 3, 13, 21, 0, 0, 0, time.UTC)

type Env struct {
	Ctx    *cli.Context
	Toasts *notifier.Recorder
	Out    *bytes.Buffer
	Path   string
}

// New initialises a sqlite store in a temp dir and wires a context around it.
func New(t *testing.T) *Env {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	toasts := &notifier.Recorder{}
	out := &bytes.Buffer{}
	hub := records.NewHub(store,
		records.WithClock(func() time.Time { return Now }),
		records.WithLocation(time.UTC),
	)
	return &Env{
		Ctx:    &cli.Context{Store: store, Hub: hub, Notifier: toasts, Out: out},
		Toasts: toasts,
		Out:    out,
		Path:   path,
	}
}

// LastToast fails the test when nothing was sent.
func (e *Env) LastToast(t *testing.T) notifier.Toast {
	t.Helper()
	toast, ok := e.Toasts.Last()
	if !ok {
		t.Fatal("expected a toast")
	}
	return toast
}
