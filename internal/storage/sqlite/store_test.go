package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/wellhub/internal/errors"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTableExists(t *testing.T) {
	t.Run("documents table created by migrations", func(t *testing.T) {
		store := setupTestStore(t)

		exists, err := store.tableExists("documents")
		if err != nil {
			t.Fatalf("tableExists() returned unexpected error: %v", err)
		}
		if !exists {
			t.Error("tableExists() = false, want true for documents")
		}

		exists, err = store.tableExists("DOCUMENTS")
		if err != nil || !exists {
			t.Errorf("tableExists() should be case-insensitive, got %v, %v", exists, err)
		}
	})

	t.Run("table does not exist", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "bare.db"))
		db, err := sql.Open("sqlite", store.path)
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		store.db = db
		defer store.Close()

		exists, err := store.tableExists("nonexistent_table")
		if err != nil {
			t.Errorf("tableExists() returned unexpected error: %v", err)
		}
		if exists {
			t.Error("tableExists() = true, want false for nonexistent table")
		}
	})
}

func TestDocuments(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetItem("sleepData"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetItem() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.SetItem("sleepData", `{"records":[]}`); err != nil {
		t.Fatalf("SetItem() error: %v", err)
	}
	if err := store.SetItem("sleepData", `{"records":[{"date":"2024-03-01"}]}`); err != nil {
		t.Fatalf("SetItem() overwrite error: %v", err)
	}
	if err := store.SetItem("theme", "calm"); err != nil {
		t.Fatalf("SetItem() error: %v", err)
	}

	got, err := store.GetItem("sleepData")
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if got != `{"records":[{"date":"2024-03-01"}]}` {
		t.Errorf("GetItem() = %q, want overwritten value", got)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "sleepData" || keys[1] != "theme" {
		t.Errorf("Keys() = %v, want [sleepData theme]", keys)
	}

	if _, err := store.UpdatedAt("theme"); err != nil {
		t.Errorf("UpdatedAt() error: %v", err)
	}

	if err := store.RemoveItem("theme"); err != nil {
		t.Fatalf("RemoveItem() error: %v", err)
	}
	if _, err := store.GetItem("theme"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetItem() after remove error = %v, want ErrNotFound", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellhub.db")

	if err := NewStore(path).Load(); err == nil {
		t.Fatal("Load() on missing database should fail")
	}

	empty := filepath.Join(t.TempDir(), "empty.db")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewStore(empty).Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Load() on empty file error = %v, want not initialized", err)
	}

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := store.SetItem("waterGoal", "10"); err != nil {
		t.Fatalf("SetItem() error: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetItem("waterGoal")
	if err != nil || got != "10" {
		t.Errorf("GetItem() after reload = %q, %v", got, err)
	}

	current, latest, err := reopened.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error: %v", err)
	}
	if current != latest || current == 0 {
		t.Errorf("SchemaVersion() = %d/%d, want fully migrated", current, latest)
	}
}

func TestNotLoaded(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "x.db"))
	if _, err := store.GetItem("k"); err == nil {
		t.Error("GetItem() before Init should fail")
	}
	if err := store.SetItem("k", "v"); err == nil {
		t.Error("SetItem() before Init should fail")
	}
}
