package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/wellhub/internal/storage"
)

func TestIntegrationBackupRestoreWorkflow(t *testing.T) {
	for _, name := range []string{"wellhub.db", "wellhub.json"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			store, err := storage.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			if err := store.SetItem("waterGoal", "8"); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			mgr := NewManager(path)
			mgr.now = steppingClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))
			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}

			// change the live store after the backup
			store, err = storage.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := store.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if err := store.SetItem("waterGoal", "12"); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := store.SetItem("moodData", "{}"); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			if _, err := mgr.RestoreBackup(backupPath); err != nil {
				t.Fatalf("RestoreBackup failed: %v", err)
			}

			store, err = storage.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := store.Load(); err != nil {
				t.Fatalf("Load after restore failed: %v", err)
			}
			defer store.Close()

			goal, err := store.GetItem("waterGoal")
			if err != nil {
				t.Fatalf("GetItem failed: %v", err)
			}
			if goal != "8" {
				t.Errorf("waterGoal = %q after restore, want 8", goal)
			}
			if _, err := store.GetItem("moodData"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("moodData should be gone after restore, got err %v", err)
			}

			backups, err := mgr.ListBackups()
			if err != nil {
				t.Fatalf("ListBackups failed: %v", err)
			}
			if len(backups) != 2 {
				t.Errorf("expected original and pre-restore backups, got %d", len(backups))
			}
		})
	}
}

func TestBackupWithNoStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when the store does not exist")
	}
}

func TestRestoreWithCorruptedBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	corrupt := filepath.Join(t.TempDir(), "corrupted.db")
	if err := os.WriteFile(corrupt, []byte("this is not a valid sqlite database"), 0600); err != nil {
		t.Fatalf("failed to create corrupt file: %v", err)
	}

	if _, err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("expected error when restoring a corrupted backup")
	}
	if got := countDocuments(t, dbPath); got != 2 {
		t.Errorf("store changed by failed restore: %d documents", got)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := os.Stat(mgr.GetBackupDir()); !os.IsNotExist(err) {
		t.Fatalf("backup dir should not exist yet")
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	info, err := os.Stat(mgr.GetBackupDir())
	if err != nil {
		t.Fatalf("backup dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("backup path is not a directory")
	}
}
