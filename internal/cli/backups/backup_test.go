package backups

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/backup"
	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/constants"
)

func TestBackupCreateAndList(t *testing.T) {
	env := clitest.New(t)

	if err := (&BackupListCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "No backups found.") {
		t.Errorf("expected empty listing, got:\n%s", env.Out.String())
	}

	env.Out.Reset()
	if err := (&BackupCreateCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "✓ Backup created: "+constants.BackupFilePrefix) {
		t.Errorf("unexpected create output:\n%s", env.Out.String())
	}

	env.Out.Reset()
	if err := (&BackupListCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "1 total") {
		t.Errorf("expected one backup, got:\n%s", env.Out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	env := clitest.New(t)
	store := env.Ctx.Store

	if err := store.SetItem(constants.KeyCalorieGoal, "1500"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	path, err := backup.NewManager(env.Path).CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if err := store.SetItem(constants.KeyCalorieGoal, "2500"); err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(path), Yes: true}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got, err := store.GetItem(constants.KeyCalorieGoal)
	if err != nil || got != "1500" {
		t.Errorf("expected restored value 1500, got %q (%v)", got, err)
	}
	if !strings.Contains(env.Out.String(), "Previous data saved as") {
		t.Errorf("expected pre-restore notice, got:\n%s", env.Out.String())
	}
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	env := clitest.New(t)
	path, err := backup.NewManager(env.Path).CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	env.Ctx.In = strings.NewReader("n\n")

	if err := (&BackupRestoreCmd{BackupFile: path}).Run(env.Ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "Restore cancelled.") {
		t.Errorf("expected cancellation, got:\n%s", env.Out.String())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to read backup dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("cancelled restore should not create a pre-restore backup, found %d files", len(entries))
	}
}

func TestBackupRestoreCmd_Missing(t *testing.T) {
	env := clitest.New(t)

	if err := (&BackupRestoreCmd{BackupFile: "wellhub-19990101-0000.db", Yes: true}).Run(env.Ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
