package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/wellhub/internal/backup"
	"github.com/julianstephens/wellhub/internal/cli/clitest"
	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/storage/sqlite"
)

func TestDoctorCmd_HealthyDB(t *testing.T) {
	env := clitest.New(t)

	if err := (&DoctorCmd{}).Run(env.Ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v\n%s", err, env.Out.String())
	}
	out := env.Out.String()
	if !strings.Contains(out, "✓ Store reachable: OK") {
		t.Errorf("expected reachable store, got:\n%s", out)
	}
	// no backup yet is a warning only
	if !strings.Contains(out, "⚠ Backups present: WARNING") {
		t.Errorf("expected backups warning, got:\n%s", out)
	}
}

func TestDoctorCmd_WithBackup(t *testing.T) {
	env := clitest.New(t)
	if _, err := backup.NewManager(env.Path).CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	if err := (&DoctorCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "✓ Backups present: OK") {
		t.Errorf("expected backups OK, got:\n%s", env.Out.String())
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	env := clitest.New(t)

	db := env.Ctx.Store.(*sqlite.Store).GetDB()
	if db == nil {
		t.Fatal("database connection is nil")
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatalf("failed to corrupt schema version: %v", err)
	}

	if err := (&DoctorCmd{}).Run(env.Ctx); err == nil {
		t.Error("expected doctor to fail with future schema version")
	}
	if !strings.Contains(env.Out.String(), "❌ Schema version: FAIL") {
		t.Errorf("expected schema failure, got:\n%s", env.Out.String())
	}
}

func TestDoctorCmd_InvalidData(t *testing.T) {
	env := clitest.New(t)
	if err := env.Ctx.Store.SetItem(constants.KeySleepData, "{not json"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	if err := (&DoctorCmd{}).Run(env.Ctx); err == nil {
		t.Error("expected doctor to fail on malformed document")
	}
	if !strings.Contains(env.Out.String(), "❌ Data validation: FAIL") {
		t.Errorf("expected validation failure, got:\n%s", env.Out.String())
	}
}

func TestDoctorCmd_UnreachableStore(t *testing.T) {
	env := clitest.New(t)
	env.Ctx.Store = sqlite.NewStore(t.TempDir() + "/missing/none.db")

	if err := (&DoctorCmd{}).Run(env.Ctx); err == nil {
		t.Error("expected doctor to fail when store is missing")
	}
	out := env.Out.String()
	if !strings.Contains(out, "⊘ Schema version: SKIPPED") {
		t.Errorf("expected dependent checks to be skipped, got:\n%s", out)
	}
}
