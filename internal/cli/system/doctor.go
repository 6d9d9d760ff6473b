package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/wellhub/internal/backup"
	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/keyring"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/validation"
)

type DoctorCmd struct{}

// warning marks a finding that is reported but does not fail doctor.
type warning struct{ msg string }

func (w warning) Error() string { return w.msg }

func warnf(format string, args ...interface{}) error {
	return warning{fmt.Sprintf(format, args...)}
}

type check struct {
	name      string
	needStore bool
	run       func(*cli.Context) error
}

var checks = []check{
	{"Store reachable", false, checkStoreReachable},
	{"Schema version", true, checkSchemaVersion},
	{"Migrations complete", true, checkMigrationsComplete},
	{"Backups present", true, checkBackupsPresent},
	{"Data validation", true, checkValidation},
	{"Clock/timezone", false, checkClockTimezone},
	{"Timezone preference", true, checkTimezonePreference},
	{"OS keyring", false, checkKeyring},
	{"Tray app", false, checkTray},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	reachable := false
	for i, c := range checks {
		if c.needStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		var w warning
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.As(err, &w):
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			failed++
		}
		if i == 0 {
			reachable = err == nil
		}
	}

	ctx.Println()
	if failed > 0 {
		ctx.Printf("Diagnostics completed with %d failure(s).\n", failed)
		return fmt.Errorf("doctor found %d failing check(s)", failed)
	}
	ctx.Println("All critical checks passed.")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if ctx.Store == nil {
		return fmt.Errorf("no store configured")
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.Keys()
	return err
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d); upgrade wellhub", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("%d pending migration(s), run 'wellhub migrate'", latest-current)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	location := ctx.Store.GetConfigPath()
	if storage.IsPostgres(location) {
		return nil
	}
	backups, err := backup.NewManager(location).ListBackups()
	if err != nil {
		return warnf("failed to list backups: %v", err)
	}
	if len(backups) == 0 {
		return warnf("no backups found, run 'wellhub backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	result, err := validation.New().ValidateProvider(ctx.Store)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return fmt.Errorf("%d error(s), run 'wellhub validate' for details", result.Count(validation.SeverityError))
	}
	if result.HasIssues() {
		return warnf("%d warning(s), run 'wellhub validate' for details", result.Count(validation.SeverityWarning))
	}
	return nil
}

func checkClockTimezone(*cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return fmt.Errorf("local timezone is not set")
	}
	return nil
}

func checkTimezonePreference(ctx *cli.Context) error {
	tz := ctx.Preferences().Timezone
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("timezone preference %q is not a known location: %v", tz, err)
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return warnf("OS keyring is not available; PostgreSQL credentials must come from the environment")
	}
	return nil
}

func checkTray(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := notifier.NewTray(ctx.Config.TrayDir).Notify(c, notifier.Info("wellhub doctor: tray connection OK"))
	if errors.Is(err, notifier.ErrTrayNotRunning) {
		return warnf("tray app is not running; toasts are shown in the terminal only")
	}
	if err != nil {
		return warnf("tray app unreachable: %v", err)
	}
	return nil
}
