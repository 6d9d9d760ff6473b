package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/wellhub/internal/backup"
	"github.com/julianstephens/wellhub/internal/config"
	apperrors "github.com/julianstephens/wellhub/internal/errors"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/render"
	"github.com/julianstephens/wellhub/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Hub      *records.Hub
	Notifier notifier.Notifier
	Config   config.Config

	// Out and In default to stdout and stdin.
	Out io.Writer
	In  io.Reader
}

// Records returns the hub, building it over Store on first use.
func (c *Context) Records() *records.Hub {
	if c.Hub == nil {
		c.Hub = records.NewHub(c.Store)
	}
	return c.Hub
}

func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Reader() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Writer(), args...)
}

// Preferences returns the stored preferences, or the defaults if they
// cannot be read.
func (c *Context) Preferences() models.Preferences {
	prefs, err := c.Records().Settings.Get()
	if err != nil {
		logger.Warn("Failed to read preferences", "error", err)
		return models.DefaultPreferences()
	}
	return prefs
}

// Theme is the palette selected in preferences.
func (c *Context) Theme() render.Palette {
	return render.Theme(c.Preferences().Theme)
}

// Notify sends a toast, carrying the sound preference. Delivery failures
// are logged and never fail the command.
func (c *Context) Notify(t notifier.Toast) {
	n := c.Notifier
	if n == nil {
		n = notifier.NewConsole(c.Writer())
	}
	t = t.WithSound(c.Preferences().SoundsEnabled)
	if err := n.Notify(context.Background(), t); err != nil {
		logger.Warn("Toast delivery failed", "kind", t.Kind, "error", err)
	}
}

// Reject turns a failed save into an error toast and returns err so the
// command exits non-zero. Validation failures are shown as-is; anything
// else is prefixed with action.
func (c *Context) Reject(action string, err error) error {
	if err == nil {
		return nil
	}
	c.Notify(notifier.Error(apperrors.UserMessage(action, err)))
	return fmt.Errorf("%s: %w", action, err)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	location := c.Store.GetConfigPath()
	if storage.DetectBackend(location) == storage.BackendPostgres {
		return
	}
	if _, err := backup.NewManager(location).CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseTags splits a comma separated tag list.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return models.NormalizeTags(strings.Split(s, ","))
}

// ShortDate trims YYYY-MM-DD to MM-DD for chart labels.
func ShortDate(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}

// ShortID is the display form of a record identifier.
func ShortID(id models.ID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// MatchID resolves a full identifier or a unique prefix of one.
func MatchID[T any](items []T, idOf func(T) models.ID, prefix string) (models.ID, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", apperrors.Invalid("id", "cannot be empty")
	}
	var found []models.ID
	for _, it := range items {
		id := idOf(it)
		if id.String() == prefix {
			return id, nil
		}
		if strings.HasPrefix(id.String(), prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("id %q: %w", prefix, apperrors.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return "", apperrors.Invalid("id", "%q matches %d records, use more characters", prefix, len(found))
	}
}
