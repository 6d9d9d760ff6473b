package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing store before initialization."`
	Source string `help:"Store path or connection string to copy documents from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	location := ctx.Store.GetConfigPath()

	if c.Force {
		if storage.IsPostgres(location) {
			return fmt.Errorf("--force is not supported for PostgreSQL stores")
		}
		if c.Source != "" && samePath(c.Source, location) {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", location)
		}
		if _, err := os.Stat(location); err == nil {
			// close first so sqlite releases its file handle
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(location); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.Printf("Deleted existing store at: %s\n", location)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized wellhub storage at: %s\n", location)

	if c.Source != "" {
		ctx.Printf("Copying documents from: %s\n", c.Source)
		n, err := copyDocuments(ctx.Store, c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Printf("Copied %d document(s).\n", n)
	}
	return nil
}

// copyDocuments copies every key from the store at source into dst,
// overwriting keys dst already holds.
func copyDocuments(dst storage.Provider, source string) (int, error) {
	if storage.IsPostgres(source) && storage.HasEmbeddedCredentials(source) {
		return 0, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
	}
	src, err := storage.Open(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer src.Close()

	docs, err := storage.Snapshot(src)
	if err != nil {
		return 0, fmt.Errorf("failed to read source store: %w", err)
	}
	for key, value := range docs {
		if err := dst.SetItem(key, value); err != nil {
			return 0, fmt.Errorf("failed to copy %s: %w", key, err)
		}
	}
	return len(docs), nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
