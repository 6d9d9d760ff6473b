package storage

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/julianstephens/wellhub/internal/storage/postgres"
	"github.com/julianstephens/wellhub/internal/storage/sqlite"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSON     Backend = "json"
)

// DetectBackend picks a backend from a config path or connection string.
func DetectBackend(config string) Backend {
	switch {
	case IsPostgres(config):
		return BackendPostgres
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// IsPostgres reports whether config looks like a PostgreSQL URL or DSN.
func IsPostgres(config string) bool {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return true
	}
	for _, f := range strings.Fields(config) {
		if k, _, ok := strings.Cut(f, "="); ok && (strings.EqualFold(k, "host") || strings.EqualFold(k, "dbname")) {
			return true
		}
	}
	return false
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, set := u.User.Password()
		return set
	}
	for _, f := range strings.Fields(connStr) {
		if k, _, ok := strings.Cut(f, "="); ok && strings.EqualFold(k, "password") {
			return true
		}
	}
	return false
}

func NewSQLiteStore(path string) *sqlite.Store {
	return sqlite.NewStore(path)
}

func NewPostgresStore(connStr string) *postgres.Store {
	return postgres.New(connStr)
}

// Open builds the provider for config without touching the backend.
// Callers still run Init or Load.
func Open(config string) (Provider, error) {
	switch DetectBackend(config) {
	case BackendPostgres:
		if _, err := postgres.ValidateConnString(config); err != nil {
			return nil, err
		}
		return NewPostgresStore(config), nil
	case BackendJSON:
		return NewJSONStore(config), nil
	default:
		if strings.TrimSpace(config) == "" {
			return nil, fmt.Errorf("config path cannot be empty")
		}
		return NewSQLiteStore(config), nil
	}
}

// Migrator is implemented by SQL backends with versioned schemas.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
	_ Provider = (*JSONStore)(nil)
	_ Provider = (*MemoryStore)(nil)
	_ Migrator = (*sqlite.Store)(nil)
	_ Migrator = (*postgres.Store)(nil)
)
