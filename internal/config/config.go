package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/julianstephens/wellhub/internal/constants"
)

// Config is the environment-level configuration. Flags given on the
// command line take precedence over these values.
type Config struct {
	Path         string `env:"WELLHUB_CONFIG" envDefault:"~/.config/wellhub/wellhub.db"`
	Debug        bool   `env:"WELLHUB_DEBUG"`
	DBConnection string `env:"WELLHUB_DB_CONNECTION"`
	TrayDir      string `env:"WELLHUB_TRAY_DIR"`
}

// Source names where the resolved store location came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

// Load reads .env files (missing files are skipped) and then parses the
// environment. Variables already set in the process win over .env values.
func Load(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// DotenvFiles lists the .env locations checked at startup: the working
// directory first, then the default config directory.
func DotenvFiles() []string {
	files := []string{".env"}
	if dir, err := ExpandHome(filepath.Dir(constants.DefaultConfigPath)); err == nil {
		files = append(files, filepath.Join(dir, ".env"))
	}
	return files
}

// Resolve picks the store location. An explicit flag wins, then
// WELLHUB_DB_CONNECTION, then a connection string saved in the keyring,
// then WELLHUB_CONFIG or its default.
func (c Config) Resolve(flag string, keyring func() (string, bool)) (string, Source, error) {
	if flag = strings.TrimSpace(flag); flag != "" {
		p, err := ExpandHome(flag)
		return p, SourceFlag, err
	}
	if c.DBConnection != "" {
		return c.DBConnection, SourceEnv, nil
	}
	if keyring != nil {
		if connStr, ok := keyring(); ok {
			return connStr, SourceKeyring, nil
		}
	}

	source := SourceDefault
	if _, set := os.LookupEnv("WELLHUB_CONFIG"); set {
		source = SourceEnv
	}
	p, err := ExpandHome(c.Path)
	return p, source, err
}

// ConfigDir is the directory logs and tray files live in for a store
// location. Connection strings fall back to the default directory.
func ConfigDir(location string) string {
	if strings.Contains(location, "://") || strings.Contains(location, "=") {
		dir, err := ExpandHome(filepath.Dir(constants.DefaultConfigPath))
		if err != nil {
			return "."
		}
		return dir
	}
	return filepath.Dir(location)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
