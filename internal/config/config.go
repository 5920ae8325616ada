// Package config reads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/tasteverse/internal/recipe"
)

// Environment variables.
const (
	EnvDB       = "TASTEVERSE_DB"
	EnvStore    = "TASTEVERSE_STORE"
	EnvLogLevel = "TASTEVERSE_LOG_LEVEL"
	EnvLogFile  = "TASTEVERSE_LOG_FILE"
	EnvCatalog  = "TASTEVERSE_CATALOG"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds the settings the CLI is wired from.
type Config struct {
	DBPath   string // SQLite database file
	Store    string // StoreSQLite or StoreMemory
	LogLevel string // off, normal or verbose
	LogFile  string // "stderr" or a file path
	Catalog  string // recipe.FeaturedName or recipe.BeginnerName
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DBPath:   defaultDBPath(),
		Store:    StoreSQLite,
		LogLevel: "normal",
		LogFile:  filepath.Join(".tasteverse", "tasteverse.log"),
		Catalog:  recipe.BeginnerName,
	}
}

func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tasteverse", "tasteverse.db")
	}
	return filepath.Join(".tasteverse", "tasteverse.db")
}

// Load reads envFiles (missing files are ignored), then the environment,
// over the defaults. Variables already set in the environment win over
// .env entries.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a config from the lookup function over the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.DBPath, EnvDB)
	set(&cfg.Store, EnvStore)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.LogFile, EnvLogFile)
	set(&cfg.Catalog, EnvCatalog)

	cfg.Store = strings.ToLower(cfg.Store)
	cfg.Catalog = strings.ToLower(cfg.Catalog)
	return cfg, cfg.Validate()
}

// Validate reports settings with unknown values.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("%s: unknown store %q (want %s or %s)", EnvStore, c.Store, StoreSQLite, StoreMemory)
	}
	switch c.Catalog {
	case recipe.FeaturedName, recipe.BeginnerName:
	default:
		return fmt.Errorf("%s: unknown catalog %q (want %s or %s)", EnvCatalog, c.Catalog, recipe.FeaturedName, recipe.BeginnerName)
	}
	if c.Store == StoreSQLite && c.DBPath == "" {
		return fmt.Errorf("%s: empty database path", EnvDB)
	}
	return nil
}
