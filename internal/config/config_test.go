package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvDB:       "/tmp/tv.db",
		EnvStore:    "Memory",
		EnvLogLevel: "verbose",
		EnvCatalog:  " featured ",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tv.db", cfg.DBPath)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "verbose", cfg.LogLevel)
	assert.Equal(t, "featured", cfg.Catalog)
	assert.Equal(t, Default().LogFile, cfg.LogFile)
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvRejectsUnknownValues(t *testing.T) {
	tests := map[string]map[string]string{
		"store":   {EnvStore: "redis"},
		"catalog": {EnvCatalog: "desserts"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TASTEVERSE_CATALOG=featured\nTASTEVERSE_STORE=memory\n"), 0o644))

	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvStore, "sqlite")
	os.Unsetenv(EnvCatalog)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "featured", cfg.Catalog)
	assert.Equal(t, StoreSQLite, cfg.Store, "environment wins over .env")
}
