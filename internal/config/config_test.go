package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/leetrecall/internal/config"
	"github.com/vytor/leetrecall/internal/schedule"
)

func validConfig() config.Config {
	return config.Config{
		DataDir:    "/tmp/recall",
		DBFile:     "recall_db.json",
		ConfigFile: "recall_config.json",
		Storage:    config.StorageJSON,
		SQLitePath: "recall.db",
		Intervals:  "0,1,3,7,21,30",
		Addr:       "127.0.0.1:8765",
		LogLevel:   "INFO",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"empty data dir", func(c *config.Config) { c.DataDir = "" }, "RECALL_DATA_DIR cannot be empty"},
		{"empty db file", func(c *config.Config) { c.DBFile = "" }, "RECALL_DB_FILE cannot be empty"},
		{"empty config file", func(c *config.Config) { c.ConfigFile = "" }, "RECALL_CONFIG_FILE cannot be empty"},
		{"unknown storage", func(c *config.Config) { c.Storage = "postgres" }, "RECALL_STORAGE"},
		{"sqlite without path", func(c *config.Config) {
			c.Storage = config.StorageSQLite
			c.SQLitePath = ""
		}, "RECALL_SQLITE_PATH"},
		{"short intervals", func(c *config.Config) { c.Intervals = "0" }, "RECALL_INTERVALS"},
		{"negative interval", func(c *config.Config) { c.Intervals = "0,1,-3" }, "RECALL_INTERVALS"},
		{"non numeric interval", func(c *config.Config) { c.Intervals = "0,one" }, "RECALL_INTERVALS"},
		{"empty addr", func(c *config.Config) { c.Addr = "" }, "RECALL_ADDR cannot be empty"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "LOUD" }, "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"RECALL_DATA_DIR", "RECALL_DB_FILE", "RECALL_CONFIG_FILE", "RECALL_STORAGE",
		"RECALL_SQLITE_PATH", "RECALL_INTERVALS", "RECALL_ADDR", "RECALL_CORS_ORIGINS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, "recall_db.json", cfg.DBFile)
	assert.Equal(t, "recall_config.json", cfg.ConfigFile)
	assert.Equal(t, config.StorageJSON, cfg.Storage)
	assert.Equal(t, "127.0.0.1:8765", cfg.Addr)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, schedule.DefaultIntervals, cfg.ScheduleIntervals())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RECALL_DATA_DIR", dir)
	t.Setenv("RECALL_STORAGE", "SQLite")
	t.Setenv("RECALL_INTERVALS", "0, 2, 5")
	t.Setenv("RECALL_CORS_ORIGINS", "http://localhost:3000, ,http://example.com")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.StorageSQLite, cfg.Storage)
	assert.Equal(t, schedule.Intervals{0, 2, 5}, cfg.ScheduleIntervals())
	assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, filepath.Join(dir, "recall_db.json"), cfg.DBPath())
	assert.Equal(t, filepath.Join(dir, "recall_config.json"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join(dir, "recall.db"), cfg.SQLiteFile())
}

func TestPaths_AbsoluteFileIgnoresDataDir(t *testing.T) {
	cfg := validConfig()
	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	cfg.DBFile = abs
	assert.Equal(t, abs, cfg.DBPath())
}
