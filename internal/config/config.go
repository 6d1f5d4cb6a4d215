package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vytor/leetrecall/internal/schedule"
)

const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

type Config struct {
	DataDir     string
	DBFile      string
	ConfigFile  string
	Storage     string
	SQLitePath  string
	Intervals   string
	Addr        string
	CORSOrigins []string
	LogLevel    string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing.
func Load() Config {
	// .env is optional
	_ = godotenv.Load()

	return Config{
		DataDir:     envOr("RECALL_DATA_DIR", defaultDataDir()),
		DBFile:      envOr("RECALL_DB_FILE", "recall_db.json"),
		ConfigFile:  envOr("RECALL_CONFIG_FILE", "recall_config.json"),
		Storage:     strings.ToLower(envOr("RECALL_STORAGE", StorageJSON)),
		SQLitePath:  envOr("RECALL_SQLITE_PATH", "recall.db"),
		Intervals:   envOr("RECALL_INTERVALS", schedule.DefaultIntervals.String()),
		Addr:        envOr("RECALL_ADDR", "127.0.0.1:8765"),
		CORSOrigins: envListOr("RECALL_CORS_ORIGINS", nil),
		LogLevel:    envOr("LOG_LEVEL", "WARN"),
	}
}

// Validate checks the configuration and reports the first invalid value by
// its environment variable name.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("RECALL_DATA_DIR cannot be empty")
	}
	if c.DBFile == "" {
		return fmt.Errorf("RECALL_DB_FILE cannot be empty")
	}
	if c.ConfigFile == "" {
		return fmt.Errorf("RECALL_CONFIG_FILE cannot be empty")
	}
	switch c.Storage {
	case StorageJSON:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("RECALL_SQLITE_PATH cannot be empty when RECALL_STORAGE=sqlite")
		}
	default:
		return fmt.Errorf("RECALL_STORAGE must be %q or %q, got %q", StorageJSON, StorageSQLite, c.Storage)
	}
	if _, err := schedule.ParseIntervals(c.Intervals); err != nil {
		return fmt.Errorf("RECALL_INTERVALS: %w", err)
	}
	if c.Addr == "" {
		return fmt.Errorf("RECALL_ADDR cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "OFF", "NONE":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, OFF, got %q", c.LogLevel)
	}
	return nil
}

// ScheduleIntervals parses Intervals. Call Validate first.
func (c Config) ScheduleIntervals() schedule.Intervals {
	iv, err := schedule.ParseIntervals(c.Intervals)
	if err != nil {
		return schedule.DefaultIntervals
	}
	return iv
}

func (c Config) DBPath() string {
	return c.resolve(c.DBFile)
}

func (c Config) ConfigPath() string {
	return c.resolve(c.ConfigFile)
}

func (c Config) SQLiteFile() string {
	return c.resolve(c.SQLitePath)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recall"
	}
	return filepath.Join(home, ".recall")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
