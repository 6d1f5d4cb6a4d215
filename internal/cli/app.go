package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vytor/leetrecall/internal/browser"
	"github.com/vytor/leetrecall/internal/clock"
	"github.com/vytor/leetrecall/internal/config"
	"github.com/vytor/leetrecall/internal/db"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/repository"
	"github.com/vytor/leetrecall/internal/repository/jsonfile"
	"github.com/vytor/leetrecall/internal/repository/sqlite"
	"github.com/vytor/leetrecall/internal/schedule"
	"github.com/vytor/leetrecall/internal/services"
	"github.com/vytor/leetrecall/internal/storage"
)

// App is everything a command needs. It is built once per invocation.
type App struct {
	Config    config.Config
	Intervals schedule.Intervals
	Problems  services.ProblemService
	Settings  services.SettingsService
	Browser   browser.Opener

	closers []func() error
}

// AppFactory builds the App for a command run.
type AppFactory func(ctx context.Context) (*App, error)

// NewApp wires the stores selected by cfg. The returned App must be closed.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)
	iv := cfg.ScheduleIntervals()
	app := &App{
		Config:    cfg,
		Intervals: iv,
		Browser:   browser.System{},
	}

	var (
		problemRepo  repository.ProblemRepository
		settingsRepo repository.SettingsRepository
	)
	switch cfg.Storage {
	case config.StorageSQLite:
		path := cfg.SQLiteFile()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		database, err := db.Open(path)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, database.Close)
		problemRepo = sqlite.NewProblemRepository(database.DB)
		settingsRepo = sqlite.NewSettingsRepository(database.DB)
		log.Debug("using sqlite store at %s", path)
	default:
		problemRepo = jsonfile.NewProblemRepository(storage.NewOSFileBackend(cfg.DBPath()))
		settingsRepo = jsonfile.NewSettingsRepository(storage.NewOSFileBackend(cfg.ConfigPath()))
		log.Debug("using json store at %s", cfg.DBPath())
	}

	app.Problems = services.NewProblemService(problemRepo, clock.System{}, iv)
	app.Settings = services.NewSettingsService(settingsRepo)
	return app, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// DefaultFactory loads configuration from the environment.
func DefaultFactory(ctx context.Context) (*App, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))))
	return NewApp(ctx, cfg)
}
