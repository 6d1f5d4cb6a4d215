package services

import (
	"context"
	"strings"
	"sync"

	"github.com/vytor/leetrecall/internal/errors"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
)

// SettingsService reads and writes single keys of the settings document.
type SettingsService interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Theme(ctx context.Context) (string, bool, error)
	SetTheme(ctx context.Context, name string) error
}

type settingsService struct {
	repo repository.SettingsRepository
	mu   sync.Mutex
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context, key string) (string, bool, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load settings: %v", err)
		return "", false, errors.NewStorageError("load settings", err)
	}
	v, ok := settings[key]
	return v, ok, nil
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(key) == "" {
		return errors.NewValidationError("key", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return errors.NewStorageError("load settings", err)
	}
	if settings == nil {
		settings = models.Settings{}
	}
	settings[key] = value
	if err := s.repo.Save(ctx, settings); err != nil {
		log.Error("failed to save settings: %v", err)
		return errors.NewStorageError("save settings", err)
	}
	log.Debug("setting updated: %s=%q", key, value)
	return nil
}

func (s *settingsService) Theme(ctx context.Context) (string, bool, error) {
	return s.Get(ctx, models.ThemeKey)
}

func (s *settingsService) SetTheme(ctx context.Context, name string) error {
	return s.Set(ctx, models.ThemeKey, name)
}
