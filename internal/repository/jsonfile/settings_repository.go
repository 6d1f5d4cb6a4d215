package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
	"github.com/vytor/leetrecall/internal/storage"
)

type settingsRepository struct {
	backend storage.Backend
}

func NewSettingsRepository(backend storage.Backend) repository.SettingsRepository {
	return &settingsRepository{backend: backend}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")

	data, err := r.backend.Read(ctx)
	if errors.Is(err, storage.ErrNotExist) {
		log.Debug("no settings at %s", r.backend.Location())
		return models.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}

	settings := models.Settings{}
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Error("malformed settings %s: %v", r.backend.Location(), err)
		return nil, fmt.Errorf("decode %s: %w", r.backend.Location(), err)
	}
	if settings == nil {
		settings = models.Settings{}
	}
	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	if settings == nil {
		settings = models.Settings{}
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.backend.Write(ctx, append(data, '\n'))
}
