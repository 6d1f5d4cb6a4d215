package repository

import (
	"context"

	"github.com/vytor/leetrecall/internal/models"
)

// ProblemRepository persists the full list of problems as one snapshot.
// There is no partial update: callers load, mutate in memory and save.
type ProblemRepository interface {
	// Load returns every problem in store order, or an empty slice on first run.
	Load(ctx context.Context) ([]models.Problem, error)
	// Save replaces the stored snapshot atomically.
	Save(ctx context.Context, problems []models.Problem) error
}

// SettingsRepository persists the user configuration document.
type SettingsRepository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}
