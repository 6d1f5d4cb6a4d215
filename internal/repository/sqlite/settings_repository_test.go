package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository/sqlite"
	"github.com/vytor/leetrecall/internal/testutil"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSettingsRepository(testutil.NewTestDB(t).DB)

	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)

	require.NoError(t, repo.Save(ctx, models.Settings{"theme": "gruvbox", "extra": "kept"}))
	settings, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{"theme": "gruvbox", "extra": "kept"}, settings)
}
