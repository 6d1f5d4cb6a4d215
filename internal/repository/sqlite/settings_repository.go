package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/leetrecall/internal/db"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")

	query, args, err := sqlBuilder.Select("key", "value").From("settings").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load settings: %v", err)
		return nil, err
	}
	defer rows.Close()

	settings := models.Settings{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	return db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM settings`); err != nil {
			return err
		}
		if len(settings) == 0 {
			return nil
		}
		insert := sqlBuilder.Insert("settings").Columns("key", "value")
		for k, v := range settings {
			insert = insert.Values(k, v)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
}
