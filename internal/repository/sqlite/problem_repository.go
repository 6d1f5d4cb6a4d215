package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/leetrecall/internal/db"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// keeps each INSERT well under sqlite's bound parameter limit
const insertBatchSize = 500

var problemColumns = []string{
	"id", "title", "difficulty", "topic", "date_solved", "last_reviewed",
	"review_stage", "next_review", "status", "url", "best_time_seconds",
}

type problemRepository struct {
	db *sql.DB
}

// NewProblemRepository stores the snapshot in the problems table. Row order is
// kept in the position column.
func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Load(ctx context.Context) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	query, args, err := sqlBuilder.Select(problemColumns...).From("problems").OrderBy("position ASC").ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load problems: %v", err)
		return nil, err
	}
	defer rows.Close()

	problems := []models.Problem{}
	for rows.Next() {
		var p models.Problem
		var best sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Title, &p.Difficulty, &p.Topic, &p.DateSolved, &p.LastReviewed,
			&p.ReviewStage, &p.NextReview, &p.Status, &p.URL, &best); err != nil {
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		if best.Valid {
			v := int(best.Int64)
			p.BestTimeSeconds = &v
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("loaded %d problems", len(problems))
	return problems, nil
}

// Save rewrites the whole table in one transaction.
func (r *problemRepository) Save(ctx context.Context, problems []models.Problem) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("saving %d problems", len(problems))

	return db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM problems`); err != nil {
			return fmt.Errorf("clear problems: %w", err)
		}
		for start := 0; start < len(problems); start += insertBatchSize {
			end := min(start+insertBatchSize, len(problems))
			insert := sqlBuilder.Insert("problems").Columns(append([]string{"position"}, problemColumns...)...)
			for i, p := range problems[start:end] {
				var best any
				if p.BestTimeSeconds != nil {
					best = *p.BestTimeSeconds
				}
				insert = insert.Values(start+i, p.ID, p.Title, string(p.Difficulty), string(p.Topic), p.DateSolved, p.LastReviewed,
					p.ReviewStage, p.NextReview, string(p.Status), p.URL, best)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert problems: %w", err)
			}
		}
		return nil
	})
}
