// Package jsonfile stores problems and settings as pretty-printed JSON
// documents on a storage.Backend.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
	"github.com/vytor/leetrecall/internal/storage"
)

type problemRepository struct {
	backend storage.Backend
}

func NewProblemRepository(backend storage.Backend) repository.ProblemRepository {
	return &problemRepository{backend: backend}
}

// problemRecord is the on-disk shape. It accepts the older "topics" key and
// tolerates missing optional fields.
type problemRecord struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Difficulty      models.Difficulty `json:"difficulty"`
	Topic           *models.Topic     `json:"topic,omitempty"`
	Topics          *models.Topic     `json:"topics,omitempty"`
	DateSolved      models.Date       `json:"date_solved"`
	LastReviewed    models.Date       `json:"last_reviewed"`
	ReviewStage     int               `json:"review_stage"`
	NextReview      models.Date       `json:"next_review"`
	Status          models.Status     `json:"status"`
	URL             string            `json:"url"`
	BestTimeSeconds *int              `json:"best_time_seconds"`
}

func (rec problemRecord) toModel() models.Problem {
	topic := models.UnknownTopic
	switch {
	case rec.Topic != nil:
		topic = *rec.Topic
	case rec.Topics != nil:
		topic = *rec.Topics
	}
	status := rec.Status
	if status == "" {
		status = models.Active
	}
	return models.Problem{
		ID:              rec.ID,
		Title:           rec.Title,
		Difficulty:      rec.Difficulty,
		Topic:           topic,
		DateSolved:      rec.DateSolved,
		LastReviewed:    rec.LastReviewed,
		ReviewStage:     rec.ReviewStage,
		NextReview:      rec.NextReview,
		Status:          status,
		URL:             rec.URL,
		BestTimeSeconds: rec.BestTimeSeconds,
	}
}

func (r *problemRepository) Load(ctx context.Context) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	data, err := r.backend.Read(ctx)
	if errors.Is(err, storage.ErrNotExist) {
		log.Debug("no snapshot at %s, starting empty", r.backend.Location())
		return []models.Problem{}, nil
	}
	if err != nil {
		return nil, err
	}

	problems, err := DecodeProblems(data)
	if err != nil {
		log.Error("malformed snapshot %s: %v", r.backend.Location(), err)
		return nil, fmt.Errorf("decode %s: %w", r.backend.Location(), err)
	}
	log.Debug("loaded %d problems", len(problems))
	return problems, nil
}

func (r *problemRepository) Save(ctx context.Context, problems []models.Problem) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	data, err := EncodeProblems(problems)
	if err != nil {
		return err
	}
	if err := r.backend.Write(ctx, data); err != nil {
		log.Error("failed to save snapshot: %v", err)
		return err
	}
	log.Debug("saved %d problems to %s", len(problems), r.backend.Location())
	return nil
}

// DecodeProblems parses a snapshot. Every record needs a title and a
// next_review date.
func DecodeProblems(data []byte) ([]models.Problem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty snapshot")
	}
	var records []problemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	problems := make([]models.Problem, 0, len(records))
	for i, rec := range records {
		if rec.Title == "" {
			return nil, fmt.Errorf("record %d has no title", i)
		}
		if rec.NextReview.IsZero() {
			return nil, fmt.Errorf("record %q has no next_review", rec.Title)
		}
		problems = append(problems, rec.toModel())
	}
	return problems, nil
}

// EncodeProblems renders the snapshot as an indented JSON array.
func EncodeProblems(problems []models.Problem) ([]byte, error) {
	if problems == nil {
		problems = []models.Problem{}
	}
	data, err := json.MarshalIndent(problems, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
