package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/vytor/leetrecall/internal/clock"
	"github.com/vytor/leetrecall/internal/errors"
	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
	"github.com/vytor/leetrecall/internal/schedule"
)

// ProblemService exposes the practice log: adding problems, the review state
// machine, best times and the read-only views. Every call reloads the
// snapshot; nothing is cached between calls.
type ProblemService interface {
	Add(ctx context.Context, title string, difficulty models.Difficulty, topic models.Topic, url string) (bool, error)
	MarkReviewed(ctx context.Context, title string) (ReviewResult, error)
	ResetProblem(ctx context.Context, title string) (ResetResult, error)
	UpdateBestTime(ctx context.Context, title string, seconds int) (BestTimeResult, error)

	Find(ctx context.Context, title string) (*models.Problem, error)
	DueToday(ctx context.Context) ([]models.Problem, error)
	AllRecords(ctx context.Context) ([]models.Problem, error)
	Stats(ctx context.Context) (models.Stats, error)
	RandomSample(ctx context.Context, n int) ([]models.Problem, error)
}

type problemService struct {
	repo      repository.ProblemRepository
	clock     clock.Clock
	intervals schedule.Intervals

	// mu serialises load-mutate-save sequences when several goroutines
	// (HTTP handlers) share one service
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*problemService)

// WithRand fixes the random source used by RandomSample.
func WithRand(rng *rand.Rand) Option {
	return func(s *problemService) {
		s.rng = rng
	}
}

// NewProblemService creates a ProblemService. intervals must already be valid.
func NewProblemService(repo repository.ProblemRepository, c clock.Clock, intervals schedule.Intervals, opts ...Option) ProblemService {
	s := &problemService{
		repo:      repo,
		clock:     c,
		intervals: intervals,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *problemService) load(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.repo.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load problems: %v", err)
		return nil, errors.NewStorageError("load problems", err)
	}
	return problems, nil
}

func (s *problemService) save(ctx context.Context, problems []models.Problem) error {
	if err := s.repo.Save(ctx, problems); err != nil {
		logger.FromContext(ctx).Error("failed to save problems: %v", err)
		return errors.NewStorageError("save problems", err)
	}
	return nil
}

func indexOf(problems []models.Problem, title string) int {
	for i := range problems {
		if problems[i].Title == title {
			return i
		}
	}
	return -1
}

// Add appends a new problem. It returns false, without writing anything,
// when a problem with the same title already exists.
func (s *problemService) Add(ctx context.Context, title string, difficulty models.Difficulty, topic models.Topic, url string) (bool, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(title) == "" {
		return false, errors.NewValidationError("title", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	problems, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if indexOf(problems, title) >= 0 {
		log.Info("problem already logged: title=%q", title)
		return false, nil
	}

	today := s.clock.Today()
	p := schedule.NewProblem(len(problems)+1, title, difficulty, topic, url, today, s.intervals)
	if !difficulty.Known() || !topic.Known() {
		log.Warn("adding %q with unrecognised difficulty=%q or topic=%q", title, difficulty, topic)
	}
	problems = append(problems, p)
	if err := s.save(ctx, problems); err != nil {
		return false, err
	}

	log.Info("added problem: id=%d, title=%q, next_review=%s", p.ID, p.Title, p.NextReview)
	return true, nil
}

func (s *problemService) MarkReviewed(ctx context.Context, title string) (ReviewResult, error) {
	log := logger.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	problems, err := s.load(ctx)
	if err != nil {
		return ReviewResult{}, err
	}
	i := indexOf(problems, title)
	if i < 0 {
		log.Debug("review of unknown problem: title=%q", title)
		return ReviewResult{Status: ReviewNotFound, Message: "Problem not found."}, nil
	}

	today := s.clock.Today()
	updated, outcome := schedule.ApplyReview(problems[i], today, s.intervals)

	switch outcome {
	case schedule.NotDue:
		log.Debug("review refused, not due: title=%q, next_review=%s", title, updated.NextReview)
		return ReviewResult{
			Status:     ReviewNotDue,
			Message:    fmt.Sprintf("Not due yet! Next review: %s", updated.NextReview),
			NextReview: updated.NextReview,
			Problem:    &updated,
		}, nil

	case schedule.Mastered:
		problems[i] = updated
		if err := s.save(ctx, problems); err != nil {
			return ReviewResult{}, err
		}
		log.Info("problem mastered: title=%q", title)
		return ReviewResult{
			Status:     ReviewMastered,
			OK:         true,
			Message:    "Problem Mastered!",
			NextReview: updated.NextReview,
			Problem:    &updated,
		}, nil
	}

	problems[i] = updated
	if err := s.save(ctx, problems); err != nil {
		return ReviewResult{}, err
	}
	days := s.intervals[updated.ReviewStage]
	log.Info("problem reviewed: title=%q, stage=%d, next_review=%s", title, updated.ReviewStage, updated.NextReview)
	return ReviewResult{
		Status:     ReviewAdvanced,
		OK:         true,
		Message:    fmt.Sprintf("Reviewed! Next in %d days.", days),
		DaysAdded:  days,
		NextReview: updated.NextReview,
		Problem:    &updated,
	}, nil
}

func (s *problemService) ResetProblem(ctx context.Context, title string) (ResetResult, error) {
	log := logger.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	problems, err := s.load(ctx)
	if err != nil {
		return ResetResult{}, err
	}
	i := indexOf(problems, title)
	if i < 0 {
		return ResetResult{Message: "Problem not found."}, nil
	}

	problems[i] = schedule.Reset(problems[i], s.clock.Today(), s.intervals)
	if err := s.save(ctx, problems); err != nil {
		return ResetResult{}, err
	}

	reset := problems[i]
	log.Info("problem reset: title=%q, next_review=%s", title, reset.NextReview)
	return ResetResult{
		OK:      true,
		Message: fmt.Sprintf("Reset %s to zero.", title),
		Problem: &reset,
	}, nil
}

// UpdateBestTime records seconds as the best solve time if it beats the
// current one. It only ever lowers the stored value.
func (s *problemService) UpdateBestTime(ctx context.Context, title string, seconds int) (BestTimeResult, error) {
	log := logger.FromContext(ctx)
	if seconds < 0 {
		return BestTimeResult{}, errors.NewValidationError("seconds", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	problems, err := s.load(ctx)
	if err != nil {
		return BestTimeResult{}, err
	}
	i := indexOf(problems, title)
	if i < 0 {
		log.Debug("best time for unknown problem ignored: title=%q", title)
		return BestTimeResult{}, nil
	}

	current := problems[i].BestTimeSeconds
	if current != nil && seconds >= *current {
		return BestTimeResult{Found: true, Updated: false, Seconds: *current}, nil
	}

	best := seconds
	problems[i].BestTimeSeconds = &best
	if err := s.save(ctx, problems); err != nil {
		return BestTimeResult{}, err
	}
	log.Info("new best time: title=%q, seconds=%d", title, seconds)
	return BestTimeResult{Found: true, Updated: true, Seconds: seconds}, nil
}
