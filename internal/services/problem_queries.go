package services

import (
	"context"
	"slices"
	"strings"

	"github.com/vytor/leetrecall/internal/logger"
	"github.com/vytor/leetrecall/internal/models"
)

// Find returns the problem with the exact title, or nil.
func (s *problemService) Find(ctx context.Context, title string) (*models.Problem, error) {
	problems, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(problems, title); i >= 0 {
		return &problems[i], nil
	}
	return nil, nil
}

// DueToday returns active problems whose next review is today or earlier,
// in store order.
func (s *problemService) DueToday(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return dueOn(problems, s.clock.Today()), nil
}

func dueOn(problems []models.Problem, today models.Date) []models.Problem {
	due := []models.Problem{}
	for _, p := range problems {
		if p.IsDue(today) {
			due = append(due, p)
		}
	}
	return due
}

// AllRecords returns every problem, most recently solved first. Problems
// solved on the same day keep their store order.
func (s *problemService) AllRecords(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(problems, func(a, b models.Problem) int {
		return b.DateSolved.Compare(a.DateSolved)
	})
	return problems, nil
}

func (s *problemService) Stats(ctx context.Context) (models.Stats, error) {
	problems, err := s.load(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	stats := models.Stats{
		Total: len(problems),
		Due:   len(dueOn(problems, s.clock.Today())),
	}
	for _, p := range problems {
		if p.Status == models.Mastered {
			stats.Mastered++
		}
	}
	return stats, nil
}

// RandomSample picks up to n distinct problems in random order.
func (s *problemService) RandomSample(ctx context.Context, n int) ([]models.Problem, error) {
	problems, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []models.Problem{}, nil
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(problems))
	s.mu.Unlock()

	n = min(n, len(problems))
	sample := make([]models.Problem, 0, n)
	for _, idx := range perm[:n] {
		sample = append(sample, problems[idx])
	}
	logger.FromContext(ctx).Debug("sampled %d of %d problems", len(sample), len(problems))
	return sample, nil
}

// Search keeps the problems whose title or topic contains query, ignoring
// case. An empty query keeps everything.
func Search(problems []models.Problem, query string) []models.Problem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return problems
	}
	matched := []models.Problem{}
	for _, p := range problems {
		if strings.Contains(strings.ToLower(p.Title), query) || strings.Contains(strings.ToLower(string(p.Topic)), query) {
			matched = append(matched, p)
		}
	}
	return matched
}
