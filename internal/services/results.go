package services

import (
	"github.com/vytor/leetrecall/internal/errors"
	"github.com/vytor/leetrecall/internal/models"
)

type ReviewStatus string

const (
	ReviewAdvanced ReviewStatus = "reviewed"
	ReviewMastered ReviewStatus = "mastered"
	ReviewNotDue   ReviewStatus = "not_due"
	ReviewNotFound ReviewStatus = "not_found"
)

// ReviewResult is the outcome of MarkReviewed. Refusals (not due, not found)
// are reported here rather than as errors.
type ReviewResult struct {
	Status     ReviewStatus    `json:"status"`
	OK         bool            `json:"ok"`
	Message    string          `json:"message"`
	DaysAdded  int             `json:"days_added,omitempty"`
	NextReview models.Date     `json:"next_review"`
	Problem    *models.Problem `json:"problem,omitempty"`
}

// Err converts a refusal into an AppError for transports. It is nil on success.
func (r ReviewResult) Err(title string) error {
	switch r.Status {
	case ReviewNotDue:
		return errors.NewNotDueError(title, r.NextReview.String())
	case ReviewNotFound:
		return errors.NewNotFoundError("problem", title)
	}
	return nil
}

type ResetResult struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Problem *models.Problem `json:"problem,omitempty"`
}

func (r ResetResult) Err(title string) error {
	if r.OK {
		return nil
	}
	return errors.NewNotFoundError("problem", title)
}

// BestTimeResult is the outcome of UpdateBestTime. Found is false when no
// problem has the given title; nothing is written in that case.
type BestTimeResult struct {
	Found   bool `json:"found"`
	Updated bool `json:"updated"`
	Seconds int  `json:"seconds"`
}
