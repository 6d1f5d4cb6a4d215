package schedule

import (
	"github.com/vytor/leetrecall/internal/models"
)

// Outcome describes what ApplyReview did to a problem.
type Outcome int

const (
	// NotDue means the review was refused and the problem is unchanged.
	NotDue Outcome = iota
	// Advanced means the stage moved forward by one.
	Advanced
	// Mastered means the final interval was completed.
	Mastered
)

func (o Outcome) String() string {
	switch o {
	case NotDue:
		return "not_due"
	case Advanced:
		return "advanced"
	case Mastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// NewProblem builds a freshly learned record at stage 0.
func NewProblem(id int, title string, difficulty models.Difficulty, topic models.Topic, url string, today models.Date, iv Intervals) models.Problem {
	return models.Problem{
		ID:           id,
		Title:        title,
		Difficulty:   difficulty,
		Topic:        topic,
		DateSolved:   today,
		LastReviewed: today,
		ReviewStage:  0,
		NextReview:   today.AddDays(iv.FirstReview()),
		Status:       models.Active,
		URL:          url,
	}
}

// ApplyReview advances p by one stage, or masters it when it already sits on
// the last interval. A mastered problem or one whose next review lies after
// today is returned untouched with NotDue.
func ApplyReview(p models.Problem, today models.Date, iv Intervals) (models.Problem, Outcome) {
	if p.Status == models.Mastered || p.NextReview.After(today) {
		return p, NotDue
	}

	if p.ReviewStage < 0 {
		p.ReviewStage = -1
	}
	if p.ReviewStage < iv.MaxStage() {
		p.ReviewStage++
		p.LastReviewed = today
		p.NextReview = today.AddDays(iv[p.ReviewStage])
		return p, Advanced
	}

	p.Status = models.Mastered
	p.LastReviewed = today
	p.NextReview = models.NeverDue
	return p, Mastered
}

// Reset sends p back to stage 0 whatever its current state.
func Reset(p models.Problem, today models.Date, iv Intervals) models.Problem {
	p.ReviewStage = 0
	p.Status = models.Active
	p.LastReviewed = today
	p.NextReview = today.AddDays(iv.FirstReview())
	return p
}
