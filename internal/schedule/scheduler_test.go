package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/schedule"
)

var day0 = models.NewDate(2025, time.January, 1)

func newTwoSum(iv schedule.Intervals) models.Problem {
	return schedule.NewProblem(1, "Two Sum", models.Easy, models.ArraysHashing, "", day0, iv)
}

func TestNewProblem_StartsAtStageZero(t *testing.T) {
	tables := []schedule.Intervals{
		schedule.DefaultIntervals,
		{0, 0},
		{0, 2, 5},
		{1, 4, 9, 16, 25, 36, 49},
	}
	for _, iv := range tables {
		t.Run(iv.String(), func(t *testing.T) {
			p := newTwoSum(iv)
			assert.Equal(t, 0, p.ReviewStage)
			assert.Equal(t, models.Active, p.Status)
			assert.Equal(t, day0.AddDays(iv[1]), p.NextReview)
			assert.Equal(t, day0, p.DateSolved)
			assert.Equal(t, day0, p.LastReviewed)
			assert.Nil(t, p.BestTimeSeconds)
		})
	}
}

func TestApplyReview_NotDueLeavesProblemUntouched(t *testing.T) {
	p := newTwoSum(schedule.DefaultIntervals)

	updated, outcome := schedule.ApplyReview(p, day0, schedule.DefaultIntervals)

	assert.Equal(t, schedule.NotDue, outcome)
	assert.Equal(t, p, updated)
}

func TestApplyReview_WalksEveryStageThenMasters(t *testing.T) {
	iv := schedule.DefaultIntervals
	p := newTwoSum(iv)
	today := p.NextReview

	for stage := 1; stage <= iv.MaxStage(); stage++ {
		var outcome schedule.Outcome
		p, outcome = schedule.ApplyReview(p, today, iv)
		require.Equal(t, schedule.Advanced, outcome, "stage %d", stage)
		assert.Equal(t, stage, p.ReviewStage)
		assert.Equal(t, today, p.LastReviewed)
		assert.Equal(t, today.AddDays(iv[stage]), p.NextReview)

		// a second review the same day is refused
		again, outcome := schedule.ApplyReview(p, today, iv)
		assert.Equal(t, schedule.NotDue, outcome)
		assert.Equal(t, p, again)

		today = p.NextReview
	}

	p, outcome := schedule.ApplyReview(p, today, iv)
	assert.Equal(t, schedule.Mastered, outcome)
	assert.Equal(t, models.Mastered, p.Status)
	assert.Equal(t, "9999-12-31", p.NextReview.String())
	assert.Equal(t, iv.MaxStage(), p.ReviewStage)

	_, outcome = schedule.ApplyReview(p, models.NewDate(9999, time.December, 31), iv)
	assert.Equal(t, schedule.NotDue, outcome, "mastered problems never become reviewable")
}

func TestApplyReview_TwoSumScenario(t *testing.T) {
	iv := schedule.DefaultIntervals
	p := newTwoSum(iv)
	require.Equal(t, day0.AddDays(1), p.NextReview)

	day1 := day0.AddDays(1)
	p, outcome := schedule.ApplyReview(p, day1, iv)
	require.Equal(t, schedule.Advanced, outcome)
	assert.Equal(t, 1, p.ReviewStage)
	assert.Equal(t, day0.AddDays(2), p.NextReview)
}

// Each review adds the interval of the stage it lands on, so the first
// review adds interval[1] days, not interval[2].
func TestApplyReview_LadderAddsIntervalOfNewStage(t *testing.T) {
	iv := schedule.DefaultIntervals
	p := newTwoSum(iv)
	today := day0.AddDays(1)

	steps := []struct {
		stage int
		days  int
	}{
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 21},
		{5, 30},
	}
	for _, step := range steps {
		var outcome schedule.Outcome
		p, outcome = schedule.ApplyReview(p, today, iv)
		require.Equal(t, schedule.Advanced, outcome, "stage %d", step.stage)
		assert.Equal(t, step.stage, p.ReviewStage)
		assert.Equal(t, today.AddDays(step.days), p.NextReview, "stage %d", step.stage)
		today = p.NextReview
	}

	p, outcome := schedule.ApplyReview(p, today, iv)
	assert.Equal(t, schedule.Mastered, outcome)
	assert.Equal(t, models.NeverDue, p.NextReview)
}

func TestApplyReview_OverdueUsesToday(t *testing.T) {
	iv := schedule.DefaultIntervals
	p := newTwoSum(iv)
	late := day0.AddDays(10)

	p, outcome := schedule.ApplyReview(p, late, iv)

	assert.Equal(t, schedule.Advanced, outcome)
	assert.Equal(t, late.AddDays(1), p.NextReview)
}

func TestApplyReview_OutOfRangeStages(t *testing.T) {
	iv := schedule.DefaultIntervals

	p := newTwoSum(iv)
	p.ReviewStage = -3
	p.NextReview = day0
	p, outcome := schedule.ApplyReview(p, day0, iv)
	assert.Equal(t, schedule.Advanced, outcome)
	assert.Equal(t, 0, p.ReviewStage)

	p.ReviewStage = 42
	p.NextReview = day0
	p, outcome = schedule.ApplyReview(p, day0, iv)
	assert.Equal(t, schedule.Mastered, outcome)
}

func TestReset(t *testing.T) {
	iv := schedule.DefaultIntervals
	today := day0.AddDays(50)

	tests := []struct {
		name string
		p    models.Problem
	}{
		{"fresh", newTwoSum(iv)},
		{"mid stage", models.Problem{Title: "Two Sum", ReviewStage: 3, Status: models.Active, NextReview: day0.AddDays(90)}},
		{"mastered", models.Problem{Title: "Two Sum", ReviewStage: 5, Status: models.Mastered, NextReview: models.NeverDue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := schedule.Reset(tt.p, today, iv)
			assert.Equal(t, 0, p.ReviewStage)
			assert.Equal(t, models.Active, p.Status)
			assert.Equal(t, today, p.LastReviewed)
			assert.Equal(t, today.AddDays(1), p.NextReview)
		})
	}
}

func TestParseIntervals(t *testing.T) {
	iv, err := schedule.ParseIntervals(" 0, 1,3 ,7,21,30")
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultIntervals, iv)
	assert.Equal(t, 5, iv.MaxStage())

	for _, bad := range []string{"", "0", "0,x", "0,-1,3"} {
		_, err := schedule.ParseIntervals(bad)
		assert.ErrorIs(t, err, schedule.ErrInvalidIntervals, bad)
	}
}
