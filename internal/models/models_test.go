package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leetrecall/internal/models"
)

func intPtr(v int) *int { return &v }

func TestDate_JSONUsesCalendarFormat(t *testing.T) {
	d := models.NewDate(2025, time.March, 9)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(raw))

	var back models.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Zero(t, d.Compare(back))
}

func TestDate_RejectsMalformed(t *testing.T) {
	var d models.Date
	err := json.Unmarshal([]byte(`"03/09/2025"`), &d)
	assert.Error(t, err)
}

func TestDate_AddDaysCrossesMonth(t *testing.T) {
	d := models.NewDate(2024, time.February, 28).AddDays(1)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, "2024-03-31", models.NewDate(2024, time.March, 1).AddDays(30).String())
}

func TestDate_NeverDueString(t *testing.T) {
	assert.Equal(t, "9999-12-31", models.NeverDue.String())
}

func TestDate_Scan(t *testing.T) {
	var d models.Date
	require.NoError(t, d.Scan("2025-01-02"))
	assert.Equal(t, "2025-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2025-01-03")))
	assert.Equal(t, "2025-01-03", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 1, 4, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-04", d.String())

	assert.Error(t, d.Scan(42))
}

func TestProblem_IsDue(t *testing.T) {
	today := models.NewDate(2025, time.June, 10)

	tests := []struct {
		name string
		p    models.Problem
		want bool
	}{
		{"due today", models.Problem{Status: models.Active, NextReview: today}, true},
		{"overdue", models.Problem{Status: models.Active, NextReview: today.AddDays(-4)}, true},
		{"tomorrow", models.Problem{Status: models.Active, NextReview: today.AddDays(1)}, false},
		{"mastered", models.Problem{Status: models.Mastered, NextReview: today.AddDays(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.IsDue(today))
		})
	}
}

func TestShortLabels(t *testing.T) {
	assert.Equal(t, "M", models.Medium.Short())
	assert.Equal(t, "X", models.Difficulty("Extreme").Short())
	assert.Equal(t, "?", models.Difficulty("").Short())

	assert.Equal(t, "DP", models.DynamicProgramming.Short())
	assert.Equal(t, "Tries", models.Topic("Tries").Short())
	assert.False(t, models.Topic("Tries").Known())
	assert.True(t, models.Graphs.Known())
}

func TestProblem_Display(t *testing.T) {
	p := models.Problem{ReviewStage: 2}
	assert.Equal(t, "[■■□□□]", p.ProgressBar(5))
	assert.Equal(t, "--:--", p.BestTime())

	p.BestTimeSeconds = intPtr(754)
	assert.Equal(t, "12:34", p.BestTime())
}
