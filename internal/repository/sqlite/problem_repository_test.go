package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/leetrecall/internal/models"
	"github.com/vytor/leetrecall/internal/repository"
	"github.com/vytor/leetrecall/internal/repository/jsonfile"
	"github.com/vytor/leetrecall/internal/repository/sqlite"
	"github.com/vytor/leetrecall/internal/storage"
	"github.com/vytor/leetrecall/internal/testutil"
)

type ProblemRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProblemRepository
}

func (s *ProblemRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T()).DB
	s.repo = sqlite.NewProblemRepository(s.db)
}

func (s *ProblemRepositorySuite) problems() []models.Problem {
	day := testutil.Day0
	return []models.Problem{
		{ID: 1, Title: "Two Sum", Difficulty: models.Easy, Topic: models.ArraysHashing, DateSolved: day,
			LastReviewed: day, NextReview: day.AddDays(1), Status: models.Active, BestTimeSeconds: testutil.IntPtr(61)},
		{ID: 2, Title: "Coin Change", Difficulty: models.Medium, Topic: models.DynamicProgramming, DateSolved: day.AddDays(2),
			LastReviewed: day.AddDays(40), ReviewStage: 5, NextReview: models.NeverDue, Status: models.Mastered,
			URL: "https://leetcode.com/problems/coin-change/"},
		{ID: 3, Title: "Odd One", Difficulty: "Nightmare", Topic: "Tries", DateSolved: day,
			LastReviewed: day, NextReview: day.AddDays(1), Status: models.Active},
	}
}

func (s *ProblemRepositorySuite) TestEmptyDatabase() {
	got, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func (s *ProblemRepositorySuite) TestRoundTripKeepsOrder() {
	ctx := context.Background()
	want := s.problems()

	s.Require().NoError(s.repo.Save(ctx, want))
	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *ProblemRepositorySuite) TestSaveReplacesEverything() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, s.problems()))
	s.Require().NoError(s.repo.Save(ctx, s.problems()[:1]))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Len(got, 1)
	s.Assert().Equal("Two Sum", got[0].Title)
}

func (s *ProblemRepositorySuite) TestFailedSaveKeepsPreviousSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, s.problems()))

	dup := append(s.problems(), s.problems()[0])
	s.Assert().Error(s.repo.Save(ctx, dup))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(s.problems(), got)
}

func (s *ProblemRepositorySuite) TestMatchesJSONSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, s.problems()))
	fromSQL, err := s.repo.Load(ctx)
	s.Require().NoError(err)

	jsonRepo := jsonfile.NewProblemRepository(storage.NewMemoryBackend())
	s.Require().NoError(jsonRepo.Save(ctx, fromSQL))
	fromJSON, err := jsonRepo.Load(ctx)
	s.Require().NoError(err)

	s.Assert().Equal(fromSQL, fromJSON)
}

func (s *ProblemRepositorySuite) TestLargeSnapshot() {
	ctx := context.Background()
	var many []models.Problem
	for i := 0; i < 1200; i++ {
		p := s.problems()[0]
		p.ID = i + 1
		p.Title = fmt.Sprintf("Problem %d", i)
		many = append(many, p)
	}
	s.Require().NoError(s.repo.Save(ctx, many))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Len(got, 1200)
	s.Assert().Equal(many[1199].Title, got[1199].Title)
}

func TestProblemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProblemRepositorySuite))
}
