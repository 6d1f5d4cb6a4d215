package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/leetrecall/internal/models"
)

// MockProblemRepository is a mock implementation of repository.ProblemRepository
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Load(ctx context.Context) ([]models.Problem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy so callers mutating the slice do not change the stub
	problems := args.Get(0).([]models.Problem)
	return append([]models.Problem(nil), problems...), args.Error(1)
}

func (m *MockProblemRepository) Save(ctx context.Context, problems []models.Problem) error {
	args := m.Called(ctx, problems)
	return args.Error(0)
}
