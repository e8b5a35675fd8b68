package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/rpsarena/internal/models"
)

// MockScoreboardRepository is a mock implementation of repository.ScoreboardRepository
type MockScoreboardRepository struct {
	mock.Mock
}

func (m *MockScoreboardRepository) Load(ctx context.Context) (*models.Scoreboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Scoreboard), args.Error(1)
}

func (m *MockScoreboardRepository) Save(ctx context.Context, board *models.Scoreboard) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}
