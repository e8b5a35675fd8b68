package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/rpsarena/internal/models"
)

// MockSaveRepository is a mock implementation of repository.SaveRepository
type MockSaveRepository struct {
	mock.Mock
}

func (m *MockSaveRepository) Save(ctx context.Context, state *models.MatchState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockSaveRepository) Load(ctx context.Context) (*models.MatchState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchState), args.Error(1)
}

func (m *MockSaveRepository) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaveRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
