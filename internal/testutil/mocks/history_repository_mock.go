package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/rpsarena/internal/models"
)

// MockHistoryRepository is a mock implementation of repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Insert(ctx context.Context, record models.MatchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) Get(ctx context.Context, id string) (*models.MatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchRecord), args.Error(1)
}

func (m *MockHistoryRepository) List(ctx context.Context, filter models.HistoryFilter) ([]models.MatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchRecord), args.Error(1)
}

func (m *MockHistoryRepository) GestureStats(ctx context.Context, player string) ([]models.GestureStat, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GestureStat), args.Error(1)
}

func (m *MockHistoryRepository) HeadToHead(ctx context.Context, playerA, playerB string) (*models.HeadToHead, error) {
	args := m.Called(ctx, playerA, playerB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HeadToHead), args.Error(1)
}
